package errors

type Code string

const (
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL_ERROR"
	CodeConfigValidation Code = "CONFIG_VALIDATION_ERROR"
	CodeConfigReadError  Code = "CONFIG_READ_ERROR"

	CodeWhitelistNotFound Code = "WHITELIST_NOT_FOUND"
	CodeWhitelistFormat   Code = "WHITELIST_FORMAT_ERROR"
	CodeWhitelistWrite    Code = "WHITELIST_WRITE_ERROR"

	CodePlatformAPIError  Code = "PLATFORM_API_ERROR"
	CodePlatformAuthError Code = "PLATFORM_AUTH_ERROR"

	// CodePolicyViolation is the alert path: in alert mode the run fails with
	// this code so the hosting job scheduler sends its failure notification.
	CodePolicyViolation Code = "POLICY_VIOLATION"

	// CodePartialFailure marks a delete-mode run where at least one deletion
	// failed. The run still completes every attempt before reporting it.
	CodePartialFailure Code = "PARTIAL_FAILURE"
)

func (c Code) String() string {
	return string(c)
}
