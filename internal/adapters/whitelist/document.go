package whitelist

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	apperrors "github.com/sentinelops/dbx-resource-monitor/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// documentJSON is the object wrapper shape. Whitelist is a pointer so a
// missing key can be told apart from an empty list.
type documentJSON struct {
	Description             string    `json:"description"`
	Whitelist               *[]string `json:"whitelist"`
	IgnoreDatabricksManaged bool      `json:"ignore_databricks_managed"`
}

// Parse normalizes a whitelist file into a domain.Whitelist. Accepted shapes:
//
//	["id-1", "id-2"]
//	{"description": "...", "whitelist": [...], "ignore_databricks_managed": true}
func Parse(data []byte) (domain.Whitelist, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return domain.Whitelist{}, apperrors.New(apperrors.CodeWhitelistFormat, "whitelist file is empty")
	}

	switch trimmed[0] {
	case '[':
		var ids []string
		if err := json.Unmarshal(trimmed, &ids); err != nil {
			return domain.Whitelist{}, apperrors.Wrap(err, apperrors.CodeWhitelistFormat, "invalid JSON in whitelist array")
		}
		return domain.NewWhitelist("", ids, false), nil
	case '{':
		var doc documentJSON
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return domain.Whitelist{}, apperrors.Wrap(err, apperrors.CodeWhitelistFormat, "invalid JSON in whitelist object")
		}
		if doc.Whitelist == nil {
			return domain.Whitelist{}, apperrors.New(apperrors.CodeWhitelistFormat, "object form must contain a 'whitelist' key")
		}
		return domain.NewWhitelist(doc.Description, *doc.Whitelist, doc.IgnoreDatabricksManaged), nil
	default:
		return domain.Whitelist{}, apperrors.New(apperrors.CodeWhitelistFormat, "invalid whitelist format: expected a JSON array or an object with a 'whitelist' key")
	}
}
