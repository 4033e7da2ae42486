package domain

// Whitelist is the normalized authoritative set of compliant resource ids.
// Both accepted file shapes (bare array, object wrapper) resolve to this one
// value; AllowedIDs is always a set regardless of the source shape.
// Constructed once per run and immutable afterwards.
type Whitelist struct {
	Description             string
	AllowedIDs              map[string]struct{}
	IgnoreDatabricksManaged bool
}

func NewWhitelist(description string, ids []string, ignoreManaged bool) Whitelist {
	allowed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		allowed[id] = struct{}{}
	}
	return Whitelist{
		Description:             description,
		AllowedIDs:              allowed,
		IgnoreDatabricksManaged: ignoreManaged,
	}
}

func (w Whitelist) Allows(id string) bool {
	_, ok := w.AllowedIDs[id]
	return ok
}

func (w Whitelist) Size() int {
	return len(w.AllowedIDs)
}
