package core

// DriftStatus represents the sync state of a resource.
type DriftStatus string

const (
	StatusSynced  DriftStatus = "Synced"
	StatusDrifted DriftStatus = "Drifted"
	StatusError   DriftStatus = "Error"
)

// DriftResult holds the audit result for a single resource.
type DriftResult struct {
	Kind     string
	Key      string
	Resource string
	Status   DriftStatus
	Detail   string
	Diff     string
}

// CheckDrift performs a read-only audit of every member of the reality, in
// declaration order. Unlike Verify it does not short-circuit: it reports the
// state of every member, with a diff where the resource can render one.
func CheckDrift(ctx *SystemContext, reality *Reality) []DriftResult {
	var results []DriftResult
	for _, res := range reality.Resources() {
		result := DriftResult{
			Kind:     res.Kind(),
			Key:      res.Key().String(),
			Resource: res.Describe(),
			Status:   StatusSynced,
		}

		ok, err := res.Verify(ctx)
		if err != nil {
			result.Status = StatusError
			result.Detail = err.Error()
		} else if !ok {
			result.Status = StatusDrifted
			result.Detail = "resource state does not match declaration"
			if differ, ok := res.(Differ); ok {
				if d, err := differ.Diff(ctx); err == nil && d != "" {
					result.Diff = d
				}
			}
		}

		results = append(results, result)
	}
	return results
}
