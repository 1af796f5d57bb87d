// Package drift classifies the relationship between an environment's
// declared spec and its live installed state.
package drift

// Status describes how a live environment relates to its declared spec.
type Status int

const (
	// Absent means the environment does not exist in the backend.
	Absent Status = iota
	// Synced means the environment exists and was built from the declared spec.
	Synced
	// Drifted means the environment exists but its recorded spec differs
	// from the declared one, or no record of it survives.
	Drifted
)

func (s Status) String() string {
	switch s {
	case Absent:
		return "absent"
	case Synced:
		return "synced"
	case Drifted:
		return "drifted"
	}
	return "unknown"
}

// Classify is a pure function of the declared spec hash and the observed
// live state. An existing environment with no recorded hash classifies as
// Drifted: without a record there is no way to prove the environment matches,
// so reconciliation conservatively re-applies.
func Classify(declaredHash string, exists bool, recordedHash string, hasRecorded bool) Status {
	if !exists {
		return Absent
	}
	if hasRecorded && recordedHash == declaredHash {
		return Synced
	}
	return Drifted
}
