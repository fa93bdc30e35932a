package pipeline

// State is a step of the update state machine.
type State int

const (
	StateUnauthenticated State = iota
	StateAuthenticated
	StateFetching
	StateAggregating
	StateWriting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateFetching:
		return "fetching"
	case StateAggregating:
		return "aggregating"
	case StateWriting:
		return "writing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
