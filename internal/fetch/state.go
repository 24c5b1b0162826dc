package fetch

// Key identifies one independently loaded resource, e.g. "product-list" or
// "product:42".
type Key string

// Status is the tag of a State.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is the view-state of a single key.
//
// Data is meaningful only when HasData is set: always in StatusSuccess, and in
// StatusLoading or StatusError when a refresh kept the previous value visible.
type State[T any] struct {
	Status     Status
	Data       T
	HasData    bool
	Err        string // user-facing message, set only in StatusError
	Refreshing bool   // loading while the previous Data stays visible
	Generation uint64 // operation that started or produced this state
}

// Loading reports whether an operation is in flight.
func (s State[T]) Loading() bool {
	return s.Status == StatusLoading
}
