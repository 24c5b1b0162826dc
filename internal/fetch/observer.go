package fetch

// Observer receives side-channel notifications about orchestrator activity.
// Implementations must be cheap and must not call back into the orchestrator.
type Observer interface {
	// Transitioned is called after every applied transition.
	Transitioned(resource string, from, to Status)

	// StaleDropped is called when a settled result no longer belongs to the
	// current operation of its key.
	StaleDropped(resource string)

	// Deduplicated is called when PolicyIgnoreInFlight drops an intent.
	Deduplicated(resource string)
}

type noopObserver struct{}

func (noopObserver) Transitioned(string, Status, Status) {}

func (noopObserver) StaleDropped(string) {}

func (noopObserver) Deduplicated(string) {}
