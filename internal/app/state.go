package app

// State is the application lifecycle state. Transitions run strictly
// forward; the loader is single-threaded by design and callers must
// serialize access to one App instance.
type State int

const (
	// StateConstructed means the context store is built and no module has
	// loaded yet.
	StateConstructed State = iota

	// StateLoading means at least one module has registered.
	StateLoading

	// StateInitialized means Init ran the deferred load hooks. Terminal for
	// registration: LoadModule and Init are both rejected from here on.
	StateInitialized

	// StateRunning means the HTTP surface is serving. Observational only.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateConstructed:
		return "constructed"
	case StateLoading:
		return "loading"
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
