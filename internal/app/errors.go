package app

import "fmt"

// AlreadyInitializedError reports a second call to Init. Initialization is
// strictly one-shot; calling it again is a programmer error.
type AlreadyInitializedError struct{}

func (e *AlreadyInitializedError) Error() string {
	return "application already initialized"
}

// LifecycleError reports an operation invoked in a state that does not
// permit it, such as LoadModule after Init.
type LifecycleError struct {
	Op    string
	State State
}

func (e *LifecycleError) Error() string {
	return fmt.Sprintf("%s is not valid in state %q", e.Op, e.State)
}
