package registry

import "fmt"

// DuplicateNamespaceError reports two modules claiming the same action
// namespace. It names the first claimant for diagnostics.
type DuplicateNamespaceError struct {
	Namespace string
	ClaimedBy string
}

func (e *DuplicateNamespaceError) Error() string {
	return fmt.Sprintf("action namespace %q already registered by module %q", e.Namespace, e.ClaimedBy)
}

// UnknownActionError reports an invocation of a namespace or action that
// was never registered. Action is empty when the whole namespace is missing.
type UnknownActionError struct {
	Namespace string
	Action    string
}

func (e *UnknownActionError) Error() string {
	if e.Action == "" {
		return fmt.Sprintf("unknown action namespace %q", e.Namespace)
	}
	return fmt.Sprintf("unknown action %q in namespace %q", e.Action, e.Namespace)
}
