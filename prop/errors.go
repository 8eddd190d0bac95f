package prop

import "fmt"

// PropertyFailed is panicked when the asserted condition rejects a
// drawn value. The driver recovers it during Generate and during
// shrink-candidate trials; it is left to escalate to the caller on the
// final, minimized replay.
type PropertyFailed struct {
	Label string
	Value any
}

func (e PropertyFailed) Error() string {
	return fmt.Sprintf("Property '%s' failed for input:\n%#v", e.Label, e.Value)
}

// NondeterministicProperty is panicked when the final replay of a
// minimized counterexample unexpectedly succeeds — the property's
// predicate depends on something other than the recorded draws.
type NondeterministicProperty struct {
	Label string
	Value any
}

func (e NondeterministicProperty) Error() string {
	return fmt.Sprintf("property '%s' did not reproduce its failure on the minimized input:\n%#v", e.Label, e.Value)
}
