package value

import "strings"

// WorkflowState is the provider-owned lifecycle state of an investor
// record. The vocabulary belongs to the provider; we only carry it.
type WorkflowState string

const (
	StateInvited   WorkflowState = "invited"
	StateSigned    WorkflowState = "signed"
	StateWaiting   WorkflowState = "waiting"
	StateAccepted  WorkflowState = "accepted"
	StateDraft     WorkflowState = "draft"
	StateActive    WorkflowState = "active"
	StatePending   WorkflowState = "pending"
	StateCancelled WorkflowState = "cancelled"
)

func (s WorkflowState) String() string {
	return string(s)
}

// resumableStates is the allow-list of states an investor may pick up and
// continue from. Policy choice: the narrow list. Records past "waiting"
// have either finished checkout or need provider-side intervention, so we
// send those investors through a fresh intake instead of resuming.
var resumableStates = map[WorkflowState]struct{}{
	StateInvited: {},
	StateSigned:  {},
	StateWaiting: {},
}

// Resumable reports whether the state allows resuming an existing intake.
// Matching is case-insensitive since the provider is not consistent about
// casing across API versions.
func (s WorkflowState) Resumable() bool {
	_, ok := resumableStates[WorkflowState(strings.ToLower(string(s)))]
	return ok
}
