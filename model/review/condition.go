package review

// Condition gates a workflow edge on the value flowing through it.
type Condition func(value interface{}) bool

// ApprovalCondition and RejectionCondition are ready-made edge conditions for
// host workflow engines. They are not complements: unrecognized reply text
// fails both, which callers may treat as a distinct "re-prompt" branch.
var (
	ApprovalCondition  Condition = IsApproved
	RejectionCondition Condition = IsRejected
)
