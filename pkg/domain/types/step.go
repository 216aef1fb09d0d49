package types

// StepKind identifies one onboarding sub-operation of a space pipeline
type StepKind string

const (
	StepCreateSpace   StepKind = "create_space"
	StepFriendRequest StepKind = "friend_request"
	StepDirectMessage StepKind = "direct_message"
	StepRoleGrant     StepKind = "role_grant"
)

// String returns the string representation
func (k StepKind) String() string {
	return string(k)
}

// StepStatus represents the terminal state of a single onboarding step
type StepStatus string

const (
	StepSucceeded StepStatus = "succeeded"
	StepFailed    StepStatus = "failed"
	// StepSkipped means the option was disabled or a prerequisite step failed
	StepSkipped StepStatus = "skipped"
)

// String returns the string representation
func (s StepStatus) String() string {
	return string(s)
}

// OutcomeStatus represents the overall state of one provisioned space
type OutcomeStatus string

const (
	OutcomeSuccess OutcomeStatus = "success"
	// OutcomePartialSuccess means the space was created but at least one
	// enabled onboarding step did not succeed
	OutcomePartialSuccess OutcomeStatus = "partial_success"
	OutcomeFailed         OutcomeStatus = "failed"
	// OutcomeNotAttempted marks spaces that were never started because the
	// run was cancelled before their pipeline began
	OutcomeNotAttempted OutcomeStatus = "not_attempted"
)

// String returns the string representation
func (s OutcomeStatus) String() string {
	return string(s)
}
