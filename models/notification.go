package models

// OutcomeStatus classifies the result of one notification channel attempt.
type OutcomeStatus string

const (
	OutcomeSent    OutcomeStatus = "sent"
	OutcomeSkipped OutcomeStatus = "skipped"
	OutcomeFailed  OutcomeStatus = "failed"
)

// ChannelOutcome records what happened on a single channel during a
// booking fan-out. Outcomes are logged for observability only; they never
// influence the HTTP verdict returned to the client.
type ChannelOutcome struct {
	Channel string        `json:"channel"`
	Status  OutcomeStatus `json:"status"`
	Error   string        `json:"error,omitempty"`
}
