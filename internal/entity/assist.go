package entity

type AssistStatus string

const (
	AssistApplied AssistStatus = "applied"
	AssistFailed  AssistStatus = "failed"
	AssistBusy    AssistStatus = "busy"
	AssistSkipped AssistStatus = "skipped"
	AssistEmpty   AssistStatus = "empty"
	AssistGone    AssistStatus = "gone"
)

// AssistEvent reports the pipeline's loading flag and, once a request
// settles, its outcome.
type AssistEvent struct {
	Loading bool
	NoteID  string
	Action  Action
	Status  AssistStatus
	Err     string
}
