package entity

type Action string

const (
	ActionSummary   Action = "summary"
	ActionContinue  Action = "continue"
	ActionOptimize  Action = "optimize"
	ActionChecklist Action = "checklist"
)

func (a Action) Valid() bool {
	switch a {
	case ActionSummary, ActionContinue, ActionOptimize, ActionChecklist:
		return true
	}

	return false
}

func Actions() []Action {
	return []Action{ActionSummary, ActionContinue, ActionOptimize, ActionChecklist}
}
