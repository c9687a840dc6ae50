package model

// Alert is the rendered chat notification for one scan with conflicts.
type Alert struct {
	Mention       string
	Text          string
	Authors       []string
	CommitSummary string
}
