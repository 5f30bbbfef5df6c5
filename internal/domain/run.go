package domain

import "time"

// Run outcome states.
const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Counters accumulates per-client-run accounting. A fresh value is
// created for every client run and folded into its RunOutcome at the end.
type Counters struct {
	Found    int
	Imported int
	Updated  int
	Failed   int
}

// RunOutcome is the persisted result of one client's harvest run.
// Entries are append-only and never mutated.
type RunOutcome struct {
	ID        int64
	ConfigID  int64
	ClientID  string
	Counters  Counters
	Elapsed   time.Duration
	Status    string
	Message   string
	CreatedAt time.Time
}
