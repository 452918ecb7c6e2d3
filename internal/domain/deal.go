package domain

import "time"

// Deal is a tracked sales opportunity moving through the pipeline.
type Deal struct {
	ID                string
	Title             string
	Value             int // whole dollars
	Stage             DealStage
	ContactID         string
	ExpectedCloseDate time.Time
	Probability       int // 0–100
}
