// Package contract holds the response shapes exchanged between the service
// layer and the views. Views render these, they never reach into repositories.
package contract

import "github.com/nexuscrm/nexus/internal/domain"

// StageCount is one bar of the deals-by-stage histogram.
type StageCount struct {
	Stage domain.DealStage
	Label string // first word of the stage name, for narrow columns
	Count int
}

// SourceCount is one slice of the lead-source breakdown. Sources with a
// zero count are omitted entirely.
type SourceCount struct {
	Source string
	Count  int
}

// WeeklyPoint is one day of the sales-performance series.
type WeeklyPoint struct {
	Day      string
	Current  int
	Previous int
}

// FunnelStep is one row of the conversion funnel on the reports screen.
type FunnelStep struct {
	Name  string
	Count int
}

// Snapshot is the full set of derived figures for the current collections.
// It is immutable once built; an unchanged source state yields the same
// pointer so views can skip re-rendering.
type Snapshot struct {
	PipelineValue int
	ActiveLeads   int
	LostDeals     int
	OpenTasks     int
	TotalDeals    int

	StageHistogram []StageCount
	LeadSources    []SourceCount
	Weekly         []WeeklyPoint
	Funnel         []FunnelStep
}
