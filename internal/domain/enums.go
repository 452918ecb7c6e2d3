package domain

import "strings"

type DealStage string

const (
	StageDiscovery     DealStage = "Discovery"
	StageQualification DealStage = "Qualification"
	StageProposal      DealStage = "Proposal"
	StageNegotiation   DealStage = "Negotiation"
	StageClosedWon     DealStage = "Closed Won"
	StageClosedLost    DealStage = "Closed Lost"
)

// StageOrder is the canonical pipeline ordering. Histograms, board columns
// and stage cycling all follow this order, never discovery order.
var StageOrder = []DealStage{
	StageDiscovery,
	StageQualification,
	StageProposal,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// ShortLabel returns the first word of the stage name for compact display
// ("Closed Won" → "Closed").
func (s DealStage) ShortLabel() string {
	fields := strings.Fields(string(s))
	if len(fields) == 0 {
		return string(s)
	}
	return fields[0]
}

// Valid reports whether the stage is one of the canonical pipeline stages.
func (s DealStage) Valid() bool {
	for _, known := range StageOrder {
		if s == known {
			return true
		}
	}
	return false
}

type LeadStatus string

const (
	LeadNew         LeadStatus = "New"
	LeadContacted   LeadStatus = "Contacted"
	LeadQualified   LeadStatus = "Qualified"
	LeadUnqualified LeadStatus = "Unqualified"
)

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

type ActivityType string

const (
	ActivityCall  ActivityType = "call"
	ActivityEmail ActivityType = "email"
	ActivityNote  ActivityType = "note"
)

// LeadSources is the canonical list of lead sources. The source histogram
// follows this ordering; leads with any other source string still display
// but are not charted.
var LeadSources = []string{"Website", "Referral", "LinkedIn", "Ads", "Other"}
