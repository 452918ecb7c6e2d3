package domain

import "time"

// Lead is a prospective contact not yet converted to an active deal.
// The embedded contact is a snapshot taken at creation, not a live
// reference into the contact directory.
type Lead struct {
	ID        string
	Contact   Contact
	Status    LeadStatus
	Source    string
	CreatedAt time.Time
	Tags      []string
}
