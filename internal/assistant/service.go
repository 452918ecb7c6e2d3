package assistant

import (
	"context"

	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/llm"
)

// Tone selects the register of a drafted email.
type Tone string

const (
	ToneProfessional Tone = "Professional"
	ToneFriendly     Tone = "Friendly"
	ToneUrgent       Tone = "Urgent"
)

// Tones lists the selectable tones in display order.
var Tones = []Tone{ToneProfessional, ToneFriendly, ToneUrgent}

// Service generates assistant content for the AI studio. Every method
// returns displayable text: failures come back as labeled error strings,
// never as Go errors, so the views can render whatever they get.
type Service interface {
	// DraftEmail writes a short email to contactName about topic in the
	// requested tone, signed off as The Nexus Team.
	DraftEmail(ctx context.Context, contactName, topic string, tone Tone) string

	// SummarizeNotes condenses free-form notes into three bullet points.
	SummarizeNotes(ctx context.Context, notes string) string

	// SuggestNextAction recommends the single best next step for a deal.
	// contact may be nil when the deal's contact reference dangles.
	SuggestNextAction(ctx context.Context, deal domain.Deal, contact *domain.Contact) string
}

// New picks the service variant once, at construction. A usable client
// and an enabled config produce live generation; anything else yields
// the canned demo variant.
func New(cfg llm.AIConfig, client llm.Client) Service {
	if cfg.Enabled && client != nil {
		return &liveService{client: client}
	}
	return NewDemo()
}
