package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/nexuscrm/nexus/internal/domain"
)

// DefaultDemoDelay approximates a model round trip so the demo feels
// like a real call.
const DefaultDemoDelay = 1500 * time.Millisecond

// demoService returns canned content after a short pause. It never
// fails; its output always carries the [DEMO MODE marker.
type demoService struct {
	delay time.Duration
}

// NewDemo creates the demo variant with the default delay.
func NewDemo() Service {
	return &demoService{delay: DefaultDemoDelay}
}

// NewDemoWithDelay creates the demo variant with a custom delay.
// Tests pass something small.
func NewDemoWithDelay(delay time.Duration) Service {
	return &demoService{delay: delay}
}

func (s *demoService) pause(ctx context.Context) {
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

func (s *demoService) DraftEmail(ctx context.Context, contactName, topic string, tone Tone) string {
	s.pause(ctx)
	return fmt.Sprintf(
		"[DEMO MODE - No API Key Detected]\n\nSubject: %s - Inquiry\n\nHi %s,\n\nI hope you're having a great week. I wanted to reach out regarding %s. Given our recent discussions, I believe we can provide significant value here.\n\nLet me know if you have 10 minutes to chat this week.\n\nBest,\nThe Nexus Team",
		topic, contactName, topic)
}

func (s *demoService) SummarizeNotes(ctx context.Context, notes string) string {
	s.pause(ctx)
	return "[DEMO MODE]\n\nHere is a summary of your notes:\n\n" +
		"• Key discussion point regarding project scope identified.\n" +
		"• Action item assigned to the design team for next Tuesday.\n" +
		"• Budget constraints were reviewed and approved."
}

func (s *demoService) SuggestNextAction(ctx context.Context, deal domain.Deal, contact *domain.Contact) string {
	s.pause(ctx)
	who := "the client"
	if contact != nil {
		who = contact.Name
	}
	return fmt.Sprintf(
		"[DEMO MODE] Based on the deal stage %q, I recommend scheduling a follow-up call with %s to address any technical questions before sending the final contract.",
		deal.Stage, who)
}
