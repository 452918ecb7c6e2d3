package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/llm"
)

// fakeClient returns a fixed response or error for every call.
type fakeClient struct {
	text string
	err  error
	last llm.GenerateRequest
}

func (f *fakeClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &llm.GenerateResponse{Text: f.text, Model: "fake"}, nil
}

func sampleDeal() domain.Deal {
	return domain.Deal{ID: "d1", Title: "TechFlow Platform Renewal", Value: 45000, Stage: domain.StageNegotiation}
}

func TestNewPicksVariantAtConstruction(t *testing.T) {
	live := New(llm.AIConfig{Enabled: true}, &fakeClient{text: "ok"})
	assert.IsType(t, &liveService{}, live)

	demo := New(llm.AIConfig{Enabled: false}, &fakeClient{text: "ok"})
	assert.IsType(t, &demoService{}, demo)

	noClient := New(llm.AIConfig{Enabled: true}, nil)
	assert.IsType(t, &demoService{}, noClient)
}

func TestDemoOutputsCarryMarkerAndNeverFail(t *testing.T) {
	ctx := context.Background()
	svc := NewDemoWithDelay(time.Millisecond)
	contact := domain.Contact{Name: "Sarah Chen", Company: "TechFlow"}

	email := svc.DraftEmail(ctx, "Sarah Chen", "renewal pricing", ToneFriendly)
	assert.True(t, strings.HasPrefix(email, "[DEMO MODE"), email)
	assert.Contains(t, email, "Sarah Chen")
	assert.Contains(t, email, "renewal pricing")
	assert.Contains(t, email, "The Nexus Team")

	summary := svc.SummarizeNotes(ctx, "long meeting notes")
	assert.True(t, strings.HasPrefix(summary, "[DEMO MODE"), summary)
	assert.Equal(t, 3, strings.Count(summary, "•"))

	suggestion := svc.SuggestNextAction(ctx, sampleDeal(), &contact)
	assert.True(t, strings.HasPrefix(suggestion, "[DEMO MODE"), suggestion)
	assert.Contains(t, suggestion, string(domain.StageNegotiation))
	assert.Contains(t, suggestion, "Sarah Chen")

	dangling := svc.SuggestNextAction(ctx, sampleDeal(), nil)
	assert.Contains(t, dangling, "the client")
}

func TestDemoPausesBeforeAnswering(t *testing.T) {
	delay := 30 * time.Millisecond
	svc := NewDemoWithDelay(delay)

	start := time.Now()
	svc.SummarizeNotes(context.Background(), "notes")
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestDemoPauseRespectsContextCancel(t *testing.T) {
	svc := NewDemoWithDelay(10 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	out := svc.SummarizeNotes(ctx, "notes")
	assert.Less(t, time.Since(start), time.Second)
	assert.True(t, strings.HasPrefix(out, "[DEMO MODE"))
}

func TestLivePassesThroughModelText(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{text: "Hi Sarah, quick note about the renewal."}
	svc := New(llm.AIConfig{Enabled: true}, fake)

	out := svc.DraftEmail(ctx, "Sarah Chen", "renewal", ToneProfessional)
	assert.Equal(t, fake.text, out)
	assert.Equal(t, llm.TaskEmailDraft, fake.last.Task)
	assert.Contains(t, fake.last.UserPrompt, "professional")
	assert.Contains(t, fake.last.UserPrompt, `Sign it off as "The Nexus Team".`)
}

func TestLiveFailuresBecomeLabeledStrings(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{err: errors.New("boom")}
	svc := New(llm.AIConfig{Enabled: true}, fake)
	contact := domain.Contact{Name: "Sarah Chen", Company: "TechFlow"}

	assert.Equal(t, errEmailUnavailable, svc.DraftEmail(ctx, "Sarah", "renewal", ToneUrgent))
	assert.Equal(t, errSummarizeFailed, svc.SummarizeNotes(ctx, "notes"))
	assert.Equal(t, errSuggestionsFailed, svc.SuggestNextAction(ctx, sampleDeal(), &contact))
}

func TestLivePromptIncludesDealContext(t *testing.T) {
	ctx := context.Background()
	fake := &fakeClient{text: "Schedule the contract review."}
	svc := New(llm.AIConfig{Enabled: true}, fake)

	svc.SuggestNextAction(ctx, sampleDeal(), nil)
	assert.Contains(t, fake.last.UserPrompt, "TechFlow Platform Renewal")
	assert.Contains(t, fake.last.UserPrompt, "$45000")
	assert.Contains(t, fake.last.UserPrompt, "Unknown Contact")
	assert.Equal(t, llm.TaskNextAction, fake.last.Task)
}
