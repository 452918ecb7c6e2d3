package assistant

import (
	"context"

	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/llm"
)

// Labeled error strings shown in place of generated content when the
// model call fails. The views display them verbatim.
const (
	errEmailUnavailable  = "Error: The AI service is currently unavailable. Please check your connection or API key."
	errSummarizeFailed   = "Error: Unable to summarize text at this time."
	errSuggestionsFailed = "Error: Unable to generate suggestions."
)

// Shown when the model answers but with nothing usable.
const (
	emptyEmail      = "Could not generate email."
	emptySummary    = "Could not summarize notes."
	emptySuggestion = "Could not suggest action."
)

type liveService struct {
	client llm.Client
}

func (s *liveService) DraftEmail(ctx context.Context, contactName, topic string, tone Tone) string {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskEmailDraft,
		UserPrompt: emailPrompt(contactName, topic, tone),
	})
	if err != nil {
		return errEmailUnavailable
	}
	if resp.Text == "" {
		return emptyEmail
	}
	return resp.Text
}

func (s *liveService) SummarizeNotes(ctx context.Context, notes string) string {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskSummarize,
		UserPrompt: summaryPrompt(notes),
	})
	if err != nil {
		return errSummarizeFailed
	}
	if resp.Text == "" {
		return emptySummary
	}
	return resp.Text
}

func (s *liveService) SuggestNextAction(ctx context.Context, deal domain.Deal, contact *domain.Contact) string {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:       llm.TaskNextAction,
		UserPrompt: nextActionPrompt(deal, contact),
	})
	if err != nil {
		return errSuggestionsFailed
	}
	if resp.Text == "" {
		return emptySuggestion
	}
	return resp.Text
}
