package assistant

import (
	"fmt"
	"strings"

	"github.com/nexuscrm/nexus/internal/domain"
)

func emailPrompt(contactName, topic string, tone Tone) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short, %s email to %s.\n", strings.ToLower(string(tone)), contactName)
	fmt.Fprintf(&b, "The email is regarding: %s.\n", topic)
	b.WriteString("Keep it concise (under 150 words).\n")
	b.WriteString(`Sign it off as "The Nexus Team".`)
	return b.String()
}

func summaryPrompt(notes string) string {
	var b strings.Builder
	b.WriteString("Summarize the following meeting notes into 3 clear, actionable bullet points.\n\n")
	b.WriteString("Notes:\n")
	b.WriteString(notes)
	return b.String()
}

func nextActionPrompt(deal domain.Deal, contact *domain.Contact) string {
	contactInfo := "Unknown Contact"
	if contact != nil {
		contactInfo = fmt.Sprintf("Contact: %s (%s)", contact.Name, contact.Company)
	}

	var b strings.Builder
	b.WriteString("Acting as a sales coach, suggest the SINGLE best next step for this deal.\n\n")
	b.WriteString("Deal Context:\n")
	fmt.Fprintf(&b, "Title: %s\n", deal.Title)
	fmt.Fprintf(&b, "Value: $%d\n", deal.Value)
	fmt.Fprintf(&b, "Current Stage: %s\n", deal.Stage)
	b.WriteString(contactInfo)
	b.WriteString("\n\nKeep the suggestion under 50 words.")
	return b.String()
}
