package repository

import (
	"time"

	"github.com/nexuscrm/nexus/internal/domain"
)

// Seed data for the demo workspace. Everything here lives only in process
// memory; quitting the app discards all of it.

// DefaultContactID is the contact assigned to deals and leads created
// through the quick-add form.
const DefaultContactID = "c1"

// SeedContacts returns the starting contact directory.
func SeedContacts() []domain.Contact {
	return []domain.Contact{
		{ID: "c1", Name: "Sarah Chen", Email: "sarah.chen@techflow.io", Phone: "+1 (415) 555-0132", Company: "TechFlow", Role: "VP Engineering", Avatar: "avatars/sarah.png"},
		{ID: "c2", Name: "James Whitfield", Email: "j.whitfield@designco.com", Phone: "+1 (212) 555-0178", Company: "DesignCo", Role: "Creative Director", Avatar: "avatars/james.png"},
		{ID: "c3", Name: "Priya Nair", Email: "priya@cloudstack.dev", Phone: "+44 20 7946 0810", Company: "CloudStack", Role: "CTO", Avatar: "avatars/priya.png"},
		{ID: "c4", Name: "Marcus Albright", Email: "marcus@brightline.co", Phone: "+1 (312) 555-0046", Company: "Brightline", Role: "Head of Sales", Avatar: "avatars/marcus.png"},
		{ID: "c5", Name: "Elena Kovacs", Email: "e.kovacs@fabrikam.hu", Phone: "+36 1 555 0199", Company: "Fabrikam", Role: "Procurement Lead", Avatar: "avatars/elena.png"},
	}
}

// SeedCompanies returns the starting company directory.
func SeedCompanies() []domain.Company {
	return []domain.Company{
		{ID: "co1", Name: "TechFlow", Industry: "SaaS", Location: "San Francisco, CA", Employees: "200-500", Website: "techflow.io", Logo: "logos/techflow.png"},
		{ID: "co2", Name: "DesignCo", Industry: "Creative Agency", Location: "New York, NY", Employees: "50-200", Website: "designco.com", Logo: "logos/designco.png"},
		{ID: "co3", Name: "CloudStack", Industry: "Infrastructure", Location: "London, UK", Employees: "500-1000", Website: "cloudstack.dev", Logo: "logos/cloudstack.png"},
		{ID: "co4", Name: "Brightline", Industry: "Fintech", Location: "Chicago, IL", Employees: "50-200", Website: "brightline.co", Logo: "logos/brightline.png"},
		{ID: "co5", Name: "Fabrikam", Industry: "Manufacturing", Location: "Budapest, HU", Employees: "1000+", Website: "fabrikam.hu", Logo: "logos/fabrikam.png"},
	}
}

// SeedDeals returns the starting pipeline.
func SeedDeals(now time.Time) []domain.Deal {
	return []domain.Deal{
		{ID: "d1", Title: "TechFlow Platform Renewal", Value: 45000, Stage: domain.StageNegotiation, ContactID: "c1", ExpectedCloseDate: now.AddDate(0, 0, 14), Probability: 70},
		{ID: "d2", Title: "DesignCo Rebrand Retainer", Value: 18000, Stage: domain.StageProposal, ContactID: "c2", ExpectedCloseDate: now.AddDate(0, 0, 21), Probability: 50},
		{ID: "d3", Title: "CloudStack Enterprise Tier", Value: 92000, Stage: domain.StageQualification, ContactID: "c3", ExpectedCloseDate: now.AddDate(0, 1, 10), Probability: 35},
		{ID: "d4", Title: "Brightline Onboarding Pilot", Value: 12500, Stage: domain.StageDiscovery, ContactID: "c4", ExpectedCloseDate: now.AddDate(0, 2, 0), Probability: 20},
		{ID: "d5", Title: "Fabrikam Logistics Suite", Value: 64000, Stage: domain.StageClosedWon, ContactID: "c5", ExpectedCloseDate: now.AddDate(0, 0, -7), Probability: 100},
		{ID: "d6", Title: "TechFlow Analytics Add-on", Value: 9000, Stage: domain.StageClosedLost, ContactID: "c1", ExpectedCloseDate: now.AddDate(0, 0, -14), Probability: 0},
	}
}

// SeedLeads returns the starting lead list.
func SeedLeads(now time.Time) []domain.Lead {
	contacts := SeedContacts()
	return []domain.Lead{
		{ID: "l1", Contact: domain.Contact{ID: "lc1", Name: "Tom Osei", Email: "tom.osei@meridianlabs.com", Company: "Meridian Labs", Role: "COO"}, Status: domain.LeadNew, Source: "Website", CreatedAt: now.AddDate(0, 0, -2), Tags: []string{"Enterprise", "Hot"}},
		{ID: "l2", Contact: domain.Contact{ID: "lc2", Name: "Ingrid Larsen", Email: "ingrid@nordicsoft.no", Company: "NordicSoft", Role: "Founder"}, Status: domain.LeadContacted, Source: "Referral", CreatedAt: now.AddDate(0, 0, -5), Tags: []string{"SMB"}},
		{ID: "l3", Contact: domain.Contact{ID: "lc3", Name: "Diego Fuentes", Email: "diego@andina.cl", Company: "Andina Retail", Role: "IT Director"}, Status: domain.LeadQualified, Source: "LinkedIn", CreatedAt: now.AddDate(0, 0, -9), Tags: []string{"Retail", "Q3"}},
		{ID: "l4", Contact: domain.Contact{ID: "lc4", Name: "Hannah Brooks", Email: "h.brooks@verity.ai", Company: "Verity AI", Role: "Product Lead"}, Status: domain.LeadNew, Source: "Ads", CreatedAt: now.AddDate(0, 0, -1), Tags: []string{"Startup"}},
		{ID: "l5", Contact: domain.Contact{ID: "lc5", Name: "Kenji Watanabe", Email: "kenji@hoshiden.jp", Company: "Hoshiden", Role: "GM"}, Status: domain.LeadContacted, Source: "Website", CreatedAt: now.AddDate(0, 0, -12), Tags: []string{"Enterprise"}},
		{ID: "l6", Contact: contacts[4], Status: domain.LeadUnqualified, Source: "Other", CreatedAt: now.AddDate(0, 0, -20), Tags: []string{"Cold"}},
	}
}

// SeedTasks returns the starting task list.
func SeedTasks() []domain.Task {
	return []domain.Task{
		{ID: "t1", Title: "Send revised proposal to DesignCo", DueDate: "Today", Priority: domain.PriorityHigh, RelatedTo: "DesignCo Rebrand Retainer"},
		{ID: "t2", Title: "Follow up with Sarah on renewal terms", DueDate: "Tomorrow", Priority: domain.PriorityHigh, RelatedTo: "TechFlow Platform Renewal"},
		{ID: "t3", Title: "Prepare CloudStack security questionnaire", DueDate: "Fri", Priority: domain.PriorityMedium, RelatedTo: "CloudStack Enterprise Tier"},
		{ID: "t4", Title: "Update Q3 forecast spreadsheet", DueDate: "Next week", Priority: domain.PriorityLow},
		{ID: "t5", Title: "Archive Fabrikam contract documents", DueDate: "Done", Completed: true, Priority: domain.PriorityLow, RelatedTo: "Fabrikam Logistics Suite"},
	}
}

// SeedActivities returns the dashboard activity feed.
func SeedActivities() []domain.Activity {
	return []domain.Activity{
		{ID: "a1", Type: domain.ActivityCall, Description: "Call with Sarah Chen about renewal pricing", Date: "2h ago"},
		{ID: "a2", Type: domain.ActivityEmail, Description: "Sent proposal v2 to James Whitfield", Date: "5h ago"},
		{ID: "a3", Type: domain.ActivityNote, Description: "CloudStack wants a security review before legal", Date: "Yesterday"},
		{ID: "a4", Type: domain.ActivityEmail, Description: "Intro email to Tom Osei (Meridian Labs)", Date: "Yesterday"},
		{ID: "a5", Type: domain.ActivityCall, Description: "Discovery call with Brightline sales team", Date: "2 days ago"},
	}
}

// SeedDocuments returns the document browser contents.
func SeedDocuments() []domain.Document {
	return []domain.Document{
		{ID: "f1", Name: "TechFlow_Renewal_Contract.pdf", Type: "PDF", Size: "1.2 MB", Date: "Oct 18"},
		{ID: "f2", Name: "Q3_Pipeline_Forecast.xlsx", Type: "XLS", Size: "348 KB", Date: "Oct 15"},
		{ID: "f3", Name: "DesignCo_Brand_Moodboard.png", Type: "IMG", Size: "4.7 MB", Date: "Oct 12"},
		{ID: "f4", Name: "CloudStack_Security_Review.docx", Type: "DOC", Size: "96 KB", Date: "Oct 9"},
		{ID: "f5", Name: "Fabrikam_Signed_SOW.pdf", Type: "PDF", Size: "820 KB", Date: "Sep 30"},
	}
}

// SeedProfile returns the initial account profile.
func SeedProfile() domain.UserProfile {
	return domain.UserProfile{FirstName: "Matthew", LastName: "Parker", Email: "matthew@nexus.com"}
}
