package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/nexuscrm/nexus/internal/assistant"
	"github.com/nexuscrm/nexus/internal/cli"
	"github.com/nexuscrm/nexus/internal/llm"
	"github.com/nexuscrm/nexus/internal/repository"
	"github.com/nexuscrm/nexus/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	now := time.Now()

	// Wire repositories. All state is seeded in memory and discarded on
	// exit.
	dealRepo := repository.NewMemoryDealRepo(repository.SeedDeals(now))
	leadRepo := repository.NewMemoryLeadRepo(repository.SeedLeads(now))
	taskRepo := repository.NewMemoryTaskRepo(repository.SeedTasks())
	contactRepo := repository.NewMemoryContactRepo(repository.SeedContacts())
	companyRepo := repository.NewMemoryCompanyRepo(repository.SeedCompanies())
	activityRepo := repository.NewMemoryActivityRepo(repository.SeedActivities())
	documentRepo := repository.NewMemoryDocumentRepo(repository.SeedDocuments())
	profileRepo := repository.NewMemoryProfileRepo(repository.SeedProfile())

	// Wire the assistant. Without a Gemini key the demo variant answers
	// with canned content after a short pause.
	aiCfg := llm.LoadConfig()
	var aiClient llm.Client
	if aiCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if aiCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		client, err := llm.NewGeminiClient(context.Background(), aiCfg, observer)
		if err != nil {
			return fmt.Errorf("wiring ai client: %w", err)
		}
		aiClient = client
	}

	app := &cli.App{
		Deals:     service.NewDealService(dealRepo),
		Leads:     service.NewLeadService(leadRepo, contactRepo),
		Tasks:     service.NewTaskService(taskRepo),
		Directory: service.NewDirectoryService(contactRepo, companyRepo, activityRepo, documentRepo),
		Profile:   service.NewProfileService(profileRepo),
		Metrics:   service.NewMetricsService(dealRepo, leadRepo, taskRepo),
		Assistant: assistant.New(aiCfg, aiClient),
	}

	return cli.NewRootCmd(app).Execute()
}
