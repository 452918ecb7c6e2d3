package service

import (
	"context"
	"sync"

	"github.com/nexuscrm/nexus/internal/contract"
	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/repository"
)

// metricsService recomputes the derived snapshot lazily. The snapshot is
// cached against the (deals, leads, tasks) version triple; unchanged
// collections return the cached pointer unchanged so downstream renders
// can compare identity.
type metricsService struct {
	deals repository.DealRepo
	leads repository.LeadRepo
	tasks repository.TaskRepo

	mu     sync.Mutex
	key    [3]uint64
	cached *contract.Snapshot
}

func NewMetricsService(deals repository.DealRepo, leads repository.LeadRepo, tasks repository.TaskRepo) MetricsService {
	return &metricsService{deals: deals, leads: leads, tasks: tasks}
}

func (s *metricsService) Snapshot(ctx context.Context) (*contract.Snapshot, error) {
	key := [3]uint64{s.deals.Version(), s.leads.Version(), s.tasks.Version()}

	s.mu.Lock()
	if s.cached != nil && s.key == key {
		snap := s.cached
		s.mu.Unlock()
		return snap, nil
	}
	s.mu.Unlock()

	deals, err := s.deals.List(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	snap := computeSnapshot(deals, leads, tasks)

	s.mu.Lock()
	s.key = key
	s.cached = snap
	s.mu.Unlock()

	return snap, nil
}

func computeSnapshot(deals []domain.Deal, leads []domain.Lead, tasks []domain.Task) *contract.Snapshot {
	snap := &contract.Snapshot{TotalDeals: len(deals), ActiveLeads: len(leads)}

	for _, d := range deals {
		snap.PipelineValue += d.Value
		if d.Stage == domain.StageClosedLost {
			snap.LostDeals++
		}
	}
	for _, t := range tasks {
		if !t.Completed {
			snap.OpenTasks++
		}
	}

	snap.StageHistogram = stageHistogram(deals)
	snap.LeadSources = leadSourceHistogram(leads)
	snap.Weekly = weeklyPerformance(snap.PipelineValue)
	snap.Funnel = conversionFunnel(deals, leads)

	return snap
}

// stageHistogram counts deals per canonical stage, in canonical order.
// Deals carrying an unknown stage are excluded from the bars but still
// count toward PipelineValue and TotalDeals.
func stageHistogram(deals []domain.Deal) []contract.StageCount {
	counts := make(map[domain.DealStage]int, len(domain.StageOrder))
	for _, d := range deals {
		counts[d.Stage]++
	}

	out := make([]contract.StageCount, 0, len(domain.StageOrder))
	for _, stage := range domain.StageOrder {
		out = append(out, contract.StageCount{
			Stage: stage,
			Label: stage.ShortLabel(),
			Count: counts[stage],
		})
	}
	return out
}

// leadSourceHistogram counts leads per canonical source, dropping zero
// entries. Order follows domain.LeadSources, never discovery order.
func leadSourceHistogram(leads []domain.Lead) []contract.SourceCount {
	counts := make(map[string]int, len(domain.LeadSources))
	for _, l := range leads {
		counts[l.Source]++
	}

	var out []contract.SourceCount
	for _, source := range domain.LeadSources {
		if n := counts[source]; n > 0 {
			out = append(out, contract.SourceCount{Source: source, Count: n})
		}
	}
	return out
}

// weeklyPerformance is a display placeholder, not a genuine computation:
// six of the seven points are fixed offsets from a base figure, and the
// midweek point tracks a tenth of the pipeline value so the chart visibly
// reacts to deal churn. Deterministic on purpose.
func weeklyPerformance(pipelineValue int) []contract.WeeklyPoint {
	const base = 2000
	return []contract.WeeklyPoint{
		{Day: "Mon", Current: base + 600, Previous: base - 200},
		{Day: "Tue", Current: base + 1400, Previous: base + 100},
		{Day: "Wed", Current: pipelineValue / 10, Previous: base + 500},
		{Day: "Thu", Current: base + 900, Previous: base + 800},
		{Day: "Fri", Current: base + 1700, Previous: base - 500},
		{Day: "Sat", Current: base + 800, Previous: base + 200},
		{Day: "Sun", Current: base + 1200, Previous: base + 400},
	}
}

func conversionFunnel(deals []domain.Deal, leads []domain.Lead) []contract.FunnelStep {
	var qualified, won int
	for _, l := range leads {
		if l.Status == domain.LeadQualified {
			qualified++
		}
	}
	for _, d := range deals {
		if d.Stage == domain.StageClosedWon {
			won++
		}
	}
	return []contract.FunnelStep{
		{Name: "Leads", Count: len(leads)},
		{Name: "Qualified", Count: qualified},
		{Name: "Deals", Count: len(deals)},
		{Name: "Closed", Count: won},
	}
}
