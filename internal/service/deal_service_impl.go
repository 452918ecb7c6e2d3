package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/repository"
)

const (
	// New deals start at the top of the pipeline with a nominal chance.
	initialStage       = domain.StageDiscovery
	initialProbability = 20
)

type dealService struct {
	deals repository.DealRepo
}

func NewDealService(deals repository.DealRepo) DealService {
	return &dealService{deals: deals}
}

func (s *dealService) List(ctx context.Context) ([]domain.Deal, error) {
	return s.deals.List(ctx)
}

func (s *dealService) Create(ctx context.Context, title, value string) (*domain.Deal, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	amount, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || amount < 0 {
		amount = 0
	}

	d := domain.Deal{
		ID:                uuid.New().String(),
		Title:             title,
		Value:             amount,
		Stage:             initialStage,
		ContactID:         repository.DefaultContactID,
		ExpectedCloseDate: time.Now().UTC(),
		Probability:       initialProbability,
	}
	if err := s.deals.Append(ctx, d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *dealService) ChangeStage(ctx context.Context, dealID string, stage domain.DealStage) error {
	err := s.deals.SetStage(ctx, dealID, stage)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
