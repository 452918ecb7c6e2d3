package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/nexuscrm/nexus/internal/domain"
	"github.com/nexuscrm/nexus/internal/repository"
)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Create(ctx context.Context, title string) (*domain.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	t := domain.Task{
		ID:       uuid.New().String(),
		Title:    title,
		DueDate:  "Tomorrow",
		Priority: domain.PriorityMedium,
	}
	if err := s.tasks.Append(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *taskService) Toggle(ctx context.Context, taskID string) error {
	current, err := s.tasks.GetByID(ctx, taskID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.tasks.SetCompleted(ctx, taskID, !current.Completed)
}
