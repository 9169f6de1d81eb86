package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/taskflow/taskflow-api/internal/model"
	"github.com/taskflow/taskflow-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

const maxTitleLen = 200

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, req model.TaskCreate) (model.Task, error) {
	if err := s.validateTitle(req.Title); err != nil { // Валидация до любого обращения к хранилищу
		return model.Task{}, err
	}

	task := model.Task{
		ID:      uuid.New().String(), // id генерирует сервер, не клиент
		Title:   req.Title,
		DueDate: req.DueDate,
		Status:  model.StatusPending,
	}

	return s.repo.Create(ctx, task)
}

func (s *TaskService) Get(ctx context.Context, id string) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	return s.repo.List(ctx)
}

// Update применяет только переданные поля, остальные не трогает
func (s *TaskService) Update(ctx context.Context, id string, patch model.TaskUpdate) (model.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return task, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.DueDate != nil {
		task.DueDate = patch.DueDate
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}

	if err := s.validateTitle(task.Title); err != nil {
		return task, err
	}

	return s.repo.Update(ctx, task)
}

// Complete безусловно переводит задачу в completed
func (s *TaskService) Complete(ctx context.Context, id string) (model.Task, error) {
	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return task, err
	}

	task.Status = model.StatusCompleted
	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) Stats(ctx context.Context) (repo.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *TaskService) validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrValidation
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return ErrValidation
	}
	return nil
}
