package services

import (
	"errors"
	"time"

	"github.com/croftside/farmbase/internal/models"
	"github.com/croftside/farmbase/internal/repository"
)

var (
	ErrTaskNotFound = errors.New("task not found")
)

// TaskService manages tasks nested under a farm. Every operation resolves the
// parent farm under the caller's ownership first, so tasks on someone else's
// farm are unreachable.
type TaskService struct {
	taskRepo *repository.TaskRepository
	farmRepo *repository.FarmRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, farmRepo *repository.FarmRepository) *TaskService {
	return &TaskService{
		taskRepo: taskRepo,
		farmRepo: farmRepo,
	}
}

type TaskInput struct {
	Description string
	Status      string
	Priority    string
	DueDate     time.Time
}

func (s *TaskService) ownedFarm(userID, farmID uint) (*models.Farm, error) {
	farm, err := s.farmRepo.FindByIDAndFarmer(farmID, userID)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}
	return farm, nil
}

func (s *TaskService) CreateTask(userID, farmID uint, input TaskInput) (*models.Task, error) {
	farm, err := s.ownedFarm(userID, farmID)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		FarmID:      farm.ID,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) ListTasks(userID, farmID uint) ([]models.Task, error) {
	farm, err := s.ownedFarm(userID, farmID)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.FindByFarm(farm.ID)
}

func (s *TaskService) GetTask(userID, farmID, taskID uint) (*models.Task, error) {
	farm, err := s.ownedFarm(userID, farmID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByIDAndFarm(taskID, farm.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) UpdateTask(userID, farmID, taskID uint, input TaskInput) (*models.Task, error) {
	farm, err := s.ownedFarm(userID, farmID)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.FindByIDAndFarm(taskID, farm.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	task.Description = input.Description
	task.Status = input.Status
	task.Priority = input.Priority
	task.DueDate = input.DueDate

	if err := s.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(userID, farmID, taskID uint) error {
	farm, err := s.ownedFarm(userID, farmID)
	if err != nil {
		return err
	}

	affected, err := s.taskRepo.Delete(taskID, farm.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
