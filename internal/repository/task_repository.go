package repository

import (
	"errors"

	"github.com/croftside/farmbase/internal/models"
	"gorm.io/gorm"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

func (r *TaskRepository) FindByFarm(farmID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.Where("farm_id = ?", farmID).
		Order("due_date ASC").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) FindByIDAndFarm(id, farmID uint) (*models.Task, error) {
	var task models.Task
	err := r.db.Where("id = ? AND farm_id = ?", id, farmID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

func (r *TaskRepository) Delete(id, farmID uint) (int64, error) {
	result := r.db.Where("id = ? AND farm_id = ?", id, farmID).Delete(&models.Task{})
	return result.RowsAffected, result.Error
}
