package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TaskStatusTodo       = "Todo"
	TaskStatusInProgress = "InProgress"
	TaskStatusDone       = "Done"
)

const (
	TaskPriorityLow    = "Low"
	TaskPriorityMedium = "Medium"
	TaskPriorityHigh   = "High"
)

type Task struct {
	gorm.Model
	FarmID      uint      `gorm:"not null;index" json:"farm_id"`
	Farm        Farm      `gorm:"foreignKey:FarmID" json:"-"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Status      string    `gorm:"not null;default:Todo" json:"status"`
	Priority    string    `gorm:"not null;default:Medium" json:"priority"`
	DueDate     time.Time `json:"due_date"`
}
