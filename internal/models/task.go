package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the status of a task
type TaskStatus string

const (
	StatusPending TaskStatus = "pending"
	StatusDone    TaskStatus = "done"
)

// Task represents an assignment given to exactly one employee. Tasks created
// together for several assignees share a batch id; a single-assignee task has
// none. CompletedAt is set exactly once, when the assignee marks it done.
type Task struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	BatchID     *uuid.UUID `json:"batch_id" gorm:"type:text"`
	Title       string     `json:"title" gorm:"not null"`
	Content     string     `json:"content" gorm:"type:text;not null"`
	AssigneeID  int        `json:"assignee_id" gorm:"not null;index"`
	CreatorID   int        `json:"creator_id" gorm:"not null"`
	Status      TaskStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// TableName specifies the table name for Task Model
func (Task) TableName() string {
	return "tasks"
}
