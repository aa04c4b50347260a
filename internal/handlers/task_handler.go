package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"internal-task-api/internal/database"
	"internal-task-api/internal/middleware"
	"internal-task-api/internal/models"
	"internal-task-api/internal/realtime"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateTasksRequest creates one task per assignee in a single batch
type CreateTasksRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	AssigneeIDs []int  `json:"assignee_ids" binding:"required,min=1"`
}

// UpdateTaskRequest carries the requested status. Anything other than "done"
// leaves the task unchanged.
type UpdateTaskRequest struct {
	Status *models.TaskStatus `json:"status"`
}

// CreateTasks handles POST /tasks.
// Assignee ids that do not resolve to an account are skipped without error;
// when two or more resolve, the created tasks share a fresh batch id. The
// batch is written in one transaction so readers never observe a partial one.
func CreateTasks(c *gin.Context) {
	creator := middleware.CurrentUser(c)
	if creator == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateTasksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var assignees []models.User
	for _, id := range req.AssigneeIDs {
		var u models.User
		if err := db.First(&u, id).Error; err != nil {
			continue // unknown ids are dropped silently
		}
		assignees = append(assignees, u)
	}
	if len(assignees) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "No valid assignees found"})
		return
	}

	var batchID *uuid.UUID
	if len(assignees) > 1 {
		id := uuid.New()
		batchID = &id
	}

	tasks := make([]models.Task, 0, len(assignees))
	for _, a := range assignees {
		tasks = append(tasks, models.Task{
			BatchID:    batchID,
			Title:      req.Title,
			Content:    req.Content,
			AssigneeID: a.ID,
			CreatorID:  creator.ID,
			Status:     models.StatusPending,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&tasks).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tasks"})
		return
	}

	for _, t := range tasks {
		realtime.GetHub().Broadcast(t.AssigneeID, realtime.Event{
			Type:   realtime.EventTaskAssigned,
			TaskID: t.ID,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tasks created successfully"})
}

// GetTasks handles GET /tasks. Returns the caller's own tasks, newest first.
func GetTasks(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var tasks []models.Task
	err := database.GetDB().
		Where("assignee_id = ?", user.ID).
		Order("created_at desc").
		Find(&tasks).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tasks"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask handles PUT /tasks/:id.
// The lookup is scoped to the caller, so a task assigned to someone else and
// a task that does not exist produce the same 404. The only transition is
// pending -> done; it stamps completed_at once and cannot be reversed.
func UpdateTask(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	taskID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID must be an integer"})
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var task models.Task
	result := db.Where("id = ? AND assignee_id = ?", taskID, user.ID).First(&task)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch task"})
		}
		return
	}

	if req.Status != nil && *req.Status == models.StatusDone && task.Status != models.StatusDone {
		completedAt := time.Now()
		task.Status = models.StatusDone
		task.CompletedAt = &completedAt

		err := db.Model(&task).Updates(map[string]any{
			"status":       task.Status,
			"completed_at": task.CompletedAt,
		}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
			return
		}

		realtime.GetHub().Broadcast(task.CreatorID, realtime.Event{
			Type:   realtime.EventTaskCompleted,
			TaskID: task.ID,
		})
	}

	c.JSON(http.StatusOK, task)
}
