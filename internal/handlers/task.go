package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/croftside/farmbase/internal/middleware"
	"github.com/croftside/farmbase/internal/services"
	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService *services.TaskService
}

func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

type TaskRequest struct {
	Description string    `json:"description" binding:"required"`
	Status      string    `json:"status" binding:"required,oneof=Todo InProgress Done"`
	Priority    string    `json:"priority" binding:"required,oneof=Low Medium High"`
	DueDate     time.Time `json:"due_date" binding:"required"`
}

type taskIDParam struct {
	FarmID uint `uri:"id" binding:"required"`
	TaskID uint `uri:"taskId" binding:"required"`
}

func (r TaskRequest) toInput() services.TaskInput {
	return services.TaskInput{
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     r.DueDate,
	}
}

func (h *TaskHandler) respondTaskError(c *gin.Context, userID uint, err error, action string) {
	switch {
	case errors.Is(err, services.ErrFarmNotFound):
		respondError(c, http.StatusNotFound, "Farm not found")
	case errors.Is(err, services.ErrTaskNotFound):
		respondError(c, http.StatusNotFound, "Task not found")
	default:
		log.Printf("%s failed for user %d: %v", action, userID, err)
		respondError(c, http.StatusInternalServerError, "Unable to "+action)
	}
}

// CreateTask godoc
// @Summary Create a task on one of the caller's farms
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farm ID"
// @Param request body TaskRequest true "Task details"
// @Success 201 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /farms/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var param farmIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondError(c, http.StatusBadRequest, "invalid farm ID")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	task, err := h.taskService.CreateTask(userID, param.ID, req.toInput())
	if err != nil {
		h.respondTaskError(c, userID, err, "create task")
		return
	}

	respondSuccess(c, http.StatusCreated, "Task created successfully", task)
}

// ListTasks godoc
// @Summary List tasks on one of the caller's farms
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farm ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /farms/{id}/tasks [get]
func (h *TaskHandler) ListTasks(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var param farmIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondError(c, http.StatusBadRequest, "invalid farm ID")
		return
	}

	tasks, err := h.taskService.ListTasks(userID, param.ID)
	if err != nil {
		h.respondTaskError(c, userID, err, "list tasks")
		return
	}

	respondSuccess(c, http.StatusOK, "Tasks retrieved", tasks)
}

// GetTask godoc
// @Summary Get a task on one of the caller's farms
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farm ID"
// @Param taskId path int true "Task ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /farms/{id}/tasks/{taskId} [get]
func (h *TaskHandler) GetTask(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var param taskIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondError(c, http.StatusBadRequest, "invalid task ID")
		return
	}

	task, err := h.taskService.GetTask(userID, param.FarmID, param.TaskID)
	if err != nil {
		h.respondTaskError(c, userID, err, "fetch task")
		return
	}

	respondSuccess(c, http.StatusOK, "Task retrieved", task)
}

// UpdateTask godoc
// @Summary Update a task on one of the caller's farms
// @Tags tasks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farm ID"
// @Param taskId path int true "Task ID"
// @Param request body TaskRequest true "Task details"
// @Success 200 {object} Response
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /farms/{id}/tasks/{taskId} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var param taskIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondError(c, http.StatusBadRequest, "invalid task ID")
		return
	}

	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	task, err := h.taskService.UpdateTask(userID, param.FarmID, param.TaskID, req.toInput())
	if err != nil {
		h.respondTaskError(c, userID, err, "update task")
		return
	}

	respondSuccess(c, http.StatusOK, "Task updated successfully", task)
}

// DeleteTask godoc
// @Summary Delete a task on one of the caller's farms
// @Tags tasks
// @Produce json
// @Security BearerAuth
// @Param id path int true "Farm ID"
// @Param taskId path int true "Task ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /farms/{id}/tasks/{taskId} [delete]
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var param taskIDParam
	if err := c.ShouldBindUri(&param); err != nil {
		respondError(c, http.StatusBadRequest, "invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(userID, param.FarmID, param.TaskID); err != nil {
		h.respondTaskError(c, userID, err, "delete task")
		return
	}

	respondSuccess(c, http.StatusOK, "Task deleted successfully", nil)
}
