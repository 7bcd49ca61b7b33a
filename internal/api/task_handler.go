package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/joinboard/joinboard-api/internal/api/shared"
	"github.com/joinboard/joinboard-api/internal/service/tasks"
)

// TaskHandler handles the task and task-scoped subtask endpoints.
type TaskHandler struct {
	taskService *tasks.Service
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *tasks.Service) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List handles GET /task/.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Create handles POST /task/.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	task, err := h.taskService.Create(r.Context(), tasks.CreateTaskInput{
		Title:           req.Title,
		Description:     req.Description,
		DueDate:         req.DueDate,
		Status:          req.Status,
		CategoryID:      req.CategoryID,
		PrioID:          req.PrioID,
		AssignedUserIDs: req.AssignedUserIDs,
		Subtasks:        subtaskInputs(req.Subtasks),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, task)
}

// Get handles GET /task/{id}/.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Update handles PUT and PATCH /task/{id}/. A subtasks field in the body
// replaces the whole subtask list; assigned_user_id replaces the
// assignment set. Absent fields leave both untouched.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	input := tasks.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
		CategoryID:  req.CategoryID,
		PrioID:      req.PrioID,
	}
	if req.AssignedUserIDs != nil {
		ids := *req.AssignedUserIDs
		input.AssignedUserIDs = &ids
	}
	if req.Subtasks != nil {
		inputs := subtaskInputs(*req.Subtasks)
		input.Subtasks = &inputs
	}

	task, err := h.taskService.Update(r.Context(), id, input)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, task)
}

// Delete handles DELETE /task/{id}/. Subtasks and assignment rows go
// with the task.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSubtasks handles GET /task/{taskId}/subtask/.
func (h *TaskHandler) ListSubtasks(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "taskId")
	if !ok {
		return
	}

	subtasks, err := h.taskService.ListSubtasks(r.Context(), taskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list subtasks")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, subtasks)
}

// CreateSubtask handles POST /task/{taskId}/subtask/.
func (h *TaskHandler) CreateSubtask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := pathID(w, r, "taskId")
	if !ok {
		return
	}

	var req CreateSubtaskRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	subtask, err := h.taskService.CreateSubtask(r.Context(), taskID, tasks.SubtaskInput{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create subtask")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, subtask)
}

// GetSubtask handles GET /task/{taskId}/subtask/{id}/.
func (h *TaskHandler) GetSubtask(w http.ResponseWriter, r *http.Request) {
	taskID, subtaskID, ok := h.subtaskPathIDs(w, r)
	if !ok {
		return
	}

	subtask, err := h.taskService.GetSubtask(r.Context(), taskID, subtaskID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get subtask")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, subtask)
}

// UpdateSubtask handles PUT and PATCH /task/{taskId}/subtask/{id}/. The
// ownership link always stays with the task in the URL.
func (h *TaskHandler) UpdateSubtask(w http.ResponseWriter, r *http.Request) {
	taskID, subtaskID, ok := h.subtaskPathIDs(w, r)
	if !ok {
		return
	}

	var req UpdateSubtaskRequest
	if !decodeValidated(w, r, &req) {
		return
	}

	subtask, err := h.taskService.UpdateSubtask(r.Context(), taskID, subtaskID, tasks.SubtaskPatch{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update subtask")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, subtask)
}

// DeleteSubtask handles DELETE /task/{taskId}/subtask/{id}/.
func (h *TaskHandler) DeleteSubtask(w http.ResponseWriter, r *http.Request) {
	taskID, subtaskID, ok := h.subtaskPathIDs(w, r)
	if !ok {
		return
	}

	if err := h.taskService.DeleteSubtask(r.Context(), taskID, subtaskID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete subtask")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) subtaskPathIDs(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	taskID, ok := pathID(w, r, "taskId")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	subtaskID, ok := pathID(w, r, "id")
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}
	return taskID, subtaskID, true
}

func subtaskInputs(payloads []SubtaskPayload) []tasks.SubtaskInput {
	inputs := make([]tasks.SubtaskInput, len(payloads))
	for i, p := range payloads {
		inputs[i] = tasks.SubtaskInput{Text: p.Text, Completed: p.Completed}
	}
	return inputs
}
