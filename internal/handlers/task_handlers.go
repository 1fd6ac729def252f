package handlers

import (
	"net/http"
	"strconv"
	"time"

	"taskBoard/internal/board"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService Service
}

func NewTaskHandler(taskService Service) *TaskHandler {
	return &TaskHandler{
		TaskService: taskService,
	}
}

// now is the service clock, so isArchived and isOverdue match the view the
// service filtered with.
func (h *TaskHandler) now() time.Time {
	return h.TaskService.Now()
}

// Routes registers the task board endpoints on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Get("/health", h.HealthCheck)
	r.Get("/board", h.GetBoard)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", h.ListTasks)
		r.Post("/", h.PostTask)
		r.Patch("/", h.PatchTask)
		r.Get("/archived", h.ListArchived)
		r.Get("/overdue", h.ListOverdue)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.GetTaskByID)
			r.Patch("/", h.UpdateTaskByID)
			r.Delete("/", h.DeleteTaskByID)
			r.Post("/move", h.MoveTask)
			r.Post("/archive", h.ArchiveTask)
			r.Post("/unarchive", h.UnarchiveTask)
		})
	})
}

func (h *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: health check")

	err := h.TaskService.HealthCheck(r.Context())
	if err != nil {
		logger.Error("HTTP: health check failed", err)
	}
	healthCheck(w, err)
}

// ListTasks returns the active tasks, or every task with include_archived=true.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	view := board.ViewActive
	if raw := r.URL.Query().Get("include_archived"); raw != "" {
		all, err := strconv.ParseBool(raw)
		if err != nil {
			logger.Warn("HTTP: invalid query parameter",
				zap.String("query", "include_archived"),
				zap.String("value", raw),
				zap.String("client_ip", r.RemoteAddr))

			responseWithError(w, http.StatusBadRequest, "include_archived must be a boolean")
			return
		}
		if all {
			view = board.ViewAll
		}
	}
	h.listView(w, r, view)
}

func (h *TaskHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	h.listView(w, r, board.ViewArchived)
}

func (h *TaskHandler) listView(w http.ResponseWriter, r *http.Request, view board.View) {
	start := time.Now()

	tasks, err := h.TaskService.ListTasks(r.Context(), view)
	if err != nil {
		handleServiceError(w, r, err, "list_tasks")
		return
	}

	logger.Info("HTTP_OUT: tasks listed",
		zap.String("view", string(view)),
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)))

	responseWithBody(w, http.StatusOK, dto.FromTaskList(tasks, h.now()))
}

func (h *TaskHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.TaskService.OverdueTasks(r.Context())
	if err != nil {
		handleServiceError(w, r, err, "list_overdue")
		return
	}
	responseWithBody(w, http.StatusOK, dto.FromTaskList(tasks, h.now()))
}

// GetBoard returns one column per status for the view given in ?view=.
func (h *TaskHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	view, err := board.ParseView(r.URL.Query().Get("view"))
	if err != nil {
		logger.Warn("HTTP: invalid query parameter",
			zap.String("query", "view"),
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))

		responseWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	cols, err := h.TaskService.Board(r.Context(), view)
	if err != nil {
		handleServiceError(w, r, err, "board")
		return
	}
	responseWithBody(w, http.StatusOK, dto.FromColumns(cols, h.now()))
}

func (h *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var request dto.CreateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	in, err := request.ToInput()
	if err != nil {
		handleServiceError(w, r, err, "create_task")
		return
	}

	id, err := h.TaskService.CreateTask(r.Context(), in)
	if err != nil {
		handleServiceError(w, r, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: task created",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	responseWithBody(w, http.StatusCreated, dto.CreateTaskResponse{ID: id})
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	t, err := h.TaskService.GetTask(r.Context(), id)
	if err != nil {
		handleServiceError(w, r, err, "get_task")
		return
	}
	responseWithBody(w, http.StatusOK, dto.FromTask(t, h.now()))
}

// PatchTask is the collection level update, the id travels in the body.
func (h *TaskHandler) PatchTask(w http.ResponseWriter, r *http.Request) {
	var request dto.UpdateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	id, ok := parseIDValue(w, r, request.ID)
	if !ok {
		return
	}

	if _, ok := h.update(w, r, id, request); !ok {
		return
	}
	responseWithJSON(w, http.StatusOK, toPayload("success", true))
}

func (h *TaskHandler) UpdateTaskByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var request dto.UpdateTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	updated, ok := h.update(w, r, id, request)
	if !ok {
		return
	}
	responseWithBody(w, http.StatusOK, updated)
}

func (h *TaskHandler) update(w http.ResponseWriter, r *http.Request, id uuid.UUID, request dto.UpdateTaskRequest) (dto.TaskResponse, bool) {
	start := time.Now()

	patch, err := request.ToPatch()
	if err != nil {
		handleServiceError(w, r, err, "update_task")
		return dto.TaskResponse{}, false
	}

	updated, err := h.TaskService.UpdateTask(r.Context(), id, patch)
	if err != nil {
		handleServiceError(w, r, err, "update_task")
		return dto.TaskResponse{}, false
	}

	logger.Info("HTTP_OUT: task updated",
		zap.String("task_id", id.String()),
		zap.Duration("ms", time.Since(start)))
	return dto.FromTask(updated, h.now()), true
}

func (h *TaskHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var request dto.MoveTaskRequest
	if !decodeJSON(w, r, &request) {
		return
	}

	moved, err := h.TaskService.MoveTask(r.Context(), id, request.Status)
	if err != nil {
		handleServiceError(w, r, err, "move_task")
		return
	}
	responseWithBody(w, http.StatusOK, dto.FromTask(moved, h.now()))
}

func (h *TaskHandler) ArchiveTask(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

func (h *TaskHandler) UnarchiveTask(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *TaskHandler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	t, err := h.TaskService.SetArchived(r.Context(), id, archived)
	if err != nil {
		handleServiceError(w, r, err, "set_archived")
		return
	}

	logger.Info("HTTP_OUT: archive flag changed",
		zap.String("task_id", id.String()),
		zap.Bool("archived", archived))
	responseWithBody(w, http.StatusOK, dto.FromTask(t, h.now()))
}

func (h *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.TaskService.DeleteTask(r.Context(), id); err != nil {
		handleServiceError(w, r, err, "delete_task")
		return
	}

	logger.Info("HTTP_OUT: task deleted",
		zap.String("task_id", id.String()),
		zap.Int("http_status", http.StatusNoContent))
	w.WriteHeader(http.StatusNoContent)
}
