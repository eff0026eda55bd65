package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) addTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInternalError}, http.StatusInternalServerError) //nolint:errcheck
		return
	}

	var req models.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidData}, http.StatusBadRequest) //nolint:errcheck
		return
	}

	item, err := h.services.TodoService.AddTodo(ctx, userID, req.Description)
	if err != nil {
		log.Err(err).Msg("todo creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK) //nolint:errcheck
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInternalError}, http.StatusInternalServerError) //nolint:errcheck
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid todo ID in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidID}, http.StatusBadRequest) //nolint:errcheck
		return
	}

	item, err := h.services.TodoService.GetTodo(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("todo_id", id.String()).Msg("todo lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK) //nolint:errcheck
}

func (h *Handler) completeTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInternalError}, http.StatusInternalServerError) //nolint:errcheck
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid todo ID in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidID}, http.StatusBadRequest) //nolint:errcheck
		return
	}

	item, err := h.services.TodoService.CompleteTodo(ctx, userID, id)
	if err != nil {
		log.Err(err).Str("todo_id", id.String()).Msg("todo completion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInternalError}, http.StatusInternalServerError) //nolint:errcheck
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid todo ID in path")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidID}, http.StatusBadRequest) //nolint:errcheck
		return
	}

	if err := h.services.TodoService.DeleteTodo(ctx, userID, id); err != nil {
		log.Err(err).Str("todo_id", id.String()).Msg("todo deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInternalError}, http.StatusInternalServerError) //nolint:errcheck
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid filter query")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidQuery}, http.StatusBadRequest) //nolint:errcheck
		return
	}

	items, err := h.services.TodoService.ListTodos(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("todo listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK) //nolint:errcheck
}

func (h *Handler) countTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInternalError}, http.StatusInternalServerError) //nolint:errcheck
		return
	}

	filter, err := filterFromQuery(r)
	if err != nil {
		log.Err(err).Msg("invalid filter query")
		utils.WriteJSON(w, models.ErrorResponse{Error: codeInvalidQuery}, http.StatusBadRequest) //nolint:errcheck
		return
	}

	count, err := h.services.TodoService.CountTodos(ctx, userID, filter)
	if err != nil {
		log.Err(err).Msg("todo counting failed")
		writeError(w, err)
		return
	}

	// bare JSON integer, same shape as the list endpoint's len
	utils.WriteJSON(w, count, http.StatusOK) //nolint:errcheck
}

// filterFromQuery builds a [models.TodoFilter] from the optional
// "description" and "completed" query parameters. An absent parameter leaves
// the corresponding filter field nil, which means "no constraint".
func filterFromQuery(r *http.Request) (models.TodoFilter, error) {
	var filter models.TodoFilter

	query := r.URL.Query()
	if query.Has("description") {
		description := query.Get("description")
		filter.Description = &description
	}

	if query.Has("completed") {
		completed, err := strconv.ParseBool(query.Get("completed"))
		if err != nil {
			return models.TodoFilter{}, err
		}
		filter.Completed = &completed
	}

	return filter, nil
}
