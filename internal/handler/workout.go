package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/petrosTsatsis/KilogBackend/internal/middleware"
	model "github.com/petrosTsatsis/KilogBackend/internal/models"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// CreateWorkout logs a full session: the workout, its exercise instances and
// their sets, all or nothing.
func (h *Handler) CreateWorkout(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var in model.WorkoutInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	workout, err := h.workouts.Create(r.Context(), in, user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Data: workout})
}

// GetWorkout returns one workout with all exercises and sets attached.
func (h *Handler) GetWorkout(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	workout, err := h.workouts.GetByID(r.Context(), id, user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, workout)
}

// ListWorkouts returns the caller's workout history, newest first.
// Query params: limit, offset
func (h *Handler) ListWorkouts(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	query := r.URL.Query()
	limit, _ := strconv.Atoi(query.Get("limit"))
	offset, _ := strconv.Atoi(query.Get("offset"))

	workouts, err := h.workouts.ListForUser(r.Context(), user.ID, limit, offset)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, workouts)
}

// ReplaceWorkout swaps the stored session for the submitted one.
func (h *Handler) ReplaceWorkout(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	var in model.WorkoutInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	workout, err := h.workouts.Replace(r.Context(), id, in, user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, workout)
}

func (h *Handler) DeleteWorkout(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid workout id")
		return
	}

	if err := h.workouts.Delete(r.Context(), id, user.ID); err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
