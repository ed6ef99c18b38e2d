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

// ListExercises returns global entries plus the caller's own.
// Query params: search (substring on name), limit
func (h *Handler) ListExercises(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	query := r.URL.Query()
	search := query.Get("search")
	limit, _ := strconv.Atoi(query.Get("limit"))

	exercises, err := h.exercises.List(r.Context(), user.ID, search, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, exercises)
}

func (h *Handler) GetExercise(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	exercise, err := h.exercises.GetByID(r.Context(), id, user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, exercise)
}

func (h *Handler) CreateExercise(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	var in model.ExerciseInput
	if err := utils.DecodeJSON(r, &in); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if in.Name == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "exercise name is required")
		return
	}

	exercise, err := h.exercises.Create(r.Context(), in, user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusCreated, utils.APIResponse{Success: true, Data: exercise})
}

func (h *Handler) UpdateExercise(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	var patch model.ExercisePatch
	if err := utils.DecodeJSON(r, &patch); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	exercise, err := h.exercises.Update(r.Context(), id, patch, user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, exercise)
}

func (h *Handler) DeleteExercise(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	if err := h.exercises.Delete(r.Context(), id, user.ID); err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, map[string]bool{"success": true})
}
