package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/petrosTsatsis/KilogBackend/internal/middleware"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// GetPersonalBest returns the heaviest weight the caller ever logged for an
// exercise. data is null when there is no history, not an error.
func (h *Handler) GetPersonalBest(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	exerciseID, err := uuid.Parse(mux.Vars(r)["exerciseId"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	best, err := h.analytics.PersonalBest(r.Context(), user.ID, exerciseID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, map[string]interface{}{"personalBest": best})
}

// GetProgress returns (date, top weight) chart points for an exercise,
// oldest first. Query param: limit (trailing window of sessions)
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	exerciseID, err := uuid.Parse(mux.Vars(r)["exerciseId"])
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid exercise id")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	points, err := h.analytics.ProgressSeries(r.Context(), user.ID, exerciseID, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, points)
}

// GetWeeklyConsistency returns how many workouts the caller logged in the
// last 7 days.
func (h *Handler) GetWeeklyConsistency(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "user not found in context", err)
		return
	}

	count, err := h.analytics.WeeklyConsistency(r.Context(), user.ID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.Success(w, map[string]int{"workoutsLast7Days": count})
}
