package handler

import (
	"net/http"

	"github.com/petrosTsatsis/KilogBackend/internal/service"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// Handler bundles the services behind the HTTP surface. Everything it does is
// translate: request -> service call -> envelope.
type Handler struct {
	exercises *service.ExerciseService
	workouts  *service.WorkoutService
	analytics *service.AnalyticsService
	users     *service.UserService

	webhookSecret string
}

func New(
	exercises *service.ExerciseService,
	workouts *service.WorkoutService,
	analytics *service.AnalyticsService,
	users *service.UserService,
	webhookSecret string,
) *Handler {
	return &Handler{
		exercises:     exercises,
		workouts:      workouts,
		analytics:     analytics,
		users:         users,
		webhookSecret: webhookSecret,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
