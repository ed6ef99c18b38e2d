package api

import (
	"net/http"

	"github.com/fatih/color"
	"github.com/gorilla/mux"

	"github.com/petrosTsatsis/KilogBackend/internal/handler"
	"github.com/petrosTsatsis/KilogBackend/internal/middleware"
	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// SetupRouter wires every route. Auth is required everywhere except the
// root, the health check and the identity webhook (which authenticates by
// signature instead).
func SetupRouter(h *handler.Handler, auth func(http.Handler) http.Handler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	r.HandleFunc("/webhooks/identity", h.IdentityWebhook).Methods(http.MethodPost)

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(auth)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	// Exercise catalog
	authenticatedRoutes.HandleFunc("/exercises", h.ListExercises).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/exercises", h.CreateExercise).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/exercises/{id}", h.GetExercise).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/exercises/{id}", h.UpdateExercise).Methods(http.MethodPatch, http.MethodPut)
	authenticatedRoutes.HandleFunc("/exercises/{id}", h.DeleteExercise).Methods(http.MethodDelete)

	// Workouts
	authenticatedRoutes.HandleFunc("/workouts", h.ListWorkouts).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workouts", h.CreateWorkout).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/workouts/{id}", h.GetWorkout).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/workouts/{id}", h.ReplaceWorkout).Methods(http.MethodPut)
	authenticatedRoutes.HandleFunc("/workouts/{id}", h.DeleteWorkout).Methods(http.MethodDelete)

	// Analytics
	authenticatedRoutes.HandleFunc("/analytics/exercises/{exerciseId}/personal-best", h.GetPersonalBest).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/analytics/exercises/{exerciseId}/progress", h.GetProgress).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/analytics/consistency", h.GetWeeklyConsistency).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
