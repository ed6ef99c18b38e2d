package handler

import (
	"net/http"

	"github.com/petrosTsatsis/KilogBackend/internal/utils"
)

// Root lists every available API route
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Kilog API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"exercises": []map[string]string{
				{"method": "GET", "path": "/exercises", "description": "List catalog exercises (params: search, limit)"},
				{"method": "GET", "path": "/exercises/{id}", "description": "Get one exercise"},
				{"method": "POST", "path": "/exercises", "description": "Create a private exercise"},
				{"method": "PATCH", "path": "/exercises/{id}", "description": "Update an owned exercise"},
				{"method": "DELETE", "path": "/exercises/{id}", "description": "Delete an owned exercise"},
			},
			"workouts": []map[string]string{
				{"method": "GET", "path": "/workouts", "description": "List your workouts (params: limit, offset)"},
				{"method": "GET", "path": "/workouts/{id}", "description": "Get a workout with exercises and sets"},
				{"method": "POST", "path": "/workouts", "description": "Log a workout session"},
				{"method": "PUT", "path": "/workouts/{id}", "description": "Replace a workout session"},
				{"method": "DELETE", "path": "/workouts/{id}", "description": "Delete a workout session"},
			},
			"analytics": []map[string]string{
				{"method": "GET", "path": "/analytics/exercises/{exerciseId}/personal-best", "description": "Heaviest weight ever logged"},
				{"method": "GET", "path": "/analytics/exercises/{exerciseId}/progress", "description": "Top weight per session (params: limit)"},
				{"method": "GET", "path": "/analytics/consistency", "description": "Workouts in the last 7 days"},
			},
			"webhooks": []map[string]string{
				{"method": "POST", "path": "/webhooks/identity", "description": "Identity provider lifecycle events"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "API health check"},
			},
		},
		"documentation": map[string]string{
			"description": "REST API for Kilog - gym workout tracking",
		},
	}

	utils.Success(w, routes)
}
