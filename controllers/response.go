package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/dulaj69/itp-final-project-sub000/middleware"
	"github.com/dulaj69/itp-final-project-sub000/utils"
)

// respondJSON writes payload as the JSON response body
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError writes an error message in the shared {"error": ...} shape
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondValidationErrors writes field-level validation errors as a 400
func respondValidationErrors(w http.ResponseWriter, vr utils.ValidationResult) {
	respondJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": vr.Errors,
	})
}

// currentClaims pulls the authenticated user's claims off the request context
func currentClaims(r *http.Request) (*utils.Claims, bool) {
	claims, ok := r.Context().Value(middleware.UserContextKey).(*utils.Claims)
	return claims, ok
}
