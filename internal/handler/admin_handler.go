package handlers

import (
	"encoding/json"
	"net/http"

	"estatehub/internal/middleware"

	"github.com/gorilla/mux"
)

func (h *Handlers) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	q := r.URL.Query()

	page, err := h.AdminService.ListUsers(r.Context(), principal, parseInt(q.Get("page")), parseInt(q.Get("limit")), q.Get("search"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, page, http.StatusOK)
}

func (h *Handlers) AdminUpdateUserRole(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	userID := mux.Vars(r)["id"]

	var req struct {
		Role string `json:"role" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.AdminService.UpdateUserRole(r.Context(), principal, userID, req.Role); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Role updated"}, http.StatusOK)
}

func (h *Handlers) AdminToggleVerification(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	userID := mux.Vars(r)["id"]

	verified, err := h.AdminService.ToggleUserVerification(r.Context(), principal, userID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]bool{"isVerified": verified}, http.StatusOK)
}

func (h *Handlers) AdminListPendingProperties(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	q := r.URL.Query()

	page, err := h.AdminService.ListPendingProperties(r.Context(), principal, parseInt(q.Get("page")), parseInt(q.Get("limit")))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, page, http.StatusOK)
}

func (h *Handlers) AdminListProperties(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	q := r.URL.Query()

	page, err := h.AdminService.ListAllProperties(r.Context(), principal,
		parseInt(q.Get("page")), parseInt(q.Get("limit")), q.Get("status"), q.Get("search"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, page, http.StatusOK)
}

// AdminUpdatePropertyStatus drives the moderation state machine. Any of the
// three states may be entered from any other; visibility follows status.
func (h *Handlers) AdminUpdatePropertyStatus(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	propertyID := mux.Vars(r)["id"]

	var req struct {
		Status string `json:"status" validate:"required,oneof=pending published rejected"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.UpdateStatus(r.Context(), principal, propertyID, req.Status); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"status": req.Status}, http.StatusOK)
}

func (h *Handlers) AdminStats(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	stats, err := h.AdminService.Stats(r.Context(), principal)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, stats, http.StatusOK)
}
