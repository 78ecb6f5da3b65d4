package handlers

import (
	"encoding/json"
	"net/http"

	"estatehub/internal/middleware"
	"estatehub/internal/service"
)

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	profile, err := h.ProfileService.Get(r.Context(), principal)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, profileResponse(profile), http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var req service.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.ProfileService.Update(r.Context(), principal, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, profileResponse(profile), http.StatusOK)
}

// UploadAvatar accepts a single multipart file under "avatar" and returns
// the durable URL. The object is keyed by profile id, so re-uploading
// replaces the previous avatar.
func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Avatar file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.ProfileService.UploadAvatar(r.Context(), principal, header.Filename, file, header.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"avatarUrl": url}, http.StatusCreated)
}
