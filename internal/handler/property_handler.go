package handlers

import (
	"encoding/json"
	"net/http"

	"estatehub/internal/middleware"
	"estatehub/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handlers) CreateProperty(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var req service.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	property, err := h.PropertyService.Create(r.Context(), principal, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, property, http.StatusCreated)
}

func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["id"]

	property, err := h.PropertyService.GetByID(r.Context(), propertyID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, property, http.StatusOK)
}

func (h *Handlers) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	propertyID := mux.Vars(r)["id"]

	var req service.UpdatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	property, err := h.PropertyService.Update(r.Context(), principal, propertyID, req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, property, http.StatusOK)
}

func (h *Handlers) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	propertyID := mux.Vars(r)["id"]

	if err := h.PropertyService.Delete(r.Context(), principal, propertyID); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Property deleted"}, http.StatusOK)
}

// MyProperties returns every listing of the authenticated owner, all
// statuses included, newest first.
func (h *Handlers) MyProperties(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	properties, err := h.PropertyService.ListByOwner(r.Context(), principal)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, properties, http.StatusOK)
}

func (h *Handlers) ToggleSold(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	propertyID := mux.Vars(r)["id"]

	var req struct {
		Sold bool `json:"sold"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.ModerationService.ToggleSold(r.Context(), principal, propertyID, req.Sold); err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]bool{"sold": req.Sold}, http.StatusOK)
}

type ImageUploadResponse struct {
	URLs []string `json:"urls"`
	// FailedIndex is -1 when every file uploaded; otherwise the index of
	// the first file that failed. Earlier uploads are kept either way.
	FailedIndex int    `json:"failedIndex"`
	Error       string `json:"error,omitempty"`
}

// UploadImages handles the multipart batch under "images". Partial failure
// is reported, not rolled back: the response carries the URLs uploaded so
// far and the index of the first failure, and the caller decides.
func (h *Handlers) UploadImages(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	fileHeaders := r.MultipartForm.File["images"]
	if len(fileHeaders) == 0 {
		WriteError(w, "At least one image file is required", http.StatusBadRequest)
		return
	}

	files := make([]service.UploadFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		f, err := header.Open()
		if err != nil {
			WriteError(w, "Failed to read uploaded file", http.StatusBadRequest)
			return
		}
		defer f.Close()
		files = append(files, service.UploadFile{Name: header.Filename, Body: f, Size: header.Size})
	}

	urls, failedIndex, err := h.PropertyService.UploadImages(r.Context(), principal, files)
	if err != nil {
		if failedIndex < 0 {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, ImageUploadResponse{
			URLs:        urls,
			FailedIndex: failedIndex,
			Error:       err.Error(),
		}, http.StatusMultiStatus)
		return
	}

	WriteJSON(w, ImageUploadResponse{URLs: urls, FailedIndex: -1}, http.StatusCreated)
}

func (h *Handlers) UploadDocument(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	kind := mux.Vars(r)["kind"]

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		WriteError(w, "Document file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	url, err := h.PropertyService.UploadDocument(r.Context(), principal, kind, header.Filename, file, header.Size)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"url": url}, http.StatusCreated)
}
