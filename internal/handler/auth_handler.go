package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"estatehub/internal/models"
	"estatehub/internal/service"
)

type ProfileResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Whatsapp   string `json:"whatsapp"`
	Role       string `json:"role"`
	AvatarURL  string `json:"avatarUrl"`
	IsVerified bool   `json:"isVerified"`
}

type AuthResponse struct {
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
	Profile      ProfileResponse `json:"profile"`
}

func profileResponse(profile *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:         profile.ID,
		Email:      profile.Email,
		FullName:   profile.FullName,
		Phone:      profile.Phone,
		Whatsapp:   profile.Whatsapp,
		Role:       profile.Role,
		AvatarURL:  profile.AvatarURL,
		IsVerified: profile.IsVerified,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			WriteError(w, err.Error(), http.StatusConflict)
			return
		}
		WriteServiceError(w, err)
		return
	}

	accessToken, err := h.AuthService.GenerateAccessToken(profile)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: profile.RefreshToken,
		Profile:      profileResponse(profile),
	}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	WriteJSON(w, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profileResponse(profile),
	}, http.StatusOK)
}

func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		WriteError(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	WriteJSON(w, AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profileResponse(profile),
	}, http.StatusOK)
}
