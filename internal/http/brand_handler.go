package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/content-assistant/internal/application"
	"github.com/example/content-assistant/internal/persistence"
)

type brandService interface {
	CreateProfile(ctx context.Context, user application.UserContext, params application.BrandProfileParams) (persistence.BrandProfile, error)
	UpdateProfile(ctx context.Context, user application.UserContext, id string, params application.BrandProfileParams) (persistence.BrandProfile, error)
	GetProfile(ctx context.Context, user application.UserContext) (persistence.BrandProfile, error)
	DeleteProfile(ctx context.Context, user application.UserContext, id string) error
}

type BrandHandler struct {
	service   brandService
	responder responder
}

func NewBrandHandler(service brandService, logger *slog.Logger) *BrandHandler {
	return &BrandHandler{service: service, responder: newResponder(logger)}
}

func (h *BrandHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req brandProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	user, _ := UserFromContext(r.Context())

	profile, err := h.service.CreateProfile(r.Context(), user, req.toParams())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toBrandProfileDTO(profile))
}

func (h *BrandHandler) Update(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	var req brandProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	user, _ := UserFromContext(r.Context())

	profile, err := h.service.UpdateProfile(r.Context(), user, id, req.toParams())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBrandProfileDTO(profile))
}

func (h *BrandHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, _ := UserFromContext(r.Context())

	profile, err := h.service.GetProfile(r.Context(), user)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBrandProfileDTO(profile))
}

func (h *BrandHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := ResourceIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	user, _ := UserFromContext(r.Context())

	if err := h.service.DeleteProfile(r.Context(), user, id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type brandProfileRequest struct {
	Name             string   `json:"name"`
	Industry         string   `json:"industry,omitempty"`
	Tone             string   `json:"tone,omitempty"`
	TargetAudience   string   `json:"target_audience,omitempty"`
	KeyValues        []string `json:"key_values,omitempty"`
	SamplePosts      []string `json:"sample_posts,omitempty"`
	ContentThemes    []string `json:"content_themes,omitempty"`
	PostingFrequency string   `json:"posting_frequency,omitempty"`
}

func (req brandProfileRequest) toParams() application.BrandProfileParams {
	return application.BrandProfileParams{
		Name:             req.Name,
		Industry:         req.Industry,
		Tone:             req.Tone,
		TargetAudience:   req.TargetAudience,
		KeyValues:        req.KeyValues,
		SamplePosts:      req.SamplePosts,
		ContentThemes:    req.ContentThemes,
		PostingFrequency: req.PostingFrequency,
	}
}

type brandProfileDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Industry         string   `json:"industry,omitempty"`
	Tone             string   `json:"tone,omitempty"`
	TargetAudience   string   `json:"target_audience,omitempty"`
	KeyValues        []string `json:"key_values,omitempty"`
	SamplePosts      []string `json:"sample_posts,omitempty"`
	ContentThemes    []string `json:"content_themes,omitempty"`
	PostingFrequency string   `json:"posting_frequency,omitempty"`
	CreatedAt        string   `json:"created_at"`
	UpdatedAt        string   `json:"updated_at"`
}

func toBrandProfileDTO(profile persistence.BrandProfile) brandProfileDTO {
	return brandProfileDTO{
		ID:               profile.ID,
		Name:             profile.Name,
		Industry:         profile.Industry,
		Tone:             profile.Tone,
		TargetAudience:   profile.TargetAudience,
		KeyValues:        profile.KeyValues,
		SamplePosts:      profile.SamplePosts,
		ContentThemes:    profile.ContentThemes,
		PostingFrequency: profile.PostingFrequency,
		CreatedAt:        profile.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        profile.UpdatedAt.Format(time.RFC3339),
	}
}
