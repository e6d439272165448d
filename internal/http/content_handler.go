package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/example/content-assistant/internal/application"
	"github.com/example/content-assistant/internal/generator"
	"github.com/example/content-assistant/internal/persistence"
)

type contentService interface {
	Generate(ctx context.Context, user application.UserContext, params application.GenerateParams) (application.GeneratedContentResult, error)
	ListHistory(ctx context.Context, user application.UserContext, limit int) ([]persistence.GeneratedContent, error)
	DeleteContent(ctx context.Context, user application.UserContext, id string) error
	Outline(ctx context.Context, user application.UserContext, description string) (generator.PostOutline, error)
}

type ContentHandler struct {
	service      contentService
	historyLimit int
	responder    responder
}

func NewContentHandler(service contentService, historyLimit int, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{service: service, historyLimit: historyLimit, responder: newResponder(logger)}
}

func (h *ContentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	user, _ := UserFromContext(r.Context())

	result, err := h.service.Generate(r.Context(), user, application.GenerateParams{
		Description:    req.Description,
		CompanyName:    req.CompanyName,
		ProductName:    req.ProductName,
		BrandProfileID: req.BrandProfileID,
		ImageURL:       req.ImageURL,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toGenerateResponse(result))
}

func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, _ := UserFromContext(r.Context())

	limit := h.historyLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
			return
		}
		limit = parsed
	}

	items, err := h.service.ListHistory(r.Context(), user, limit)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]contentDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toContentDTO(item))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, contentListResponse{Items: dtos})
}

func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteContent(r.Context(), user, id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *ContentHandler) Outline(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req outlineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	user, _ := UserFromContext(r.Context())

	outline, err := h.service.Outline(r.Context(), user, req.Description)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toOutlineDTO(outline))
}

type generateRequest struct {
	Description    string `json:"description"`
	CompanyName    string `json:"company_name,omitempty"`
	ProductName    string `json:"product_name,omitempty"`
	BrandProfileID string `json:"brand_profile_id,omitempty"`
	ImageURL       string `json:"image_url,omitempty"`
}

type outlineRequest struct {
	Description string `json:"description"`
}

type contentDTO struct {
	ID             string   `json:"id"`
	BrandProfileID string   `json:"brand_profile_id,omitempty"`
	Description    string   `json:"description"`
	FormalCaption  string   `json:"formal_caption"`
	CasualCaption  string   `json:"casual_caption"`
	FunnyCaption   string   `json:"funny_caption"`
	Hashtags       []string `json:"hashtags"`
	ImageURL       string   `json:"image_url,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type ctaDTO struct {
	Formal string `json:"formal"`
	Casual string `json:"casual"`
	Funny  string `json:"funny"`
}

type visualSuggestionDTO struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Prompt               string   `json:"prompt"`
	Style                string   `json:"style"`
	AspectRatio          string   `json:"aspect_ratio"`
	RecommendedPlatforms []string `json:"recommended_platforms"`
}

type generateResponse struct {
	Content           contentDTO            `json:"content"`
	CTA               ctaDTO                `json:"cta"`
	VisualSuggestions []visualSuggestionDTO `json:"visual_suggestions,omitempty"`
}

type contentListResponse struct {
	Items []contentDTO `json:"items"`
}

type outlineDTO struct {
	Hook           string   `json:"hook"`
	MainMessage    string   `json:"main_message"`
	CallToAction   string   `json:"call_to_action"`
	Structure      []string `json:"structure"`
	BestTimeToPost string   `json:"best_time_to_post"`
}

func toContentDTO(content persistence.GeneratedContent) contentDTO {
	dto := contentDTO{
		ID:            content.ID,
		Description:   content.Description,
		FormalCaption: content.FormalCaption,
		CasualCaption: content.CasualCaption,
		FunnyCaption:  content.FunnyCaption,
		Hashtags:      content.Hashtags,
		ImageURL:      content.ImageURL,
		CreatedAt:     content.CreatedAt.Format(time.RFC3339),
	}
	if content.BrandProfileID != nil {
		dto.BrandProfileID = *content.BrandProfileID
	}
	return dto
}

func toGenerateResponse(result application.GeneratedContentResult) generateResponse {
	suggestions := make([]visualSuggestionDTO, 0, len(result.VisualSuggestions))
	for _, suggestion := range result.VisualSuggestions {
		suggestions = append(suggestions, visualSuggestionDTO{
			ID:                   suggestion.ID,
			Title:                suggestion.Title,
			Description:          suggestion.Description,
			Prompt:               suggestion.Prompt,
			Style:                suggestion.Style,
			AspectRatio:          suggestion.AspectRatio,
			RecommendedPlatforms: suggestion.RecommendedPlatforms,
		})
	}

	return generateResponse{
		Content: toContentDTO(result.Content),
		CTA: ctaDTO{
			Formal: result.CTA.Formal,
			Casual: result.CTA.Casual,
			Funny:  result.CTA.Funny,
		},
		VisualSuggestions: suggestions,
	}
}

func toOutlineDTO(outline generator.PostOutline) outlineDTO {
	return outlineDTO{
		Hook:           outline.Hook,
		MainMessage:    outline.MainMessage,
		CallToAction:   outline.CallToAction,
		Structure:      outline.Structure,
		BestTimeToPost: outline.BestTimeToPost,
	}
}
