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
	"github.com/example/content-assistant/internal/planner"
)

type planService interface {
	CreatePlan(ctx context.Context, user application.UserContext, params application.CreatePlanParams) (application.PlanResult, error)
	GetPlan(ctx context.Context, user application.UserContext, id string) (application.PlanResult, error)
	ListPlans(ctx context.Context, user application.UserContext) ([]persistence.ContentPlan, error)
	DeletePlan(ctx context.Context, user application.UserContext, id string) error
	GenerateContentForPost(ctx context.Context, user application.UserContext, planID, postID string) (persistence.PlannedPost, error)
	FrequencyRecommendations(ctx context.Context, user application.UserContext) ([]planner.FrequencyOption, error)
}

type PlanHandler struct {
	service   planService
	responder responder
}

func NewPlanHandler(service planService, logger *slog.Logger) *PlanHandler {
	return &PlanHandler{service: service, responder: newResponder(logger)}
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	params, err := req.toParams()
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	user, _ := UserFromContext(r.Context())

	result, err := h.service.CreatePlan(r.Context(), user, params)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toPlanResponse(result))
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	result, err := h.service.GetPlan(r.Context(), user, id)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toPlanResponse(result))
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, _ := UserFromContext(r.Context())

	plans, err := h.service.ListPlans(r.Context(), user)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]planDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, toPlanDTO(plan))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, planListResponse{Items: dtos})
}

func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeletePlan(r.Context(), user, id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// GeneratePostContent fills one planned post with generated caption and
// hashtags. The plan id and post id arrive from the route.
func (h *PlanHandler) GeneratePostContent(w http.ResponseWriter, r *http.Request, planID, postID string) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, _ := UserFromContext(r.Context())

	post, err := h.service.GenerateContentForPost(r.Context(), user, planID, postID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toPlannedPostDTO(post))
}

func (h *PlanHandler) Frequencies(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, _ := UserFromContext(r.Context())

	options, err := h.service.FrequencyRecommendations(r.Context(), user)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]frequencyOptionDTO, 0, len(options))
	for _, option := range options {
		dtos = append(dtos, frequencyOptionDTO{
			ID:           option.ID,
			Label:        option.Label,
			PostsPerWeek: option.PostsPerWeek,
			Description:  option.Description,
			Recommended:  option.Recommended,
			Reasons:      option.Reasons,
		})
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, frequencyListResponse{Options: dtos})
}

type planRequest struct {
	StartDate      string   `json:"start_date"`
	Weeks          int      `json:"weeks"`
	PostsPerWeek   int      `json:"posts_per_week"`
	Platforms      []string `json:"platforms"`
	BrandProfileID string   `json:"brand_profile_id,omitempty"`
	CreateAlarms   bool     `json:"create_alarms"`
	AlarmTime      string   `json:"alarm_time,omitempty"`
}

func (req planRequest) toParams() (application.CreatePlanParams, error) {
	params := application.CreatePlanParams{
		Weeks:          req.Weeks,
		PostsPerWeek:   req.PostsPerWeek,
		Platforms:      req.Platforms,
		BrandProfileID: req.BrandProfileID,
		CreateAlarms:   req.CreateAlarms,
		AlarmTime:      req.AlarmTime,
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return application.CreatePlanParams{}, errBadRequestBody
		}
		params.StartDate = start
	}
	return params, nil
}

type planDTO struct {
	ID             string `json:"id"`
	BrandProfileID string `json:"brand_profile_id,omitempty"`
	PlanName       string `json:"plan_name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Frequency      string `json:"frequency"`
	TotalPosts     int    `json:"total_posts"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type plannedPostDTO struct {
	ID               string   `json:"id"`
	ContentPlanID    string   `json:"content_plan_id"`
	Title            string   `json:"title"`
	SuggestedDate    string   `json:"suggested_date"`
	SuggestedTime    string   `json:"suggested_time"`
	Rationale        string   `json:"rationale"`
	ContentGenerated bool     `json:"content_generated"`
	Caption          string   `json:"caption,omitempty"`
	Hashtags         []string `json:"hashtags,omitempty"`
	Platforms        []string `json:"platforms"`
	Status           string   `json:"status"`
	OrderInPlan      int      `json:"order_in_plan"`
}

type planResponse struct {
	Plan     planDTO          `json:"plan"`
	Posts    []plannedPostDTO `json:"posts"`
	Insights []string         `json:"insights,omitempty"`
}

type planListResponse struct {
	Items []planDTO `json:"items"`
}

type frequencyOptionDTO struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	PostsPerWeek int      `json:"posts_per_week"`
	Description  string   `json:"description"`
	Recommended  bool     `json:"recommended"`
	Reasons      []string `json:"reasons"`
}

type frequencyListResponse struct {
	Options []frequencyOptionDTO `json:"options"`
}

func toPlanDTO(plan persistence.ContentPlan) planDTO {
	dto := planDTO{
		ID:         plan.ID,
		PlanName:   plan.PlanName,
		StartDate:  plan.StartDate.Format("2006-01-02"),
		EndDate:    plan.EndDate.Format("2006-01-02"),
		Frequency:  plan.Frequency,
		TotalPosts: plan.TotalPosts,
		Status:     string(plan.Status),
		CreatedAt:  plan.CreatedAt.Format(time.RFC3339),
	}
	if plan.BrandProfileID != nil {
		dto.BrandProfileID = *plan.BrandProfileID
	}
	return dto
}

func toPlannedPostDTO(post persistence.PlannedPost) plannedPostDTO {
	return plannedPostDTO{
		ID:               post.ID,
		ContentPlanID:    post.ContentPlanID,
		Title:            post.Title,
		SuggestedDate:    post.SuggestedDate.Format("2006-01-02"),
		SuggestedTime:    post.SuggestedTime,
		Rationale:        post.Rationale,
		ContentGenerated: post.ContentGenerated,
		Caption:          post.Caption,
		Hashtags:         post.Hashtags,
		Platforms:        post.Platforms,
		Status:           string(post.Status),
		OrderInPlan:      post.OrderInPlan,
	}
}

func toPlanResponse(result application.PlanResult) planResponse {
	posts := make([]plannedPostDTO, 0, len(result.Posts))
	for _, post := range result.Posts {
		posts = append(posts, toPlannedPostDTO(post))
	}
	return planResponse{
		Plan:     toPlanDTO(result.Plan),
		Posts:    posts,
		Insights: result.Insights,
	}
}
