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
	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/schedule"
)

type scheduleService interface {
	SchedulePost(ctx context.Context, user application.UserContext, params application.SchedulePostParams) (persistence.ScheduledPost, error)
	PreviewWeekly(user application.UserContext, start time.Time, numberOfPosts int) ([]schedule.Slot, error)
	CommitWeeklySchedule(ctx context.Context, user application.UserContext, params application.WeeklyScheduleParams) ([]persistence.ScheduledPost, error)
	ListScheduledPosts(ctx context.Context, user application.UserContext) ([]persistence.ScheduledPost, error)
	DeleteScheduledPost(ctx context.Context, user application.UserContext, id string) error
}

type ScheduleHandler struct {
	service   scheduleService
	responder responder
}

func NewScheduleHandler(service scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{service: service, responder: newResponder(logger)}
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req schedulePostRequest
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

	post, err := h.service.SchedulePost(r.Context(), user, params)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toScheduledPostDTO(post))
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, _ := UserFromContext(r.Context())

	posts, err := h.service.ListScheduledPosts(r.Context(), user)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]scheduledPostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, toScheduledPostDTO(post))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, scheduledPostListResponse{Items: dtos})
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeleteScheduledPost(r.Context(), user, id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// PreviewWeekly answers GET /schedule/weekly/preview?start=YYYY-MM-DD&posts=N.
func (h *ScheduleHandler) PreviewWeekly(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, _ := UserFromContext(r.Context())

	var start time.Time
	if raw := r.URL.Query().Get("start"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
			return
		}
		start = parsed
	}

	numberOfPosts := 3
	if raw := r.URL.Query().Get("posts"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
			return
		}
		numberOfPosts = parsed
	}

	slots, err := h.service.PreviewWeekly(user, start, numberOfPosts)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]slotDTO, 0, len(slots))
	for _, slot := range slots {
		dtos = append(dtos, slotDTO{
			Date: slot.Date.Format("2006-01-02"),
			Day:  schedule.DayName(slot.Day),
			Time: slot.Time,
		})
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, weeklyPreviewResponse{Slots: dtos})
}

func (h *ScheduleHandler) CommitWeekly(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req weeklyScheduleRequest
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

	posts, err := h.service.CommitWeeklySchedule(r.Context(), user, params)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]scheduledPostDTO, 0, len(posts))
	for _, post := range posts {
		dtos = append(dtos, toScheduledPostDTO(post))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, scheduledPostListResponse{Items: dtos})
}

type schedulePostRequest struct {
	Title              string   `json:"title,omitempty"`
	Caption            string   `json:"caption"`
	Hashtags           []string `json:"hashtags,omitempty"`
	Platforms          []string `json:"platforms,omitempty"`
	ImageURL           string   `json:"image_url,omitempty"`
	ScheduledDate      string   `json:"scheduled_date"`
	ScheduledTime      string   `json:"scheduled_time"`
	Timezone           string   `json:"timezone,omitempty"`
	Notes              string   `json:"notes,omitempty"`
	BrandProfileID     string   `json:"brand_profile_id,omitempty"`
	GeneratedContentID string   `json:"generated_content_id,omitempty"`
	CreateAlarm        bool     `json:"create_alarm"`
}

func (req schedulePostRequest) toParams() (application.SchedulePostParams, error) {
	params := application.SchedulePostParams{
		Title:              req.Title,
		Caption:            req.Caption,
		Hashtags:           req.Hashtags,
		Platforms:          req.Platforms,
		ImageURL:           req.ImageURL,
		ScheduledTime:      req.ScheduledTime,
		Timezone:           req.Timezone,
		Notes:              req.Notes,
		BrandProfileID:     req.BrandProfileID,
		GeneratedContentID: req.GeneratedContentID,
		CreateAlarm:        req.CreateAlarm,
	}
	if req.ScheduledDate != "" {
		date, err := time.Parse("2006-01-02", req.ScheduledDate)
		if err != nil {
			return application.SchedulePostParams{}, errBadRequestBody
		}
		params.ScheduledDate = date
	}
	return params, nil
}

type weeklyScheduleRequest struct {
	StartDate     string   `json:"start_date,omitempty"`
	NumberOfPosts int      `json:"number_of_posts"`
	Caption       string   `json:"caption"`
	Hashtags      []string `json:"hashtags,omitempty"`
	Platforms     []string `json:"platforms,omitempty"`
	Timezone      string   `json:"timezone,omitempty"`
}

func (req weeklyScheduleRequest) toParams() (application.WeeklyScheduleParams, error) {
	params := application.WeeklyScheduleParams{
		NumberOfPosts: req.NumberOfPosts,
		Caption:       req.Caption,
		Hashtags:      req.Hashtags,
		Platforms:     req.Platforms,
		Timezone:      req.Timezone,
	}
	if req.StartDate != "" {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return application.WeeklyScheduleParams{}, errBadRequestBody
		}
		params.StartDate = start
	}
	return params, nil
}

type scheduledPostDTO struct {
	ID                 string   `json:"id"`
	BrandProfileID     string   `json:"brand_profile_id,omitempty"`
	GeneratedContentID string   `json:"generated_content_id,omitempty"`
	Title              string   `json:"title"`
	Caption            string   `json:"caption"`
	Hashtags           []string `json:"hashtags,omitempty"`
	Platforms          []string `json:"platforms,omitempty"`
	ImageURL           string   `json:"image_url,omitempty"`
	ScheduledDate      string   `json:"scheduled_date"`
	ScheduledTime      string   `json:"scheduled_time"`
	Timezone           string   `json:"timezone"`
	Status             string   `json:"status"`
	Notes              string   `json:"notes,omitempty"`
	CreatedAt          string   `json:"created_at"`
}

type scheduledPostListResponse struct {
	Items []scheduledPostDTO `json:"items"`
}

type slotDTO struct {
	Date string `json:"date"`
	Day  string `json:"day"`
	Time string `json:"time"`
}

type weeklyPreviewResponse struct {
	Slots []slotDTO `json:"slots"`
}

func toScheduledPostDTO(post persistence.ScheduledPost) scheduledPostDTO {
	dto := scheduledPostDTO{
		ID:            post.ID,
		Title:         post.Title,
		Caption:       post.Caption,
		Hashtags:      post.Hashtags,
		Platforms:     post.Platforms,
		ImageURL:      post.ImageURL,
		ScheduledDate: post.ScheduledDate.Format("2006-01-02"),
		ScheduledTime: post.ScheduledTime,
		Timezone:      post.Timezone,
		Status:        string(post.Status),
		Notes:         post.Notes,
		CreatedAt:     post.CreatedAt.Format(time.RFC3339),
	}
	if post.BrandProfileID != nil {
		dto.BrandProfileID = *post.BrandProfileID
	}
	if post.GeneratedContentID != nil {
		dto.GeneratedContentID = *post.GeneratedContentID
	}
	return dto
}
