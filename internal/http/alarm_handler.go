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

type alarmService interface {
	CreateAlarm(ctx context.Context, user application.UserContext, params application.CreateAlarmParams) (persistence.Alarm, error)
	ListActive(ctx context.Context, user application.UserContext) ([]persistence.Alarm, error)
	Dismiss(ctx context.Context, user application.UserContext, id string) error
	Delete(ctx context.Context, user application.UserContext, id string) error
}

type AlarmHandler struct {
	service   alarmService
	responder responder
}

func NewAlarmHandler(service alarmService, logger *slog.Logger) *AlarmHandler {
	return &AlarmHandler{service: service, responder: newResponder(logger)}
}

func (h *AlarmHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req alarmRequest
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

	alarm, err := h.service.CreateAlarm(r.Context(), user, params)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toAlarmDTO(alarm))
}

func (h *AlarmHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	user, _ := UserFromContext(r.Context())

	alarms, err := h.service.ListActive(r.Context(), user)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	dtos := make([]alarmDTO, 0, len(alarms))
	for _, alarm := range alarms {
		dtos = append(dtos, toAlarmDTO(alarm))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, alarmListResponse{Items: dtos})
}

func (h *AlarmHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.Dismiss(r.Context(), user, id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func (h *AlarmHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.Delete(r.Context(), user, id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

type alarmRequest struct {
	Title               string `json:"title"`
	AlarmAt             string `json:"alarm_datetime"`
	ScheduledPostID     string `json:"scheduled_post_id,omitempty"`
	PlannedPostID       string `json:"planned_post_id,omitempty"`
	SoundEnabled        *bool  `json:"sound_enabled,omitempty"`
	NotificationEnabled *bool  `json:"notification_enabled,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

func (req alarmRequest) toParams() (application.CreateAlarmParams, error) {
	params := application.CreateAlarmParams{
		Title:               req.Title,
		ScheduledPostID:     req.ScheduledPostID,
		PlannedPostID:       req.PlannedPostID,
		SoundEnabled:        true,
		NotificationEnabled: true,
		Notes:               req.Notes,
	}
	if req.SoundEnabled != nil {
		params.SoundEnabled = *req.SoundEnabled
	}
	if req.NotificationEnabled != nil {
		params.NotificationEnabled = *req.NotificationEnabled
	}
	if req.AlarmAt != "" {
		at, err := time.Parse(time.RFC3339, req.AlarmAt)
		if err != nil {
			return application.CreateAlarmParams{}, errBadRequestBody
		}
		params.AlarmAt = at
	}
	return params, nil
}

type alarmDTO struct {
	ID                  string `json:"id"`
	Title               string `json:"title"`
	AlarmAt             string `json:"alarm_datetime"`
	ScheduledPostID     string `json:"scheduled_post_id,omitempty"`
	PlannedPostID       string `json:"planned_post_id,omitempty"`
	Status              string `json:"status"`
	SoundEnabled        bool   `json:"sound_enabled"`
	NotificationEnabled bool   `json:"notification_enabled"`
	Notes               string `json:"notes,omitempty"`
	CreatedAt           string `json:"created_at"`
}

type alarmListResponse struct {
	Items []alarmDTO `json:"items"`
}

func toAlarmDTO(alarm persistence.Alarm) alarmDTO {
	dto := alarmDTO{
		ID:                  alarm.ID,
		Title:               alarm.Title,
		AlarmAt:             alarm.AlarmAt.Format(time.RFC3339),
		Status:              string(alarm.Status),
		SoundEnabled:        alarm.SoundEnabled,
		NotificationEnabled: alarm.NotificationEnabled,
		Notes:               alarm.Notes,
		CreatedAt:           alarm.CreatedAt.Format(time.RFC3339),
	}
	if alarm.ScheduledPostID != nil {
		dto.ScheduledPostID = *alarm.ScheduledPostID
	}
	if alarm.PlannedPostID != nil {
		dto.PlannedPostID = *alarm.PlannedPostID
	}
	return dto
}
