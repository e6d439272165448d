package application

import (
	"context"
	"errors"
	"sync"

	"github.com/example/content-assistant/internal/persistence"
)

// memStore is an in-memory implementation of every repository interface,
// with injectable failures for exercising the non-atomic write sequences.
type memStore struct {
	mu        sync.Mutex
	brands    []persistence.BrandProfile
	contents  []persistence.GeneratedContent
	plans     []persistence.ContentPlan
	planned   []persistence.PlannedPost
	scheduled []persistence.ScheduledPost
	alarms    []persistence.Alarm

	plannedCreates      int
	failPlannedCreateAt int // 1-based index of the create to fail, 0 disables
	alarmCreates        int
	failAlarmCreateAt   int
	failAlarmStatus     error
}

var errInjected = errors.New("injected failure")

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) CreateBrandProfile(_ context.Context, profile persistence.BrandProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.brands = append(m.brands, profile)
	return nil
}

func (m *memStore) UpdateBrandProfile(_ context.Context, profile persistence.BrandProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.brands {
		if m.brands[i].ID == profile.ID {
			m.brands[i] = profile
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) GetBrandProfile(_ context.Context, id string) (persistence.BrandProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, profile := range m.brands {
		if profile.ID == id {
			return profile, nil
		}
	}
	return persistence.BrandProfile{}, persistence.ErrNotFound
}

// GetBrandProfileForUser returns the most recently stored profile, matching
// the SQLite implementation's newest-first ordering.
func (m *memStore) GetBrandProfileForUser(_ context.Context, userID string) (persistence.BrandProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.brands) - 1; i >= 0; i-- {
		if m.brands[i].UserID == userID {
			return m.brands[i], nil
		}
	}
	return persistence.BrandProfile{}, persistence.ErrNotFound
}

func (m *memStore) DeleteBrandProfile(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.brands {
		if m.brands[i].ID == id {
			m.brands = append(m.brands[:i], m.brands[i+1:]...)
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) CreateGeneratedContent(_ context.Context, content persistence.GeneratedContent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = append(m.contents, content)
	return nil
}

func (m *memStore) GetGeneratedContent(_ context.Context, id string) (persistence.GeneratedContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, content := range m.contents {
		if content.ID == id {
			return content, nil
		}
	}
	return persistence.GeneratedContent{}, persistence.ErrNotFound
}

func (m *memStore) ListGeneratedContent(_ context.Context, userID string, limit int) ([]persistence.GeneratedContent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var items []persistence.GeneratedContent
	for i := len(m.contents) - 1; i >= 0; i-- {
		if m.contents[i].UserID != userID {
			continue
		}
		items = append(items, m.contents[i])
		if limit > 0 && len(items) == limit {
			break
		}
	}
	return items, nil
}

func (m *memStore) DeleteGeneratedContent(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.contents {
		if m.contents[i].ID == id {
			m.contents = append(m.contents[:i], m.contents[i+1:]...)
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) CreateContentPlan(_ context.Context, plan persistence.ContentPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plans = append(m.plans, plan)
	return nil
}

func (m *memStore) UpdateContentPlan(_ context.Context, plan persistence.ContentPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.plans {
		if m.plans[i].ID == plan.ID {
			m.plans[i] = plan
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) GetContentPlan(_ context.Context, id string) (persistence.ContentPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, plan := range m.plans {
		if plan.ID == id {
			return plan, nil
		}
	}
	return persistence.ContentPlan{}, persistence.ErrNotFound
}

func (m *memStore) ListContentPlans(_ context.Context, userID string) ([]persistence.ContentPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var plans []persistence.ContentPlan
	for i := len(m.plans) - 1; i >= 0; i-- {
		if m.plans[i].UserID == userID {
			plans = append(plans, m.plans[i])
		}
	}
	return plans, nil
}

func (m *memStore) DeleteContentPlan(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.plans {
		if m.plans[i].ID == id {
			m.plans = append(m.plans[:i], m.plans[i+1:]...)
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) CreatePlannedPost(_ context.Context, post persistence.PlannedPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.plannedCreates++
	if m.failPlannedCreateAt > 0 && m.plannedCreates == m.failPlannedCreateAt {
		return errInjected
	}
	m.planned = append(m.planned, post)
	return nil
}

func (m *memStore) UpdatePlannedPost(_ context.Context, post persistence.PlannedPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.planned {
		if m.planned[i].ID == post.ID {
			m.planned[i] = post
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) GetPlannedPost(_ context.Context, id string) (persistence.PlannedPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, post := range m.planned {
		if post.ID == id {
			return post, nil
		}
	}
	return persistence.PlannedPost{}, persistence.ErrNotFound
}

func (m *memStore) ListPlannedPostsForPlan(_ context.Context, planID string) ([]persistence.PlannedPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var posts []persistence.PlannedPost
	for _, post := range m.planned {
		if post.ContentPlanID == planID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *memStore) ListPlannedPostsForUser(_ context.Context, userID string) ([]persistence.PlannedPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var posts []persistence.PlannedPost
	for _, post := range m.planned {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *memStore) DeletePlannedPost(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.planned {
		if m.planned[i].ID == id {
			m.planned = append(m.planned[:i], m.planned[i+1:]...)
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) DeletePlannedPostsForPlan(_ context.Context, planID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.planned[:0]
	for _, post := range m.planned {
		if post.ContentPlanID != planID {
			kept = append(kept, post)
		}
	}
	m.planned = kept
	return nil
}

func (m *memStore) CreateScheduledPost(_ context.Context, post persistence.ScheduledPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduled = append(m.scheduled, post)
	return nil
}

func (m *memStore) UpdateScheduledPost(_ context.Context, post persistence.ScheduledPost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.scheduled {
		if m.scheduled[i].ID == post.ID {
			m.scheduled[i] = post
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) GetScheduledPost(_ context.Context, id string) (persistence.ScheduledPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, post := range m.scheduled {
		if post.ID == id {
			return post, nil
		}
	}
	return persistence.ScheduledPost{}, persistence.ErrNotFound
}

func (m *memStore) ListScheduledPosts(_ context.Context, userID string) ([]persistence.ScheduledPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var posts []persistence.ScheduledPost
	for _, post := range m.scheduled {
		if post.UserID == userID {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *memStore) DeleteScheduledPost(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.scheduled {
		if m.scheduled[i].ID == id {
			m.scheduled = append(m.scheduled[:i], m.scheduled[i+1:]...)
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) CreateAlarm(_ context.Context, alarm persistence.Alarm) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alarmCreates++
	if m.failAlarmCreateAt > 0 && m.alarmCreates == m.failAlarmCreateAt {
		return errInjected
	}
	if alarm.ScheduledPostID != nil && alarm.PlannedPostID != nil {
		return persistence.ErrConstraintViolation
	}
	m.alarms = append(m.alarms, alarm)
	return nil
}

func (m *memStore) GetAlarm(_ context.Context, id string) (persistence.Alarm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, alarm := range m.alarms {
		if alarm.ID == id {
			return alarm, nil
		}
	}
	return persistence.Alarm{}, persistence.ErrNotFound
}

func (m *memStore) ListActiveAlarms(_ context.Context, userID string) ([]persistence.Alarm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var alarms []persistence.Alarm
	for _, alarm := range m.alarms {
		if alarm.UserID == userID && alarm.Status == persistence.AlarmStatusActive {
			alarms = append(alarms, alarm)
		}
	}
	return alarms, nil
}

func (m *memStore) ListAllActiveAlarms(_ context.Context) ([]persistence.Alarm, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var alarms []persistence.Alarm
	for _, alarm := range m.alarms {
		if alarm.Status == persistence.AlarmStatusActive {
			alarms = append(alarms, alarm)
		}
	}
	return alarms, nil
}

func (m *memStore) UpdateAlarmStatus(_ context.Context, id string, status persistence.AlarmStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAlarmStatus != nil {
		return m.failAlarmStatus
	}
	for i := range m.alarms {
		if m.alarms[i].ID == id {
			m.alarms[i].Status = status
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) DeleteAlarm(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.alarms {
		if m.alarms[i].ID == id {
			m.alarms = append(m.alarms[:i], m.alarms[i+1:]...)
			return nil
		}
	}
	return persistence.ErrNotFound
}

func (m *memStore) DeleteAlarmsForPlannedPosts(_ context.Context, plannedPostIDs []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make(map[string]struct{}, len(plannedPostIDs))
	for _, id := range plannedPostIDs {
		ids[id] = struct{}{}
	}
	kept := m.alarms[:0]
	for _, alarm := range m.alarms {
		if alarm.PlannedPostID != nil {
			if _, hit := ids[*alarm.PlannedPostID]; hit {
				continue
			}
		}
		kept = append(kept, alarm)
	}
	m.alarms = kept
	return nil
}

func (m *memStore) DeleteAlarmsForScheduledPost(_ context.Context, scheduledPostID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.alarms[:0]
	for _, alarm := range m.alarms {
		if alarm.ScheduledPostID != nil && *alarm.ScheduledPostID == scheduledPostID {
			continue
		}
		kept = append(kept, alarm)
	}
	m.alarms = kept
	return nil
}

// alarmByID is a test convenience lookup ignoring the not-found case.
func (m *memStore) alarmByID(id string) (persistence.Alarm, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, alarm := range m.alarms {
		if alarm.ID == id {
			return alarm, true
		}
	}
	return persistence.Alarm{}, false
}

// soundRecorder counts Play calls.
type soundRecorder struct {
	mu    sync.Mutex
	plays int
}

func (r *soundRecorder) Play() {
	r.mu.Lock()
	r.plays++
	r.mu.Unlock()
}

func (r *soundRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.plays
}

// notifyRecorder captures Notify calls.
type notifyRecorder struct {
	mu     sync.Mutex
	titles []string
	bodies []string
}

func (r *notifyRecorder) Notify(title, body string) {
	r.mu.Lock()
	r.titles = append(r.titles, title)
	r.bodies = append(r.bodies, body)
	r.mu.Unlock()
}

func (r *notifyRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.titles)
}
