package http

import (
	"context"
	"net/http"
	"time"

	"github.com/example/content-assistant/internal/application"
	"github.com/example/content-assistant/internal/generator"
	"github.com/example/content-assistant/internal/persistence"
	"github.com/example/content-assistant/internal/planner"
	"github.com/example/content-assistant/internal/schedule"
)

// Fake services with overridable behavior per test. Nil funcs return zero
// values so a test only wires what it asserts on.

type fakeContentService struct {
	generate    func(user application.UserContext, params application.GenerateParams) (application.GeneratedContentResult, error)
	listHistory func(user application.UserContext, limit int) ([]persistence.GeneratedContent, error)
	delete      func(user application.UserContext, id string) error
	outline     func(user application.UserContext, description string) (generator.PostOutline, error)
}

func (f *fakeContentService) Generate(_ context.Context, user application.UserContext, params application.GenerateParams) (application.GeneratedContentResult, error) {
	if f.generate == nil {
		return application.GeneratedContentResult{}, nil
	}
	return f.generate(user, params)
}

func (f *fakeContentService) ListHistory(_ context.Context, user application.UserContext, limit int) ([]persistence.GeneratedContent, error) {
	if f.listHistory == nil {
		return nil, nil
	}
	return f.listHistory(user, limit)
}

func (f *fakeContentService) DeleteContent(_ context.Context, user application.UserContext, id string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(user, id)
}

func (f *fakeContentService) Outline(_ context.Context, user application.UserContext, description string) (generator.PostOutline, error) {
	if f.outline == nil {
		return generator.PostOutline{}, nil
	}
	return f.outline(user, description)
}

type fakeBrandService struct {
	create func(user application.UserContext, params application.BrandProfileParams) (persistence.BrandProfile, error)
	update func(user application.UserContext, id string, params application.BrandProfileParams) (persistence.BrandProfile, error)
	get    func(user application.UserContext) (persistence.BrandProfile, error)
	delete func(user application.UserContext, id string) error
}

func (f *fakeBrandService) CreateProfile(_ context.Context, user application.UserContext, params application.BrandProfileParams) (persistence.BrandProfile, error) {
	if f.create == nil {
		return persistence.BrandProfile{}, nil
	}
	return f.create(user, params)
}

func (f *fakeBrandService) UpdateProfile(_ context.Context, user application.UserContext, id string, params application.BrandProfileParams) (persistence.BrandProfile, error) {
	if f.update == nil {
		return persistence.BrandProfile{}, nil
	}
	return f.update(user, id, params)
}

func (f *fakeBrandService) GetProfile(_ context.Context, user application.UserContext) (persistence.BrandProfile, error) {
	if f.get == nil {
		return persistence.BrandProfile{}, nil
	}
	return f.get(user)
}

func (f *fakeBrandService) DeleteProfile(_ context.Context, user application.UserContext, id string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(user, id)
}

type fakePlanService struct {
	create          func(user application.UserContext, params application.CreatePlanParams) (application.PlanResult, error)
	get             func(user application.UserContext, id string) (application.PlanResult, error)
	list            func(user application.UserContext) ([]persistence.ContentPlan, error)
	delete          func(user application.UserContext, id string) error
	generateContent func(user application.UserContext, planID, postID string) (persistence.PlannedPost, error)
	frequencies     func(user application.UserContext) ([]planner.FrequencyOption, error)
}

func (f *fakePlanService) CreatePlan(_ context.Context, user application.UserContext, params application.CreatePlanParams) (application.PlanResult, error) {
	if f.create == nil {
		return application.PlanResult{}, nil
	}
	return f.create(user, params)
}

func (f *fakePlanService) GetPlan(_ context.Context, user application.UserContext, id string) (application.PlanResult, error) {
	if f.get == nil {
		return application.PlanResult{}, nil
	}
	return f.get(user, id)
}

func (f *fakePlanService) ListPlans(_ context.Context, user application.UserContext) ([]persistence.ContentPlan, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list(user)
}

func (f *fakePlanService) DeletePlan(_ context.Context, user application.UserContext, id string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(user, id)
}

func (f *fakePlanService) GenerateContentForPost(_ context.Context, user application.UserContext, planID, postID string) (persistence.PlannedPost, error) {
	if f.generateContent == nil {
		return persistence.PlannedPost{}, nil
	}
	return f.generateContent(user, planID, postID)
}

func (f *fakePlanService) FrequencyRecommendations(_ context.Context, user application.UserContext) ([]planner.FrequencyOption, error) {
	if f.frequencies == nil {
		return nil, nil
	}
	return f.frequencies(user)
}

type fakeScheduleService struct {
	schedulePost  func(user application.UserContext, params application.SchedulePostParams) (persistence.ScheduledPost, error)
	previewWeekly func(user application.UserContext, start time.Time, numberOfPosts int) ([]schedule.Slot, error)
	commitWeekly  func(user application.UserContext, params application.WeeklyScheduleParams) ([]persistence.ScheduledPost, error)
	list          func(user application.UserContext) ([]persistence.ScheduledPost, error)
	delete        func(user application.UserContext, id string) error
}

func (f *fakeScheduleService) SchedulePost(_ context.Context, user application.UserContext, params application.SchedulePostParams) (persistence.ScheduledPost, error) {
	if f.schedulePost == nil {
		return persistence.ScheduledPost{}, nil
	}
	return f.schedulePost(user, params)
}

func (f *fakeScheduleService) PreviewWeekly(user application.UserContext, start time.Time, numberOfPosts int) ([]schedule.Slot, error) {
	if f.previewWeekly == nil {
		return nil, nil
	}
	return f.previewWeekly(user, start, numberOfPosts)
}

func (f *fakeScheduleService) CommitWeeklySchedule(_ context.Context, user application.UserContext, params application.WeeklyScheduleParams) ([]persistence.ScheduledPost, error) {
	if f.commitWeekly == nil {
		return nil, nil
	}
	return f.commitWeekly(user, params)
}

func (f *fakeScheduleService) ListScheduledPosts(_ context.Context, user application.UserContext) ([]persistence.ScheduledPost, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list(user)
}

func (f *fakeScheduleService) DeleteScheduledPost(_ context.Context, user application.UserContext, id string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(user, id)
}

type fakeAlarmService struct {
	create  func(user application.UserContext, params application.CreateAlarmParams) (persistence.Alarm, error)
	list    func(user application.UserContext) ([]persistence.Alarm, error)
	dismiss func(user application.UserContext, id string) error
	delete  func(user application.UserContext, id string) error
}

func (f *fakeAlarmService) CreateAlarm(_ context.Context, user application.UserContext, params application.CreateAlarmParams) (persistence.Alarm, error) {
	if f.create == nil {
		return persistence.Alarm{}, nil
	}
	return f.create(user, params)
}

func (f *fakeAlarmService) ListActive(_ context.Context, user application.UserContext) ([]persistence.Alarm, error) {
	if f.list == nil {
		return nil, nil
	}
	return f.list(user)
}

func (f *fakeAlarmService) Dismiss(_ context.Context, user application.UserContext, id string) error {
	if f.dismiss == nil {
		return nil
	}
	return f.dismiss(user, id)
}

func (f *fakeAlarmService) Delete(_ context.Context, user application.UserContext, id string) error {
	if f.delete == nil {
		return nil
	}
	return f.delete(user, id)
}

type routerFakes struct {
	content  *fakeContentService
	brands   *fakeBrandService
	plans    *fakePlanService
	schedule *fakeScheduleService
	alarms   *fakeAlarmService
}

func newRouterFakes() *routerFakes {
	return &routerFakes{
		content:  &fakeContentService{},
		brands:   &fakeBrandService{},
		plans:    &fakePlanService{},
		schedule: &fakeScheduleService{},
		alarms:   &fakeAlarmService{},
	}
}

func newTestRouter(fakes *routerFakes) http.Handler {
	return NewRouter(RouterConfig{
		Content:    NewContentHandler(fakes.content, 50, nil),
		Brands:     NewBrandHandler(fakes.brands, nil),
		Plans:      NewPlanHandler(fakes.plans, nil),
		Schedules:  NewScheduleHandler(fakes.schedule, nil),
		Alarms:     NewAlarmHandler(fakes.alarms, nil),
		Middleware: []func(http.Handler) http.Handler{RequireUser(nil)},
	})
}
