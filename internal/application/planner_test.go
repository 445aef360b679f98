package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports/mocks"
)

type plannerFixture struct {
	session *mocks.MockSession
	api     *mocks.MockPlannerAPI
	drafts  *mocks.MockDraftRepository
	nav     *mocks.MockNavigator
	clock   *mocks.MockClock
	planner *Planner
}

func newPlannerFixture(t *testing.T) plannerFixture {
	t.Helper()

	f := plannerFixture{
		session: mocks.NewMockSession(t),
		api:     mocks.NewMockPlannerAPI(t),
		drafts:  mocks.NewMockDraftRepository(t),
		nav:     mocks.NewMockNavigator(t),
		clock:   mocks.NewMockClock(t),
	}
	f.planner = NewPlanner(f.session, f.api, f.drafts, f.nav,
		WithPlannerClock(f.clock),
		WithPlannerLogger(zerolog.Nop()),
		WithDraftIDs(func() string { return "draft-1" }),
	)

	return f
}

func (f plannerFixture) signedIn(token string) {
	f.session.EXPECT().IsAuthenticated().Return(true).Maybe()
	f.session.EXPECT().Token().Return(token).Maybe()
}

func (f plannerFixture) signedOut() {
	f.session.EXPECT().IsAuthenticated().Return(false).Maybe()
	f.session.EXPECT().Token().Return("").Maybe()
}

func tripID(id int64) *domain.TripID {
	value := domain.TripID(id)
	return &value
}

func jejuPlan() domain.GeneratedPlan {
	return domain.GeneratedPlan{
		Duration: 2,
		RegionID: 39,
		Days: []domain.DayPlan{
			{Day: 1, Date: "2026-05-01", Schedule: []domain.ScheduleItem{
				{Type: domain.ItemSpot, Time: "10:00", TripID: tripID(101), Data: json.RawMessage(`{"id":101}`)},
				{Type: domain.ItemMeal, Time: "12:00"},
				{Type: domain.ItemSpot, Time: "14:00", TripID: tripID(102), Data: json.RawMessage(`{"id":102}`)},
			}},
			{Day: 2, Date: "2026-05-02", Schedule: []domain.ScheduleItem{
				{Type: domain.ItemAccommodation, Time: "20:00", TripID: tripID(201), Data: json.RawMessage(`{"id":201}`)},
			}},
		},
	}
}

func jejuForm() domain.PlanRequest {
	return domain.PlanRequest{StartDate: "2026-05-01", EndDate: "2026-05-02", NumPeople: 2, RegionID: 39, CityID: 3}
}

func jejuCatalog() []domain.Region {
	return []domain.Region{{ID: 1, Name: "Seoul"}, {ID: 39, Name: "Jeju", Cities: []domain.City{{ID: 3, Name: "Seogwipo"}}}}
}

func TestPlannerBuildSavePayloadRejectionOrder(t *testing.T) {
	t.Parallel()

	plan := jejuPlan()
	tests := []struct {
		name          string
		authenticated bool
		title         string
		plan          *domain.GeneratedPlan
		wantErr       error
	}{
		{name: "no session beats everything", authenticated: false, title: "", plan: nil, wantErr: domain.ErrNoSession},
		{name: "no session with valid plan", authenticated: false, title: "Trip", plan: &plan, wantErr: domain.ErrNoSession},
		{name: "no plan beats blank title", authenticated: true, title: "", plan: nil, wantErr: domain.ErrNoPlan},
		{name: "blank title", authenticated: true, title: "   ", plan: &plan, wantErr: domain.ErrTitleRequired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newPlannerFixture(t)
			f.session.EXPECT().IsAuthenticated().Return(tt.authenticated)

			_, err := f.planner.BuildSavePayload(tt.title, jejuForm(), tt.plan, jejuCatalog())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPlannerBuildSavePayloadFlattensAndResolvesRegion(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("tok")
	plan := jejuPlan()

	payload, err := f.planner.BuildSavePayload("  Jeju weekend ", jejuForm(), &plan, jejuCatalog())
	require.NoError(t, err)

	assert.Equal(t, domain.CourseSavePayload{
		Title:     "Jeju weekend",
		Region:    "Jeju",
		StartDate: "2026-05-01",
		EndDate:   "2026-05-02",
		Details: []domain.CourseDetail{
			{TripID: 101, Day: 1, Order: 1},
			{TripID: 102, Day: 1, Order: 2},
			{TripID: 201, Day: 2, Order: 1},
		},
	}, payload)
}

func TestPlannerBuildSavePayloadFallsBackToUnknownRegion(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("tok")
	plan := jejuPlan()
	form := jejuForm()
	form.RegionID = 99

	payload, err := f.planner.BuildSavePayload("Trip", form, &plan, jejuCatalog())
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownRegionName, payload.Region)

	payload, err = f.planner.BuildSavePayload("Trip", jejuForm(), &plan, nil)
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownRegionName, payload.Region)
}

func TestPlannerSaveCourseSuccessNotifiesThenNavigates(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("tok-1")
	payload := domain.CourseSavePayload{Title: "Trip", Region: "Jeju", Details: []domain.CourseDetail{{TripID: 1, Day: 1, Order: 1}}}

	var events []string
	f.api.EXPECT().SaveCourse(mockAnyContext(), "tok-1", payload).Return(nil).Once()
	f.nav.EXPECT().Notify(domain.Notification{Message: "Course saved", Severity: domain.SeveritySuccess}).
		Run(func(domain.Notification) { events = append(events, "notify") }).Return().Once()
	f.nav.EXPECT().Navigate(domain.RouteCourse).
		Run(func(domain.Route) { events = append(events, "navigate") }).Return().Once()

	require.NoError(t, f.planner.SaveCourse(context.Background(), payload))

	assert.Equal(t, []string{"notify", "navigate"}, events)
	attempt := f.planner.LastAttempt()
	assert.Equal(t, []domain.SaveState{
		domain.SaveIdle, domain.SaveValidating, domain.SaveBuilding, domain.SaveSubmitting, domain.SaveSucceeded,
	}, attempt.States)
	assert.NoError(t, attempt.Err)
}

func TestPlannerSaveCourseAuthExpiredLogsOut(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("stale")
	expired := fmt.Errorf("POST /api/planner/save/: %w", &domain.APIError{Kind: domain.ErrAuthExpired, StatusCode: 401})

	f.api.EXPECT().SaveCourse(mockAnyContext(), "stale", mock.Anything).Return(expired).Once()
	f.session.EXPECT().Logout(mockAnyContext()).Return().Once()

	err := f.planner.SaveCourse(context.Background(), domain.CourseSavePayload{Title: "Trip"})
	require.ErrorIs(t, err, domain.ErrAuthExpired)

	attempt := f.planner.LastAttempt()
	assert.Equal(t, domain.SaveFailedAuthExpired, attempt.States[len(attempt.States)-1])
	assert.ErrorIs(t, attempt.Err, domain.ErrAuthExpired)
}

func TestPlannerSaveCourseOtherFailureKeepsSession(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "validation", err: &domain.APIError{Kind: domain.ErrValidation, StatusCode: 400, Detail: "title: too long"}},
		{name: "server", err: &domain.APIError{Kind: domain.ErrServer, StatusCode: 502}},
		{name: "network", err: &domain.APIError{Kind: domain.ErrNetwork}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newPlannerFixture(t)
			f.signedIn("tok")
			f.api.EXPECT().SaveCourse(mockAnyContext(), "tok", mock.Anything).Return(tt.err).Once()

			err := f.planner.SaveCourse(context.Background(), domain.CourseSavePayload{Title: "Trip"})
			require.ErrorIs(t, err, tt.err)

			f.session.AssertNotCalled(t, "Logout", mock.Anything)
			attempt := f.planner.LastAttempt()
			assert.Equal(t, domain.SaveFailed, attempt.States[len(attempt.States)-1])
		})
	}
}

func TestPlannerSaveRejectedBeforeAnyNetworkCall(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedOut()

	err := f.planner.Save(context.Background(), "Trip", jejuForm(), nil, nil)
	require.ErrorIs(t, err, domain.ErrNoSession)

	f.api.AssertNotCalled(t, "SaveCourse", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, []domain.SaveState{domain.SaveIdle, domain.SaveValidating, domain.SaveRejected}, f.planner.LastAttempt().States)
}

func TestPlannerSaveRejectsOverlappingAttempt(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("tok")

	entered := make(chan struct{})
	release := make(chan struct{})
	f.api.EXPECT().SaveCourse(mockAnyContext(), "tok", mock.Anything).
		RunAndReturn(func(context.Context, string, domain.CourseSavePayload) error {
			close(entered)
			<-release
			return nil
		}).Once()
	f.nav.EXPECT().Notify(mock.Anything).Return().Once()
	f.nav.EXPECT().Navigate(domain.RouteCourse).Return().Once()

	var wg sync.WaitGroup
	wg.Add(1)
	var firstErr error
	go func() {
		defer wg.Done()
		firstErr = f.planner.SaveCourse(context.Background(), domain.CourseSavePayload{Title: "Trip"})
	}()

	<-entered
	err := f.planner.SaveCourse(context.Background(), domain.CourseSavePayload{Title: "Trip"})
	require.ErrorIs(t, err, domain.ErrSaveInProgress)

	close(release)
	wg.Wait()
	require.NoError(t, firstErr)
}

func TestPlannerGenerateRequiresSession(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedOut()

	_, err := f.planner.Generate(context.Background(), jejuForm())
	require.ErrorIs(t, err, domain.ErrNoSession)
	f.api.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestPlannerGenerateValidatesForm(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("tok")
	form := jejuForm()
	form.EndDate = "2026-04-30"

	_, err := f.planner.Generate(context.Background(), form)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlannerGenerateStoresDraft(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("tok")
	now := time.Date(2026, 4, 20, 8, 0, 0, 0, time.UTC)
	want := domain.Draft{ID: "draft-1", CreatedAt: now, Request: jejuForm(), Plan: jejuPlan()}

	f.api.EXPECT().Generate(mockAnyContext(), "tok", jejuForm()).Return(jejuPlan(), nil).Once()
	f.clock.EXPECT().Now().Return(now).Once()
	f.drafts.EXPECT().Save(mockAnyContext(), want).Return(nil).Once()

	draft, err := f.planner.Generate(context.Background(), jejuForm())
	require.NoError(t, err)
	assert.Equal(t, want, draft)
}

func TestPlannerGenerateAuthExpiredLogsOutWithoutDraft(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("stale")

	f.api.EXPECT().Generate(mockAnyContext(), "stale", mock.Anything).
		Return(domain.GeneratedPlan{}, &domain.APIError{Kind: domain.ErrAuthExpired, StatusCode: 401}).Once()
	f.session.EXPECT().Logout(mockAnyContext()).Return().Once()

	_, err := f.planner.Generate(context.Background(), jejuForm())
	require.ErrorIs(t, err, domain.ErrAuthExpired)
	f.drafts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlannerLoadRegionsCachesSuccessOnly(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.api.EXPECT().Regions(mockAnyContext()).Return(nil, &domain.APIError{Kind: domain.ErrNetwork}).Once()
	f.api.EXPECT().Regions(mockAnyContext()).Return(jejuCatalog(), nil).Once()

	_, err := f.planner.LoadRegions(context.Background())
	require.ErrorIs(t, err, domain.ErrNetwork)

	for i := 0; i < 3; i++ {
		regions, err := f.planner.LoadRegions(context.Background())
		require.NoError(t, err)
		assert.Len(t, regions, 2)
	}
}

func TestPlannerSaveDraftSubmitsCurrentDraftAndClearsIt(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("tok")
	draft := domain.Draft{ID: "draft-1", Request: jejuForm(), Plan: jejuPlan()}

	f.drafts.EXPECT().Current(mockAnyContext()).Return(draft, nil).Once()
	f.api.EXPECT().Regions(mockAnyContext()).Return(jejuCatalog(), nil).Once()
	f.api.EXPECT().SaveCourse(mockAnyContext(), "tok", mock.MatchedBy(func(payload domain.CourseSavePayload) bool {
		return payload.Title == "Jeju weekend" && payload.Region == "Jeju" && len(payload.Details) == 3
	})).Return(nil).Once()
	f.nav.EXPECT().Notify(mock.Anything).Return().Once()
	f.nav.EXPECT().Navigate(domain.RouteCourse).Return().Once()
	f.drafts.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	require.NoError(t, f.planner.SaveDraft(context.Background(), "Jeju weekend"))
}

func TestPlannerSaveDraftWithoutDraft(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		authenticated bool
		wantErr       error
	}{
		{name: "signed out", authenticated: false, wantErr: domain.ErrNoSession},
		{name: "signed in", authenticated: true, wantErr: domain.ErrNoPlan},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newPlannerFixture(t)
			f.session.EXPECT().IsAuthenticated().Return(tt.authenticated).Maybe()
			f.drafts.EXPECT().Current(mockAnyContext()).Return(domain.Draft{}, domain.ErrDraftNotFound).Once()

			err := f.planner.SaveDraft(context.Background(), "Trip")
			require.ErrorIs(t, err, tt.wantErr)
			f.api.AssertNotCalled(t, "Regions", mock.Anything)
		})
	}
}

func TestPlannerSaveDraftWithUnavailableCatalogUsesUnknownRegion(t *testing.T) {
	t.Parallel()

	f := newPlannerFixture(t)
	f.signedIn("tok")

	f.drafts.EXPECT().Current(mockAnyContext()).Return(domain.Draft{Request: jejuForm(), Plan: jejuPlan()}, nil).Once()
	f.api.EXPECT().Regions(mockAnyContext()).Return(nil, errors.New("offline")).Once()
	f.api.EXPECT().SaveCourse(mockAnyContext(), "tok", mock.MatchedBy(func(payload domain.CourseSavePayload) bool {
		return payload.Region == domain.UnknownRegionName
	})).Return(nil).Once()
	f.nav.EXPECT().Notify(mock.Anything).Return().Once()
	f.nav.EXPECT().Navigate(domain.RouteCourse).Return().Once()
	f.drafts.EXPECT().Clear(mockAnyContext()).Return(nil).Once()

	require.NoError(t, f.planner.SaveDraft(context.Background(), "Trip"))
}

func mockAnyContext() interface{} {
	return mock.Anything
}
