package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

// Planner drives the itinerary pipeline: generate a plan, keep it as the
// current draft, turn it into a course payload and save it.
type Planner struct {
	session ports.Session
	api     ports.PlannerAPI
	drafts  ports.DraftRepository
	nav     ports.Navigator
	clock   ports.Clock
	newID   func() string
	logger  zerolog.Logger

	regionsMu sync.Mutex
	regions   []domain.Region

	saving    atomic.Bool
	attemptMu sync.Mutex
	attempt   domain.SaveAttempt
}

type PlannerOption func(*Planner)

func WithPlannerClock(clock ports.Clock) PlannerOption {
	return func(p *Planner) {
		if clock != nil {
			p.clock = clock
		}
	}
}

func WithPlannerLogger(logger zerolog.Logger) PlannerOption {
	return func(p *Planner) {
		p.logger = logger
	}
}

// WithDraftIDs replaces the uuid generator used to stamp drafts.
func WithDraftIDs(newID func() string) PlannerOption {
	return func(p *Planner) {
		if newID != nil {
			p.newID = newID
		}
	}
}

func NewPlanner(session ports.Session, api ports.PlannerAPI, drafts ports.DraftRepository, nav ports.Navigator, opts ...PlannerOption) *Planner {
	planner := &Planner{
		session: session,
		api:     api,
		drafts:  drafts,
		nav:     nav,
		clock:   ports.SystemClock{},
		newID:   uuid.NewString,
		logger:  zerolog.Nop(),
		attempt: *domain.NewSaveAttempt(),
	}
	for _, opt := range opts {
		opt(planner)
	}

	return planner
}

// LoadRegions returns the region catalog, fetching it at most once per
// planner after a successful response.
func (p *Planner) LoadRegions(ctx context.Context) ([]domain.Region, error) {
	p.regionsMu.Lock()
	defer p.regionsMu.Unlock()

	if p.regions != nil {
		return p.regions, nil
	}

	regions, err := p.api.Regions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load regions: %w", err)
	}
	if regions == nil {
		regions = []domain.Region{}
	}
	p.regions = regions

	return regions, nil
}

// Generate asks the planner backend for an itinerary and stores it as the
// current draft, replacing any previous one.
func (p *Planner) Generate(ctx context.Context, req domain.PlanRequest) (domain.Draft, error) {
	if !p.session.IsAuthenticated() {
		return domain.Draft{}, domain.ErrNoSession
	}
	if err := req.Validate(); err != nil {
		return domain.Draft{}, err
	}

	plan, err := p.api.Generate(ctx, p.session.Token(), req)
	if err != nil {
		expireOnAuthFailure(ctx, p.session, err)
		return domain.Draft{}, fmt.Errorf("generate plan: %w", err)
	}

	draft := domain.Draft{
		ID:        p.newID(),
		CreatedAt: p.clock.Now().UTC(),
		Request:   req,
		Plan:      plan,
	}
	if err := p.drafts.Save(ctx, draft); err != nil {
		return domain.Draft{}, fmt.Errorf("store draft: %w", err)
	}

	p.logger.Debug().Str("draft", draft.ID).Int("items", plan.ItemCount()).Msg("plan generated")

	return draft, nil
}

// CurrentDraft returns the last generated plan.
func (p *Planner) CurrentDraft(ctx context.Context) (domain.Draft, error) {
	draft, err := p.drafts.Current(ctx)
	if err != nil {
		return domain.Draft{}, fmt.Errorf("load draft: %w", err)
	}

	return draft, nil
}

// BuildSavePayload validates a save request and assembles its payload.
// The session is checked first, then the plan, then the title.
func (p *Planner) BuildSavePayload(title string, form domain.PlanRequest, plan *domain.GeneratedPlan, catalog []domain.Region) (domain.CourseSavePayload, error) {
	if !p.session.IsAuthenticated() {
		return domain.CourseSavePayload{}, domain.ErrNoSession
	}
	if plan == nil {
		return domain.CourseSavePayload{}, domain.ErrNoPlan
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.CourseSavePayload{}, domain.ErrTitleRequired
	}

	return domain.CourseSavePayload{
		Title:     title,
		Region:    domain.ResolveRegionName(form.RegionID, catalog),
		StartDate: form.StartDate,
		EndDate:   form.EndDate,
		Details:   domain.FlattenPlan(*plan),
	}, nil
}

// SaveCourse submits an already built payload.
func (p *Planner) SaveCourse(ctx context.Context, payload domain.CourseSavePayload) error {
	return p.runSave(ctx, func() (domain.CourseSavePayload, error) {
		if !p.session.IsAuthenticated() {
			return domain.CourseSavePayload{}, domain.ErrNoSession
		}
		if strings.TrimSpace(payload.Title) == "" {
			return domain.CourseSavePayload{}, domain.ErrTitleRequired
		}
		return payload, nil
	})
}

// Save builds the payload from the given plan and submits it as one attempt.
func (p *Planner) Save(ctx context.Context, title string, form domain.PlanRequest, plan *domain.GeneratedPlan, catalog []domain.Region) error {
	return p.runSave(ctx, func() (domain.CourseSavePayload, error) {
		return p.BuildSavePayload(title, form, plan, catalog)
	})
}

// SaveDraft saves the current draft under title and clears it once the
// backend accepted the course.
func (p *Planner) SaveDraft(ctx context.Context, title string) error {
	var (
		form domain.PlanRequest
		plan *domain.GeneratedPlan
	)

	draft, err := p.drafts.Current(ctx)
	switch {
	case err == nil:
		form = draft.Request
		plan = &draft.Plan
	case errors.Is(err, domain.ErrDraftNotFound):
	default:
		return fmt.Errorf("load draft: %w", err)
	}

	var catalog []domain.Region
	if plan != nil && p.session.IsAuthenticated() {
		catalog, err = p.LoadRegions(ctx)
		if err != nil {
			p.logger.Warn().Err(err).Msg("region catalog unavailable, saving with unknown region")
		}
	}

	if err := p.Save(ctx, title, form, plan, catalog); err != nil {
		return err
	}

	if err := p.drafts.Clear(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("clear saved draft")
	}

	return nil
}

// LastAttempt reports the states the most recent save attempt went through.
func (p *Planner) LastAttempt() domain.SaveAttempt {
	p.attemptMu.Lock()
	defer p.attemptMu.Unlock()

	return domain.SaveAttempt{
		States: append([]domain.SaveState(nil), p.attempt.States...),
		Err:    p.attempt.Err,
	}
}

func (p *Planner) runSave(ctx context.Context, build func() (domain.CourseSavePayload, error)) (err error) {
	if !p.saving.CompareAndSwap(false, true) {
		return domain.ErrSaveInProgress
	}
	defer p.saving.Store(false)

	attempt := domain.NewSaveAttempt()
	defer func() {
		attempt.Err = err
		p.attemptMu.Lock()
		p.attempt = *attempt
		p.attemptMu.Unlock()
	}()

	attempt.Advance(domain.SaveValidating)
	payload, err := build()
	if err != nil {
		attempt.Advance(domain.SaveRejected)
		return err
	}

	attempt.Advance(domain.SaveBuilding)
	if payload.Details == nil {
		payload.Details = []domain.CourseDetail{}
	}

	attempt.Advance(domain.SaveSubmitting)
	if err := p.api.SaveCourse(ctx, p.session.Token(), payload); err != nil {
		if errors.Is(err, domain.ErrAuthExpired) {
			attempt.Advance(domain.SaveFailedAuthExpired)
			p.session.Logout(ctx)
		} else {
			attempt.Advance(domain.SaveFailed)
		}
		return fmt.Errorf("save course: %w", err)
	}

	attempt.Advance(domain.SaveSucceeded)
	p.logger.Debug().Str("title", payload.Title).Int("details", len(payload.Details)).Msg("course saved")
	p.nav.Notify(domain.Notification{Message: "Course saved", Severity: domain.SeveritySuccess})
	p.nav.Navigate(domain.RouteCourse)

	return nil
}
