package toml

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winter3671/TakeMeTrip/internal/domain"
)

func newTestRepository(t *testing.T, path string) *DraftRepository {
	t.Helper()

	config := viper.New()
	config.Set("drafts.path", path)

	repo, err := NewDraftRepository(config)
	require.NoError(t, err)
	return repo
}

func sampleDraft() domain.Draft {
	spot := domain.TripID(100)
	meal := domain.TripID(200)

	return domain.Draft{
		ID:        "0b6c1f4e-9f59-4a57-9c1e-2d0c8d3c6a11",
		CreatedAt: time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		Request: domain.PlanRequest{
			StartDate: "2026-05-01",
			EndDate:   "2026-05-02",
			NumPeople: 2,
			RegionID:  39,
			CityID:    3,
			MapX:      126.97,
			MapY:      37.56,
		},
		Plan: domain.GeneratedPlan{
			Duration:                 2,
			TravelTimeToDest:         80,
			RegionID:                 39,
			RecommendedAccommodation: json.RawMessage(`{"id":300,"title":"Ocean Stay"}`),
			Days: []domain.DayPlan{
				{Day: 1, Date: "2026-05-01", Schedule: []domain.ScheduleItem{
					{Type: domain.ItemSpot, Time: "10:20", TripID: &spot, Data: json.RawMessage(`{"id":100,"title":"Seongsan Ilchulbong"}`)},
					{Type: domain.ItemMeal, Time: "12:00", Status: "fallback"},
				}},
				{Day: 2, Date: "2026-05-02", Schedule: []domain.ScheduleItem{
					{Type: domain.ItemMeal, Time: "12:30", TripID: &meal, Data: json.RawMessage(`{"id":200,"title":"Heuk Dwaeji"}`)},
				}},
			},
		},
	}
}

func TestDraftRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "draft.toml"))
	want := sampleDraft()

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []domain.CourseDetail{
		{TripID: 100, Day: 1, Order: 1},
		{TripID: 200, Day: 2, Order: 1},
	}, domain.FlattenPlan(got.Plan))
}

func TestDraftRepositorySaveReplacesPreviousDraft(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "draft.toml"))
	first := sampleDraft()
	second := sampleDraft()
	second.ID = "second"
	second.Plan.Days = second.Plan.Days[:1]

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", got.ID)
	assert.Len(t, got.Plan.Days, 1)
}

func TestDraftRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewDraftRepository(viper.New())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), sampleDraft()))

	draftPath := filepath.Join(homeDir, ".takemetrip", "draft.toml")
	assert.Equal(t, draftPath, repo.Path())
	info, err := os.Stat(draftPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDraftRepositoryReadsPathFromConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	custom := filepath.Join(homeDir, "trips", "current.toml")
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".takemetrip"), 0o700))
	require.NoError(t, os.WriteFile(
		filepath.Join(homeDir, ".takemetrip", "config.toml"),
		[]byte("[drafts]\npath = \""+custom+"\"\n"),
		0o600,
	))

	repo, err := NewDraftRepository(viper.New())
	require.NoError(t, err)
	assert.Equal(t, custom, repo.Path())
}

func TestDraftRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "draft.toml"))

	_, err := repo.Current(context.Background())
	require.ErrorIs(t, err, domain.ErrDraftNotFound)

	require.NoError(t, repo.Clear(context.Background()))
}

func TestDraftRepositoryClearRemovesDraft(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "draft.toml"))
	require.NoError(t, repo.Save(context.Background(), sampleDraft()))

	require.NoError(t, repo.Clear(context.Background()))

	_, err := repo.Current(context.Background())
	require.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftRepositoryMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	draftPath := filepath.Join(t.TempDir(), "draft.toml")
	require.NoError(t, os.WriteFile(draftPath, []byte("draft = ["), 0o600))

	repo := newTestRepository(t, draftPath)

	_, err := repo.Current(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode draft file")
}

func TestDraftRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "draft.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, sampleDraft())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDraftRepositoryConcurrentSavesAcrossInstancesLeaveOneWholeDraft(t *testing.T) {
	t.Parallel()

	draftPath := filepath.Join(t.TempDir(), "draft.toml")
	repoA := newTestRepository(t, draftPath)
	repoB := newTestRepository(t, draftPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	write := func(repo *DraftRepository, id string) {
		defer wg.Done()
		<-start
		draft := sampleDraft()
		draft.ID = id
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), draft)
		}
	}

	go write(repoA, "a")
	go write(repoB, "b")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	got, err := repoA.Current(context.Background())
	require.NoError(t, err)
	assert.Contains(t, []string{"a", "b"}, got.ID)
	assert.Equal(t, 3, got.Plan.ItemCount())
}

func TestDraftRepositorySerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	draftPath := filepath.Join(t.TempDir(), "draft.toml")
	repo := newTestRepository(t, draftPath)

	require.NoError(t, repo.Save(context.Background(), sampleDraft()))

	data, err := os.ReadFile(draftPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "trip_id = 100")
}

func TestDraftRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	draftPath := filepath.Join(t.TempDir(), "draft.toml")
	require.NoError(t, os.WriteFile(draftPath, []byte(strings.Join([]string{
		"version = 999",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, draftPath)

	_, err := repo.Current(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported draft schema version")
}

func TestDraftRepositoryRejectsInvalidAccommodationJSON(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "draft.toml"))
	draft := sampleDraft()
	draft.Plan.RecommendedAccommodation = json.RawMessage(`{`)

	err := repo.Save(context.Background(), draft)
	assert.ErrorContains(t, err, "recommended accommodation is not valid JSON")
}
