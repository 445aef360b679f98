package toml

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

const (
	configName       = "config"
	configType       = "toml"
	draftsPathKey    = "drafts.path"
	draftsFileMode   = 0o600
	draftsDirMode    = 0o700
	draftsConfigDir  = ".takemetrip"
	draftsConfigFile = "draft.toml"
	tempFilePattern  = ".draft-*.toml.tmp"
)

// DraftRepository keeps the latest generated itinerary in a TOML file so
// `plan show` and `plan save` can run in a later invocation than
// `plan generate`.
type DraftRepository struct {
	draftsPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.DraftRepository = (*DraftRepository)(nil)

func NewDraftRepository(cfg *viper.Viper) (*DraftRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, draftsConfigDir, draftsConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, draftsConfigDir))
	cfg.SetDefault(draftsPathKey, defaultPath)

	if cfg.ConfigFileUsed() == "" {
		err = cfg.ReadInConfig()
		if err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	draftsPath := cfg.GetString(draftsPathKey)
	if draftsPath == "" {
		return nil, errors.New("drafts path is empty")
	}
	draftsPath, err = normalizeDraftsPath(draftsPath)
	if err != nil {
		return nil, err
	}

	return &DraftRepository{draftsPath: draftsPath, mu: lockForPath(draftsPath)}, nil
}

// Path reports where the draft is stored.
func (r *DraftRepository) Path() string {
	return r.draftsPath
}

func (r *DraftRepository) Current(ctx context.Context) (domain.Draft, error) {
	if err := ctx.Err(); err != nil {
		return domain.Draft{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Draft{}, err
	}
	if file.Draft == nil {
		return domain.Draft{}, domain.ErrDraftNotFound
	}

	return fromSchema(*file.Draft), nil
}

func (r *DraftRepository) Save(ctx context.Context, draft domain.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := toSchema(draft)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(fileSchema{Draft: &encoded})
}

func (r *DraftRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := os.Remove(r.draftsPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove draft file: %w", err)
	}

	return nil
}

func (r *DraftRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.draftsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read draft file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode draft file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeDraftsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve drafts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *DraftRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.draftsPath), draftsDirMode); err != nil {
		return fmt.Errorf("create drafts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode draft file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.draftsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp draft file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp draft file: %w", err)
	}

	if err := tempFile.Chmod(draftsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp draft file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp draft file: %w", err)
	}

	if err := os.Rename(tempName, r.draftsPath); err != nil {
		return fmt.Errorf("replace draft file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(draft domain.Draft) (draftSchema, error) {
	days := make([]daySchema, 0, len(draft.Plan.Days))
	for _, day := range draft.Plan.Days {
		items := make([]itemSchema, 0, len(day.Schedule))
		for _, item := range day.Schedule {
			encoded := itemSchema{
				Type:   string(item.Type),
				Time:   item.Time,
				Status: item.Status,
				Data:   string(item.Data),
			}
			if item.TripID != nil {
				id := int64(*item.TripID)
				encoded.TripID = &id
			}
			items = append(items, encoded)
		}
		days = append(days, daySchema{Day: day.Day, Date: day.Date, Items: items})
	}

	if len(draft.Plan.RecommendedAccommodation) > 0 && !json.Valid(draft.Plan.RecommendedAccommodation) {
		return draftSchema{}, errors.New("encode draft: recommended accommodation is not valid JSON")
	}

	return draftSchema{
		ID:        draft.ID,
		CreatedAt: formatTime(draft.CreatedAt),
		Request: requestSchema{
			StartDate: draft.Request.StartDate,
			EndDate:   draft.Request.EndDate,
			NumPeople: draft.Request.NumPeople,
			RegionID:  draft.Request.RegionID,
			CityID:    draft.Request.CityID,
			MapX:      draft.Request.MapX,
			MapY:      draft.Request.MapY,
		},
		Plan: planSchema{
			Duration:                 draft.Plan.Duration,
			TravelTimeToDest:         draft.Plan.TravelTimeToDest,
			RegionID:                 draft.Plan.RegionID,
			RecommendedAccommodation: string(draft.Plan.RecommendedAccommodation),
			Days:                     days,
		},
	}, nil
}

func fromSchema(draft draftSchema) domain.Draft {
	days := make([]domain.DayPlan, 0, len(draft.Plan.Days))
	for _, day := range draft.Plan.Days {
		schedule := make([]domain.ScheduleItem, 0, len(day.Items))
		for _, item := range day.Items {
			decoded := domain.ScheduleItem{
				Type:   domain.ScheduleItemType(item.Type),
				Time:   item.Time,
				Status: item.Status,
			}
			if item.Data != "" {
				decoded.Data = json.RawMessage(item.Data)
			}
			if item.TripID != nil {
				id := domain.TripID(*item.TripID)
				decoded.TripID = &id
			}
			schedule = append(schedule, decoded)
		}
		days = append(days, domain.DayPlan{Day: day.Day, Date: day.Date, Schedule: schedule})
	}

	var accommodation json.RawMessage
	if draft.Plan.RecommendedAccommodation != "" {
		accommodation = json.RawMessage(draft.Plan.RecommendedAccommodation)
	}

	return domain.Draft{
		ID:        draft.ID,
		CreatedAt: parseTime(draft.CreatedAt),
		Request: domain.PlanRequest{
			StartDate: draft.Request.StartDate,
			EndDate:   draft.Request.EndDate,
			NumPeople: draft.Request.NumPeople,
			RegionID:  draft.Request.RegionID,
			CityID:    draft.Request.CityID,
			MapX:      draft.Request.MapX,
			MapY:      draft.Request.MapY,
		},
		Plan: domain.GeneratedPlan{
			Duration:                 draft.Plan.Duration,
			TravelTimeToDest:         draft.Plan.TravelTimeToDest,
			RegionID:                 draft.Plan.RegionID,
			RecommendedAccommodation: accommodation,
			Days:                     days,
		},
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
