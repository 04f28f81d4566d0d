package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"focusflow-api/core/cache"
	"focusflow-api/core/errors"
	"focusflow-api/core/logger"
	"focusflow-api/modules/schedule/dto"
	"focusflow-api/modules/schedule/entity"
	"focusflow-api/modules/schedule/repository"

	"github.com/google/uuid"
)

// ScheduleService wraps the pure planner with caching and history.
type ScheduleService struct {
	repo     repository.SuggestionRepositoryInterface
	cache    *cache.Cache
	planner  *Planner
	cacheTTL time.Duration
}

// ScheduleServiceInterface defines the service contract
type ScheduleServiceInterface interface {
	Suggest(ctx context.Context, userID *uuid.UUID, req *dto.SuggestRequest) (*dto.SuggestResponse, *errors.AppError)
	GetHistory(ctx context.Context, userID uuid.UUID) ([]dto.SuggestionHistoryItem, *errors.AppError)
	PurgeExpired(ctx context.Context, retentionDays int) error
}

func NewScheduleService(repo repository.SuggestionRepositoryInterface, c *cache.Cache, planner *Planner, cacheTTLSeconds int) ScheduleServiceInterface {
	return &ScheduleService{
		repo:     repo,
		cache:    c,
		planner:  planner,
		cacheTTL: time.Duration(cacheTTLSeconds) * time.Second,
	}
}

// Suggest resolves the planning day, consults the cache, runs the planner
// and records the outcome. Planner leniency means this never fails on bad
// calendar data; only infrastructure problems surface as errors.
func (s *ScheduleService) Suggest(ctx context.Context, userID *uuid.UUID, req *dto.SuggestRequest) (*dto.SuggestResponse, *errors.AppError) {
	day := s.resolveDay(req.Day)

	key := s.cacheKey(req, day)
	if s.cache != nil {
		var cached dto.SuggestResponse
		if s.cache.GetJSON(ctx, key, &cached) {
			logger.Debug("ScheduleService:Suggest:CacheHit", "key", key)
			return &cached, nil
		}
	}

	result := s.planner.SuggestFocusWindow(req.CalendarEvents, req.UserPreferences, day)

	resp := &dto.SuggestResponse{
		Window:  result.Window,
		Message: result.Message,
	}

	if s.cache != nil {
		s.cache.SetJSON(ctx, key, resp, s.cacheTTL)
	}

	// History is best-effort: a storage hiccup must not cost the caller
	// their suggestion.
	if s.repo != nil {
		record := &entity.FocusSuggestion{
			UserID:  userID,
			Day:     day,
			Message: result.Message,
		}
		if result.Window != nil {
			record.StartTime = &result.Window.StartTime
			record.EndTime = &result.Window.EndTime
			record.DurationMinutes = result.Window.DurationMinutes
			record.Score = result.Window.Score
		}
		if err := s.repo.SaveSuggestion(ctx, record); err != nil {
			logger.Warn("ScheduleService:Suggest:SaveHistory", "error", err)
		}
	}

	return resp, nil
}

// GetHistory returns the caller's recent suggestions.
func (s *ScheduleService) GetHistory(ctx context.Context, userID uuid.UUID) ([]dto.SuggestionHistoryItem, *errors.AppError) {
	suggestions, err := s.repo.GetSuggestionsByUserID(ctx, userID, 50)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load suggestion history", err)
	}

	items := make([]dto.SuggestionHistoryItem, 0, len(suggestions))
	for _, sg := range suggestions {
		items = append(items, dto.SuggestionHistoryItem{
			ID:              sg.ID.String(),
			Day:             sg.Day.Format("2006-01-02"),
			StartTime:       sg.StartTime,
			EndTime:         sg.EndTime,
			DurationMinutes: sg.DurationMinutes,
			Score:           sg.Score,
			Message:         sg.Message,
			CreatedAt:       sg.CreatedAt,
		})
	}

	return items, nil
}

// PurgeExpired removes suggestions past the retention window (cron sweep).
func (s *ScheduleService) PurgeExpired(ctx context.Context, retentionDays int) error {
	return s.repo.DeleteOlderThanDays(ctx, retentionDays)
}

// resolveDay parses the requested day or falls back to today. The clock
// read happens here, outside the planner core.
func (s *ScheduleService) resolveDay(day string) time.Time {
	if day != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", day, time.Local); err == nil {
			return parsed
		}
		logger.Warn("ScheduleService:resolveDay:Unparsable", "day", day)
	}
	return time.Now()
}

// cacheKey hashes the full request so identical inputs share a cache slot.
func (s *ScheduleService) cacheKey(req *dto.SuggestRequest, day time.Time) string {
	payload, _ := json.Marshal(struct {
		Events []dto.RawEvent           `json:"events"`
		Prefs  *dto.SchedulePreferences `json:"prefs"`
		Day    string                   `json:"day"`
	}{req.CalendarEvents, req.UserPreferences, day.Format("2006-01-02")})

	sum := sha256.Sum256(payload)
	return "schedule:suggest:" + hex.EncodeToString(sum[:16])
}
