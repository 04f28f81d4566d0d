package service

import (
	"context"
	"net/http"
	"time"

	"focusflow-api/core/errors"
	"focusflow-api/core/logger"
	"focusflow-api/modules/calendar/dto"
	"focusflow-api/modules/calendar/entity"
	"focusflow-api/modules/calendar/repository"
	scheduledto "focusflow-api/modules/schedule/dto"
	scheduleservice "focusflow-api/modules/schedule/service"

	"github.com/google/uuid"
)

// CalendarService manages ICS feed subscriptions and runs the focus-window
// planner over their events.
type CalendarService struct {
	repo     repository.FeedRepositoryInterface
	schedule scheduleservice.ScheduleServiceInterface
	client   *http.Client
}

// CalendarServiceInterface defines the service contract
type CalendarServiceInterface interface {
	AddFeed(ctx context.Context, userID uuid.UUID, req *dto.AddFeedRequest) (*dto.FeedResponse, *errors.AppError)
	ListFeeds(ctx context.Context, userID uuid.UUID) ([]dto.FeedResponse, *errors.AppError)
	RemoveFeed(ctx context.Context, userID uuid.UUID, feedID uuid.UUID) *errors.AppError
	EventsForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*dto.DayEventsResponse, *errors.AppError)
	SuggestFromFeeds(ctx context.Context, userID uuid.UUID, req *dto.SuggestFromFeedsRequest) (*scheduledto.SuggestResponse, *errors.AppError)
}

func NewCalendarService(repo repository.FeedRepositoryInterface, schedule scheduleservice.ScheduleServiceInterface, fetchTimeoutSeconds int) CalendarServiceInterface {
	return &CalendarService{
		repo:     repo,
		schedule: schedule,
		client:   &http.Client{Timeout: time.Duration(fetchTimeoutSeconds) * time.Second},
	}
}

func (s *CalendarService) AddFeed(ctx context.Context, userID uuid.UUID, req *dto.AddFeedRequest) (*dto.FeedResponse, *errors.AppError) {
	feed := &entity.CalendarFeed{
		UserID:   userID,
		Name:     req.Name,
		URL:      req.URL,
		IsActive: true,
	}

	created, err := s.repo.CreateFeed(ctx, feed)
	if err != nil {
		return nil, &errors.AppError{Code: errors.ErrInternalServer, Message: "Failed to save calendar feed"}
	}

	resp := toFeedResponse(created)
	return &resp, nil
}

func (s *CalendarService) ListFeeds(ctx context.Context, userID uuid.UUID) ([]dto.FeedResponse, *errors.AppError) {
	feeds, err := s.repo.GetFeedsByUserID(ctx, userID)
	if err != nil {
		return nil, &errors.AppError{Code: errors.ErrInternalServer, Message: "Failed to load calendar feeds"}
	}

	out := make([]dto.FeedResponse, 0, len(feeds))
	for i := range feeds {
		out = append(out, toFeedResponse(&feeds[i]))
	}
	return out, nil
}

func (s *CalendarService) RemoveFeed(ctx context.Context, userID uuid.UUID, feedID uuid.UUID) *errors.AppError {
	feed, err := s.repo.GetFeedByID(ctx, feedID)
	if err != nil {
		return &errors.AppError{Code: errors.ErrInternalServer, Message: "Failed to load calendar feed"}
	}
	if feed == nil {
		return &errors.AppError{Code: errors.ErrNotFound, Message: "Calendar feed not found"}
	}
	if feed.UserID != userID {
		return &errors.AppError{Code: errors.ErrForbidden, Message: "Calendar feed belongs to another user"}
	}

	if err := s.repo.DeleteFeed(ctx, feedID, userID); err != nil {
		return &errors.AppError{Code: errors.ErrInternalServer, Message: "Failed to delete calendar feed"}
	}
	return nil
}

// EventsForDay fetches every active feed and collects the day's events.
// A feed that fails to fetch or parse is reported in FailedFeeds; the rest
// of the feeds still contribute.
func (s *CalendarService) EventsForDay(ctx context.Context, userID uuid.UUID, day time.Time) (*dto.DayEventsResponse, *errors.AppError) {
	feeds, err := s.repo.GetFeedsByUserID(ctx, userID)
	if err != nil {
		return nil, &errors.AppError{Code: errors.ErrInternalServer, Message: "Failed to load calendar feeds"}
	}

	resp := &dto.DayEventsResponse{
		Day:    day.Format("2006-01-02"),
		Events: make([]scheduledto.RawEvent, 0),
	}

	for i := range feeds {
		feed := &feeds[i]
		if !feed.IsActive {
			continue
		}

		body, ferr := FetchFeed(s.client, feed.URL)
		if ferr != nil {
			logger.Warn("CalendarService:EventsForDay fetch failed", "feed", feed.Name, "error", ferr.Error())
			resp.FailedFeeds = append(resp.FailedFeeds, feed.Name)
			continue
		}

		events, perr := ParseFeedEvents(body, day)
		if perr != nil {
			logger.Warn("CalendarService:EventsForDay parse failed", "feed", feed.Name, "error", perr.Error())
			resp.FailedFeeds = append(resp.FailedFeeds, feed.Name)
			continue
		}

		resp.Events = append(resp.Events, events...)
		// Bookkeeping only; errors are already logged in the repository.
		_ = s.repo.MarkFetched(ctx, feed.ID)
	}

	return resp, nil
}

// SuggestFromFeeds pulls the day's events from the user's feeds and hands
// them to the planner.
func (s *CalendarService) SuggestFromFeeds(ctx context.Context, userID uuid.UUID, req *dto.SuggestFromFeedsRequest) (*scheduledto.SuggestResponse, *errors.AppError) {
	day := time.Now()
	if req.Day != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Day, time.Local)
		if err == nil {
			day = parsed
		}
	}

	dayEvents, appErr := s.EventsForDay(ctx, userID, day)
	if appErr != nil {
		return nil, appErr
	}

	suggestReq := &scheduledto.SuggestRequest{
		CalendarEvents:  dayEvents.Events,
		UserPreferences: req.UserPreferences,
		Day:             day.Format("2006-01-02"),
	}

	return s.schedule.Suggest(ctx, &userID, suggestReq)
}

func toFeedResponse(feed *entity.CalendarFeed) dto.FeedResponse {
	return dto.FeedResponse{
		ID:            feed.ID.String(),
		Name:          feed.Name,
		URL:           feed.URL,
		IsActive:      feed.IsActive,
		LastFetchedAt: feed.LastFetchedAt,
		CreatedAt:     feed.CreatedAt,
	}
}
