package service

import (
	"context"
	"time"

	"focusflow-api/core/errors"
	"focusflow-api/core/jobs"
	"focusflow-api/core/logger"
	"focusflow-api/modules/session/dto"
	"focusflow-api/modules/session/entity"
	"focusflow-api/modules/session/repository"

	"github.com/google/uuid"
)

// SessionService handles focus session business logic
type SessionService struct {
	repo  repository.SessionRepositoryInterface
	queue *jobs.Queue
}

// SessionServiceInterface defines the service contract
type SessionServiceInterface interface {
	StartSession(ctx context.Context, userID uuid.UUID, req *dto.StartSessionRequest) (*dto.SessionResponse, *errors.AppError)
	CompleteSession(ctx context.Context, sessionID, userID uuid.UUID, req *dto.CompleteSessionRequest) (*dto.SessionResponse, *errors.AppError)
	AbandonSession(ctx context.Context, sessionID, userID uuid.UUID) (*dto.SessionResponse, *errors.AppError)
	GetMySessions(ctx context.Context, userID uuid.UUID) ([]dto.SessionResponse, *errors.AppError)
	Summarize(ctx context.Context, sessionID, userID uuid.UUID) (*dto.SessionSummary, *errors.AppError)
	SweepStale(ctx context.Context, maxAgeHours int) error
}

func NewSessionService(repo repository.SessionRepositoryInterface, queue *jobs.Queue) SessionServiceInterface {
	return &SessionService{
		repo:  repo,
		queue: queue,
	}
}

// StartSession opens a new in-progress session for the given window.
func (s *SessionService) StartSession(ctx context.Context, userID uuid.UUID, req *dto.StartSessionRequest) (*dto.SessionResponse, *errors.AppError) {
	windowStart, err := time.Parse(time.RFC3339, req.WindowStart)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid window_start format", err)
	}
	windowEnd, err := time.Parse(time.RFC3339, req.WindowEnd)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid window_end format", err)
	}
	if !windowEnd.After(windowStart) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "window_end must be after window_start", nil)
	}

	session := &entity.FocusSession{
		UserID:      userID,
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		Status:      entity.SessionStatusInProgress,
		StartedAt:   time.Now(),
	}
	if req.Title != "" {
		session.Title = &req.Title
	}

	created, err := s.repo.CreateSession(ctx, session)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to start session", err)
	}

	return dto.ToSessionResponse(created), nil
}

// CompleteSession finishes an in-progress session.
func (s *SessionService) CompleteSession(ctx context.Context, sessionID, userID uuid.UUID, req *dto.CompleteSessionRequest) (*dto.SessionResponse, *errors.AppError) {
	session, appErr := s.getOwnedSession(ctx, sessionID, userID)
	if appErr != nil {
		return nil, appErr
	}

	if session.Status != entity.SessionStatusInProgress {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Session is not in progress", nil)
	}

	now := time.Now()
	session.Status = entity.SessionStatusCompleted
	session.DistractionCount = req.DistractionCount
	session.EndedAt = &now

	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to complete session", err)
	}

	return dto.ToSessionResponse(session), nil
}

// AbandonSession marks an in-progress session abandoned.
func (s *SessionService) AbandonSession(ctx context.Context, sessionID, userID uuid.UUID) (*dto.SessionResponse, *errors.AppError) {
	session, appErr := s.getOwnedSession(ctx, sessionID, userID)
	if appErr != nil {
		return nil, appErr
	}

	if session.Status != entity.SessionStatusInProgress {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Session is not in progress", nil)
	}

	now := time.Now()
	session.Status = entity.SessionStatusAbandoned
	session.EndedAt = &now

	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to abandon session", err)
	}

	return dto.ToSessionResponse(session), nil
}

// GetMySessions lists the caller's recent sessions.
func (s *SessionService) GetMySessions(ctx context.Context, userID uuid.UUID) ([]dto.SessionResponse, *errors.AppError) {
	sessions, err := s.repo.GetSessionsByUserID(ctx, userID, 50)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load sessions", err)
	}

	result := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *dto.ToSessionResponse(&sessions[i]))
	}
	return result, nil
}

// Summarize produces the heuristic summary for a completed session and
// enqueues its archival. Enqueue failures are logged, not surfaced.
func (s *SessionService) Summarize(ctx context.Context, sessionID, userID uuid.UUID) (*dto.SessionSummary, *errors.AppError) {
	session, appErr := s.getOwnedSession(ctx, sessionID, userID)
	if appErr != nil {
		return nil, appErr
	}

	if session.Status == entity.SessionStatusInProgress {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Session is still in progress", nil)
	}

	summary := ComputeSummary(session)

	if s.queue != nil {
		task, err := NewArchiveTask(userID.String(), summary)
		if err == nil {
			if err := s.queue.Enqueue(ctx, task); err != nil {
				logger.Warn("SessionService:Summarize:Enqueue", "session_id", sessionID, "error", err)
			}
		}
	}

	return summary, nil
}

// SweepStale abandons in-progress sessions past the configured max age.
func (s *SessionService) SweepStale(ctx context.Context, maxAgeHours int) error {
	affected, err := s.repo.AbandonStaleSessions(ctx, maxAgeHours)
	if err != nil {
		return err
	}
	if affected > 0 {
		logger.Info("SessionService:SweepStale", "abandoned", affected)
	}
	return nil
}

func (s *SessionService) getOwnedSession(ctx context.Context, sessionID, userID uuid.UUID) (*entity.FocusSession, *errors.AppError) {
	session, err := s.repo.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get session", err)
	}
	if session == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Session not found", nil)
	}
	if session.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not authorized", nil)
	}
	return session, nil
}
