package repository

import (
	"context"
	"database/sql"

	"focusflow-api/core/database"
	"focusflow-api/core/logger"
	"focusflow-api/modules/session/entity"

	"github.com/google/uuid"
)

// SessionRepository handles focus session database operations
type SessionRepository struct {
	DB database.Database
}

func NewSessionRepository(db database.Database) *SessionRepository {
	return &SessionRepository{DB: db}
}

// SessionRepositoryInterface defines the repository contract
type SessionRepositoryInterface interface {
	CreateSession(ctx context.Context, session *entity.FocusSession) (*entity.FocusSession, error)
	GetSessionByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error)
	GetSessionsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.FocusSession, error)
	UpdateSession(ctx context.Context, session *entity.FocusSession) error
	AbandonStaleSessions(ctx context.Context, maxAgeHours int) (int64, error)
}

func (r *SessionRepository) CreateSession(ctx context.Context, session *entity.FocusSession) (*entity.FocusSession, error) {
	query := `
		INSERT INTO focus_sessions (user_id, title, window_start, window_end, status, distraction_count, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, title, window_start, window_end, status, distraction_count,
		          started_at, ended_at, created_at
	`

	var created entity.FocusSession
	err := r.DB.GetContext(ctx, &created, query,
		session.UserID, session.Title, session.WindowStart, session.WindowEnd,
		session.Status, session.DistractionCount, session.StartedAt)
	if err != nil {
		logger.Error("SessionRepository:CreateSession", err)
		return nil, err
	}

	return &created, nil
}

func (r *SessionRepository) GetSessionByID(ctx context.Context, id uuid.UUID) (*entity.FocusSession, error) {
	query := `
		SELECT id, user_id, title, window_start, window_end, status, distraction_count,
		       started_at, ended_at, created_at
		FROM focus_sessions WHERE id = $1
	`

	var session entity.FocusSession
	err := r.DB.GetContext(ctx, &session, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("SessionRepository:GetSessionByID", err)
		return nil, err
	}

	return &session, nil
}

func (r *SessionRepository) GetSessionsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.FocusSession, error) {
	query := `
		SELECT id, user_id, title, window_start, window_end, status, distraction_count,
		       started_at, ended_at, created_at
		FROM focus_sessions
		WHERE user_id = $1
		ORDER BY started_at DESC
		LIMIT $2
	`

	var sessions []entity.FocusSession
	err := r.DB.SelectContext(ctx, &sessions, query, userID, limit)
	if err != nil {
		logger.Error("SessionRepository:GetSessionsByUserID", err)
		return nil, err
	}

	return sessions, nil
}

func (r *SessionRepository) UpdateSession(ctx context.Context, session *entity.FocusSession) error {
	query := `
		UPDATE focus_sessions
		SET status = $2, distraction_count = $3, ended_at = $4
		WHERE id = $1
	`

	err := r.DB.ExecContext(ctx, query,
		session.ID, session.Status, session.DistractionCount, session.EndedAt)
	if err != nil {
		logger.Error("SessionRepository:UpdateSession", err)
		return err
	}

	return nil
}

// AbandonStaleSessions flips in_progress sessions older than maxAgeHours to
// abandoned. Used by the hourly cron sweep.
func (r *SessionRepository) AbandonStaleSessions(ctx context.Context, maxAgeHours int) (int64, error) {
	query := `
		UPDATE focus_sessions
		SET status = 'abandoned', ended_at = NOW()
		WHERE status = 'in_progress'
		AND started_at < NOW() - make_interval(hours => $1)
	`

	result, err := r.DB.SQLx().ExecContext(ctx, query, maxAgeHours)
	if err != nil {
		logger.Error("SessionRepository:AbandonStaleSessions", err)
		return 0, err
	}

	affected, _ := result.RowsAffected()
	return affected, nil
}
