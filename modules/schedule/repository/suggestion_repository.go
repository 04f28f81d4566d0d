package repository

import (
	"context"

	"focusflow-api/core/database"
	"focusflow-api/core/logger"
	"focusflow-api/modules/schedule/entity"

	"github.com/google/uuid"
)

// SuggestionRepository persists planner outcomes (focus_suggestions table)
type SuggestionRepository struct {
	DB database.Database
}

func NewSuggestionRepository(db database.Database) *SuggestionRepository {
	return &SuggestionRepository{DB: db}
}

// SuggestionRepositoryInterface defines the repository contract
type SuggestionRepositoryInterface interface {
	SaveSuggestion(ctx context.Context, s *entity.FocusSuggestion) error
	GetSuggestionsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.FocusSuggestion, error)
	DeleteOlderThanDays(ctx context.Context, days int) error
}

func (r *SuggestionRepository) SaveSuggestion(ctx context.Context, s *entity.FocusSuggestion) error {
	query := `
		INSERT INTO focus_suggestions (user_id, day, start_time, end_time, duration_minutes, score, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	err := r.DB.ExecContext(ctx, query,
		s.UserID, s.Day, s.StartTime, s.EndTime, s.DurationMinutes, s.Score, s.Message)
	if err != nil {
		logger.Error("SuggestionRepository:SaveSuggestion", err)
		return err
	}

	return nil
}

func (r *SuggestionRepository) GetSuggestionsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]entity.FocusSuggestion, error) {
	query := `
		SELECT id, user_id, day, start_time, end_time, duration_minutes, score, message, created_at
		FROM focus_suggestions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var suggestions []entity.FocusSuggestion
	err := r.DB.SelectContext(ctx, &suggestions, query, userID, limit)
	if err != nil {
		logger.Error("SuggestionRepository:GetSuggestionsByUserID", err)
		return nil, err
	}

	return suggestions, nil
}

func (r *SuggestionRepository) DeleteOlderThanDays(ctx context.Context, days int) error {
	query := `DELETE FROM focus_suggestions WHERE created_at < NOW() - make_interval(days => $1)`
	err := r.DB.ExecContext(ctx, query, days)
	if err != nil {
		logger.Error("SuggestionRepository:DeleteOlderThanDays", err)
		return err
	}
	return nil
}
