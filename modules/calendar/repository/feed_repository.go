package repository

import (
	"context"
	"database/sql"
	"errors"

	"focusflow-api/core/database"
	"focusflow-api/core/logger"
	"focusflow-api/modules/calendar/entity"

	"github.com/google/uuid"
)

// FeedRepository persists ICS feed subscriptions (calendar_feeds table)
type FeedRepository struct {
	DB database.Database
}

func NewFeedRepository(db database.Database) *FeedRepository {
	return &FeedRepository{DB: db}
}

// FeedRepositoryInterface defines the repository contract
type FeedRepositoryInterface interface {
	CreateFeed(ctx context.Context, feed *entity.CalendarFeed) (*entity.CalendarFeed, error)
	GetFeedsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CalendarFeed, error)
	GetFeedByID(ctx context.Context, id uuid.UUID) (*entity.CalendarFeed, error)
	DeleteFeed(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	MarkFetched(ctx context.Context, id uuid.UUID) error
}

func (r *FeedRepository) CreateFeed(ctx context.Context, feed *entity.CalendarFeed) (*entity.CalendarFeed, error) {
	query := `
		INSERT INTO calendar_feeds (user_id, name, url, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(ctx, query,
		feed.UserID, feed.Name, feed.URL, feed.IsActive,
	).Scan(&feed.ID, &feed.CreatedAt, &feed.UpdatedAt)
	if err != nil {
		logger.Error("FeedRepository:CreateFeed", err)
		return nil, err
	}

	return feed, nil
}

func (r *FeedRepository) GetFeedsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.CalendarFeed, error) {
	query := `
		SELECT id, user_id, name, url, is_active, last_fetched_at, created_at, updated_at
		FROM calendar_feeds
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	var feeds []entity.CalendarFeed
	err := r.DB.SelectContext(ctx, &feeds, query, userID)
	if err != nil {
		logger.Error("FeedRepository:GetFeedsByUserID", err)
		return nil, err
	}

	return feeds, nil
}

func (r *FeedRepository) GetFeedByID(ctx context.Context, id uuid.UUID) (*entity.CalendarFeed, error) {
	query := `
		SELECT id, user_id, name, url, is_active, last_fetched_at, created_at, updated_at
		FROM calendar_feeds
		WHERE id = $1
	`

	var feed entity.CalendarFeed
	err := r.DB.GetContext(ctx, &feed, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("FeedRepository:GetFeedByID", err)
		return nil, err
	}

	return &feed, nil
}

func (r *FeedRepository) DeleteFeed(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	query := `DELETE FROM calendar_feeds WHERE id = $1 AND user_id = $2`
	err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		logger.Error("FeedRepository:DeleteFeed", err)
		return err
	}
	return nil
}

func (r *FeedRepository) MarkFetched(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE calendar_feeds SET last_fetched_at = NOW(), updated_at = NOW() WHERE id = $1`
	err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("FeedRepository:MarkFetched", err)
		return err
	}
	return nil
}
