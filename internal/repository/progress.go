package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/templui/smartgoals/internal/model"
)

type ProgressRepository interface {
	Upsert(ctx context.Context, progress *model.Progress) error
	ByGoal(ctx context.Context, goalID string) ([]*model.Progress, error)
}

type progressRepository struct {
	db *sqlx.DB
}

func NewProgressRepository(db *sqlx.DB) ProgressRepository {
	return &progressRepository{db: db}
}

// Upsert writes the day's record, replacing the completed flag if one already
// exists for (user_id, goal_id, date). The original id and created_at are kept.
func (r *progressRepository) Upsert(ctx context.Context, progress *model.Progress) error {
	query := `INSERT INTO goal_progress (id, user_id, goal_id, date, completed, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          ON CONFLICT (user_id, goal_id, date)
	          DO UPDATE SET completed = excluded.completed, updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		progress.ID,
		progress.UserID,
		progress.GoalID,
		progress.Date,
		progress.Completed,
		progress.CreatedAt,
		progress.UpdatedAt,
	)

	return err
}

func (r *progressRepository) ByGoal(ctx context.Context, goalID string) ([]*model.Progress, error) {
	var progress []*model.Progress
	query := `SELECT * FROM goal_progress WHERE goal_id = $1 ORDER BY date DESC`

	err := r.db.SelectContext(ctx, &progress, query, goalID)
	if err != nil {
		return nil, err
	}

	return progress, nil
}
