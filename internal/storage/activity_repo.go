package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type ActivityRepo struct {
	db *sql.DB
}

func NewActivityRepo(db *sql.DB) *ActivityRepo {
	return &ActivityRepo{db: db}
}

func (r *ActivityRepo) Insert(ctx context.Context, taskID int, expAwarded float64, bonusPercent int, coinsAwarded int, completedAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO activity (task_id, exp_awarded, bonus_percent, coins_awarded, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`, taskID, expAwarded, bonusPercent, coinsAwarded, completedAt)
	if err != nil {
		return 0, fmt.Errorf("activity insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("activity last insert id: %w", err)
	}
	return id, nil
}

func (r *ActivityRepo) ListRecent(ctx context.Context, limit int) ([]ActivityEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, task_id, exp_awarded, bonus_percent, coins_awarded, completed_at
		FROM activity
		ORDER BY completed_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("activity list: %w", err)
	}
	defer rows.Close()

	var out []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		if err := rows.Scan(&e.ID, &e.TaskID, &e.ExpAwarded, &e.BonusPercent, &e.CoinsAwarded, &e.CompletedAt); err != nil {
			return nil, fmt.Errorf("activity scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity rows: %w", err)
	}
	return out, nil
}

func (r *ActivityRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM activity WHERE completed_at >= ?
	`, since)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("activity count: %w", err)
	}
	return n, nil
}
