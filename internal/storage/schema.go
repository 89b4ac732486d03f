package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pet (
			key TEXT PRIMARY KEY,
			exp REAL DEFAULT 0,
			level INTEGER DEFAULT 1,
			stage TEXT DEFAULT 'egg',
			name TEXT DEFAULT 'EcoBuddy',
			total_tasks INTEGER DEFAULT 0,
			tasks_today INTEGER DEFAULT 0,
			last_task_date TEXT DEFAULT '',
			coins INTEGER DEFAULT 250,
			consecutive_days INTEGER DEFAULT 0,
			hats_collected INTEGER DEFAULT 0,
			first_task_done INTEGER DEFAULT 0,
			exp_per_level REAL DEFAULT 100
		);`,
		// Needed for the status history view and auditing awarded EXP/coins.
		`CREATE TABLE IF NOT EXISTS activity (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			exp_awarded REAL NOT NULL,
			bonus_percent INTEGER NOT NULL,
			coins_awarded INTEGER NOT NULL,
			completed_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS purchases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			item_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			price INTEGER NOT NULL,
			purchased_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_activity_completed_at ON activity(completed_at);`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_item_id ON purchases(item_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Impact counters were added after the first release; add them to existing
	// pet tables (ignore if already present). Rows predating a column come back
	// with its default, so old databases load field-by-field rather than failing.
	alterStmts := []string{
		`ALTER TABLE pet ADD COLUMN litter_picked REAL DEFAULT 0;`,
		`ALTER TABLE pet ADD COLUMN water_saved REAL DEFAULT 0;`,
		`ALTER TABLE pet ADD COLUMN co2_reduced REAL DEFAULT 0;`,
		`ALTER TABLE pet ADD COLUMN items_recycled REAL DEFAULT 0;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
