package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const MainPetKey = "main_pet"

type PetRepo struct {
	db *sql.DB
}

func NewPetRepo(db *sql.DB) *PetRepo {
	return &PetRepo{db: db}
}

// Get loads a pet profile. Columns that are NULL (rows written by an older
// schema) fall back to their documented defaults individually.
func (r *PetRepo) Get(ctx context.Context, key string) (*PetProfile, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT key, exp, level, stage, name, total_tasks, tasks_today, last_task_date,
			coins, litter_picked, water_saved, co2_reduced, items_recycled,
			consecutive_days, hats_collected, first_task_done, exp_per_level
		FROM pet WHERE key = ?
	`, key)

	var (
		p         PetProfile
		exp       sql.NullFloat64
		level     sql.NullInt64
		stage     sql.NullString
		name      sql.NullString
		total     sql.NullInt64
		today     sql.NullInt64
		lastDate  sql.NullString
		coins     sql.NullInt64
		litter    sql.NullFloat64
		water     sql.NullFloat64
		co2       sql.NullFloat64
		recycled  sql.NullFloat64
		consec    sql.NullInt64
		hats      sql.NullInt64
		firstTask sql.NullInt64
		perLevel  sql.NullFloat64
	)
	err := row.Scan(&p.Key, &exp, &level, &stage, &name, &total, &today, &lastDate,
		&coins, &litter, &water, &co2, &recycled, &consec, &hats, &firstTask, &perLevel)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("pet get: %w", err)
	}

	d := DefaultProfile(key)
	p.Exp = d.Exp
	if exp.Valid {
		p.Exp = exp.Float64
	}
	p.Level = d.Level
	if level.Valid {
		p.Level = int(level.Int64)
	}
	p.Stage = d.Stage
	if stage.Valid && stage.String != "" {
		p.Stage = stage.String
	}
	p.Name = d.Name
	if name.Valid && name.String != "" {
		p.Name = name.String
	}
	if total.Valid {
		p.TotalTasks = int(total.Int64)
	}
	if today.Valid {
		p.TasksToday = int(today.Int64)
	}
	if lastDate.Valid {
		p.LastTaskDate = lastDate.String
	}
	p.Coins = d.Coins
	if coins.Valid {
		p.Coins = int(coins.Int64)
	}
	if litter.Valid {
		p.LitterPicked = litter.Float64
	}
	if water.Valid {
		p.WaterSaved = water.Float64
	}
	if co2.Valid {
		p.CO2Reduced = co2.Float64
	}
	if recycled.Valid {
		p.ItemsRecycled = recycled.Float64
	}
	if consec.Valid {
		p.ConsecutiveDays = int(consec.Int64)
	}
	if hats.Valid {
		p.HatsCollected = int(hats.Int64)
	}
	p.FirstTaskDone = firstTask.Valid && firstTask.Int64 != 0
	p.ExpPerLevel = d.ExpPerLevel
	if perLevel.Valid && perLevel.Float64 > 0 {
		p.ExpPerLevel = perLevel.Float64
	}
	return &p, nil
}

func (r *PetRepo) GetOrCreateMain(ctx context.Context) (*PetProfile, error) {
	p, err := r.Get(ctx, MainPetKey)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return p, nil
	}

	d := DefaultProfile(MainPetKey)
	if err := r.Update(ctx, d); err != nil {
		return nil, err
	}
	return r.Get(ctx, MainPetKey)
}

// Update writes the full profile under its key (insert or replace).
func (r *PetRepo) Update(ctx context.Context, p *PetProfile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet (key, exp, level, stage, name, total_tasks, tasks_today, last_task_date,
			coins, litter_picked, water_saved, co2_reduced, items_recycled,
			consecutive_days, hats_collected, first_task_done, exp_per_level)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			exp = excluded.exp,
			level = excluded.level,
			stage = excluded.stage,
			name = excluded.name,
			total_tasks = excluded.total_tasks,
			tasks_today = excluded.tasks_today,
			last_task_date = excluded.last_task_date,
			coins = excluded.coins,
			litter_picked = excluded.litter_picked,
			water_saved = excluded.water_saved,
			co2_reduced = excluded.co2_reduced,
			items_recycled = excluded.items_recycled,
			consecutive_days = excluded.consecutive_days,
			hats_collected = excluded.hats_collected,
			first_task_done = excluded.first_task_done,
			exp_per_level = excluded.exp_per_level
	`, p.Key, p.Exp, p.Level, p.Stage, p.Name, p.TotalTasks, p.TasksToday, p.LastTaskDate,
		p.Coins, p.LitterPicked, p.WaterSaved, p.CO2Reduced, p.ItemsRecycled,
		p.ConsecutiveDays, p.HatsCollected, boolToInt(p.FirstTaskDone), p.ExpPerLevel)
	if err != nil {
		return fmt.Errorf("pet update: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
