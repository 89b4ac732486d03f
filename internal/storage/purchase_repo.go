package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type PurchaseRepo struct {
	db *sql.DB
}

func NewPurchaseRepo(db *sql.DB) *PurchaseRepo {
	return &PurchaseRepo{db: db}
}

func (r *PurchaseRepo) Insert(ctx context.Context, itemID int, name string, price int, purchasedAt time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO purchases (item_id, name, price, purchased_at)
		VALUES (?, ?, ?, ?)
	`, itemID, name, price, purchasedAt)
	if err != nil {
		return 0, fmt.Errorf("purchase insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("purchase last insert id: %w", err)
	}
	return id, nil
}

func (r *PurchaseRepo) ListRecent(ctx context.Context, limit int) ([]Purchase, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, item_id, name, price, purchased_at
		FROM purchases
		ORDER BY purchased_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("purchase list: %w", err)
	}
	defer rows.Close()

	var out []Purchase
	for rows.Next() {
		var p Purchase
		if err := rows.Scan(&p.ID, &p.ItemID, &p.Name, &p.Price, &p.PurchasedAt); err != nil {
			return nil, fmt.Errorf("purchase scan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("purchase rows: %w", err)
	}
	return out, nil
}

func (r *PurchaseRepo) CountByItem(ctx context.Context, itemID int) (int, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM purchases WHERE item_id = ?
	`, itemID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("purchase count: %w", err)
	}
	return n, nil
}
