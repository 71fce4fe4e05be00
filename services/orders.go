package services

import (
	"context"
	"encoding/json"
	"fmt"

	"menu-telegram/db"
	"menu-telegram/models"
)

// SaveOrder archives a confirmed order. The archive is informational; the
// ledger file stays the system of record for the sales report.
func SaveOrder(ctx context.Context, input models.SaveOrderInput, entries []CartEntry) (int64, error) {
	itemsJSON, err := json.Marshal(entries)
	if err != nil {
		return 0, fmt.Errorf("marshal order items: %w", err)
	}

	var id int64
	err = db.Pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, chat_id, items, items_count, items_total)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		input.UserID, input.ChatID, itemsJSON, input.ItemsCount, int64(input.ItemsTotal),
	).Scan(&id)
	return id, err
}

func GetDailyStats(ctx context.Context, date string) (*models.DailyStats, error) {
	var s models.DailyStats
	var revenue int64
	err := db.Pool.QueryRow(ctx, `
		SELECT
			COUNT(*)::int,
			COALESCE(SUM(items_count), 0)::int,
			COALESCE(SUM(items_total), 0)::bigint
		FROM orders
		WHERE created_at::date = $1::date`,
		date,
	).Scan(&s.OrdersCount, &s.ItemsCount, &revenue)
	if err != nil {
		return nil, err
	}
	s.ItemsRevenue = models.Money(revenue)
	return &s, nil
}
