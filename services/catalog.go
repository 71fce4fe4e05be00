package services

import (
	"context"
	"fmt"

	"menu-telegram/db"
	"menu-telegram/models"
)

// EnsureCategory creates the category on first sight and returns its id.
// Position is assigned in first-seen order and never changes afterwards.
func EnsureCategory(ctx context.Context, name string) (int64, error) {
	if name == "" {
		return 0, fmt.Errorf("category name is required")
	}
	var id int64
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO categories (name, position)
		VALUES ($1, (SELECT COALESCE(MAX(position), 0) + 1 FROM categories))
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`,
		name,
	).Scan(&id)
	return id, err
}

func ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, position FROM categories
		ORDER BY position`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cats []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Position); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// ItemExists is the exact-name duplicate pre-check used before every insert.
func ItemExists(ctx context.Context, category, name string) (bool, error) {
	var count int
	err := db.Pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM menu_items i
		JOIN categories c ON c.id = i.category_id
		WHERE c.name = $1 AND i.item_name = $2`,
		category, name,
	).Scan(&count)
	return count > 0, err
}

// InsertItemIfAbsent is a no-op when the name already exists in the category.
// The check and the insert are separate statements; with a single interactive
// user that gap is benign.
func InsertItemIfAbsent(ctx context.Context, category, name string, price models.Money) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	exists, err := ItemExists(ctx, category, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = db.Pool.Exec(ctx, `
		INSERT INTO menu_items (category_id, item_name, price)
		SELECT id, $2, $3 FROM categories WHERE name = $1`,
		category, name, int64(price),
	)
	return err
}

func ListItems(ctx context.Context, category string) ([]models.MenuItem, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT i.id, c.name, i.item_name, i.price
		FROM menu_items i
		JOIN categories c ON c.id = i.category_id
		WHERE c.name = $1
		ORDER BY i.id`,
		category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		var price int64
		if err := rows.Scan(&it.ID, &it.Category, &it.Name, &price); err != nil {
			return nil, err
		}
		it.Price = models.Money(price)
		items = append(items, it)
	}
	return items, rows.Err()
}

// DeleteItem removes every row matching the name exactly within the category.
func DeleteItem(ctx context.Context, category, name string) error {
	_, err := db.Pool.Exec(ctx, `
		DELETE FROM menu_items i
		USING categories c
		WHERE c.id = i.category_id AND c.name = $1 AND i.item_name = $2`,
		category, name,
	)
	return err
}
