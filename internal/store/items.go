package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/janvolk/lostfound/internal/model"
)

const itemColumns = `id, item_type, item_name, description, location, contact_info, image_path, tag, created_at`

// InsertItem inserts a fully populated report and returns the stored item.
func InsertItem(ctx context.Context, db *sql.DB, item *model.Item) (*model.Item, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		`INSERT INTO items (item_type, item_name, description, location, contact_info, image_path, tag)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		item.ItemType, item.ItemName, item.Description, item.Location,
		item.ContactInfo, item.ImageURL, item.Tag,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("inserting item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns the item with the given id, or nil if it doesn't exist.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id,
	)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all items ordered by creation time, newest first. A
// non-empty search filters to items whose name or location contains the
// search string, case-insensitively.
func ListItems(ctx context.Context, db *sql.DB, search string) ([]model.Item, error) {
	var rows *sql.Rows
	var err error

	if search != "" {
		pattern := "%" + search + "%"
		rows, err = db.QueryContext(ctx,
			`SELECT `+itemColumns+` FROM items
			 WHERE LOWER(item_name) LIKE LOWER($1) OR LOWER(location) LIKE LOWER($2)
			 ORDER BY created_at DESC, id DESC`,
			pattern, pattern,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT `+itemColumns+` FROM items ORDER BY created_at DESC, id DESC`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (*model.Item, error) {
	item := &model.Item{}
	var description, imagePath, tag sql.NullString
	err := s.Scan(&item.ID, &item.ItemType, &item.ItemName, &description,
		&item.Location, &item.ContactInfo, &imagePath, &tag, &item.CreatedAt)
	if err != nil {
		return nil, err
	}
	item.Description = description.String
	item.ImageURL = imagePath.String
	item.Tag = tag.String
	return item, nil
}
