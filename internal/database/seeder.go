package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fatih/color"

	"github.com/Lumos-Labs-HQ/stockforge/internal/dataset"
)

const defaultBatchSize = 100

type SeedOptions struct {
	// Truncate clears every target table, children first, before inserting.
	Truncate bool
	Batch    int
}

// Seed inserts the whole dataset inside a single transaction, collections in
// dependency order so every foreign key target exists before its referrers.
func (c *Connection) Seed(ctx context.Context, ds *dataset.Dataset, opts SeedOptions) error {
	collections := ds.Collections()

	batchSize := opts.Batch
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	color.Cyan("🌱 Seeding %d tables (%d rows)...", len(collections), ds.TotalRows())

	if opts.Truncate {
		if err := c.truncate(ctx, collections); err != nil {
			return fmt.Errorf("failed to truncate tables: %w", err)
		}
	}

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for _, collection := range collections {
		if err := c.insertCollection(ctx, tx, collection, batchSize); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to seed table %s: %w", collection.Name, err)
		}
		color.Green("  ✅ %s: %d rows", collection.Name, len(collection.Rows))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	color.Green("\n✅ Database seeding completed successfully!")
	return nil
}

// truncate clears the tables in reverse dependency order, so child rows go
// before the rows they reference.
func (c *Connection) truncate(ctx context.Context, collections []dataset.Collection) error {
	for i := len(collections) - 1; i >= 0; i-- {
		name := collections[i].Name
		if _, err := c.DB.ExecContext(ctx, "DELETE FROM "+name); err != nil {
			return fmt.Errorf("table %s: %w", name, err)
		}
	}
	color.Yellow("🧹 Cleared %d tables", len(collections))
	return nil
}

func (c *Connection) insertCollection(ctx context.Context, tx *sql.Tx, collection dataset.Collection, batchSize int) error {
	if len(collection.Rows) == 0 {
		return nil
	}

	columns, err := dataset.Columns(collection.Rows[0])
	if err != nil {
		return err
	}

	builder := c.qb.Insert(collection.Name).Columns(columns...)
	pending := 0
	for i, row := range collection.Rows {
		values, err := dataset.Values(row)
		if err != nil {
			return err
		}
		builder = builder.Values(values...)
		pending++

		if pending >= batchSize || i == len(collection.Rows)-1 {
			if _, err := builder.RunWith(tx).ExecContext(ctx); err != nil {
				return err
			}
			builder = c.qb.Insert(collection.Name).Columns(columns...)
			pending = 0
		}
	}
	return nil
}
