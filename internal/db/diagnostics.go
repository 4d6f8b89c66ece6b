package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// TableCount is the row count of one managed table; Present is false when the table is missing.
type TableCount struct {
	Table   string
	Rows    int64
	Present bool
}

// Diagnostics summarises a connectivity check against the database file.
type Diagnostics struct {
	Path          string
	SQLiteVersion string
	Latency       time.Duration
	Tables        []TableCount
}

// ManagedTables lists the tables created by Migrate, in display order.
var ManagedTables = []string{
	"users",
	"site_settings",
	"home_pages",
	"my_stories",
	"insights_pages",
	"services",
	"programs",
	"workshops",
	"testimonials",
	"blog_posts",
	"contacts",
}

// Diagnose opens a separate connection to the database at path, runs a trivial query and
// counts rows of each managed table. It never creates or migrates tables.
func Diagnose(ctx context.Context, path string) (*Diagnostics, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = DefaultPath
	}

	conn, err := sqlx.ConnectContext(ctx, "sqlite3", DSN(trimmed))
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	defer conn.Close()

	report := &Diagnostics{Path: trimmed}

	started := time.Now()
	var one int
	if err := conn.GetContext(ctx, &one, "SELECT 1"); err != nil {
		return nil, fmt.Errorf("probe database: %w", err)
	}
	report.Latency = time.Since(started)

	if err := conn.GetContext(ctx, &report.SQLiteVersion, "SELECT sqlite_version()"); err != nil {
		return nil, fmt.Errorf("read sqlite version: %w", err)
	}

	var existing []string
	if err := conn.SelectContext(ctx, &existing, "SELECT name FROM sqlite_master WHERE type = 'table'"); err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	present := make(map[string]bool, len(existing))
	for _, name := range existing {
		present[name] = true
	}

	for _, table := range ManagedTables {
		count := TableCount{Table: table, Present: present[table]}
		if count.Present {
			// Table names come from ManagedTables, never from input.
			if err := conn.GetContext(ctx, &count.Rows, "SELECT COUNT(*) FROM "+table); err != nil {
				return nil, fmt.Errorf("count %s: %w", table, err)
			}
		}
		report.Tables = append(report.Tables, count)
	}

	return report, nil
}
