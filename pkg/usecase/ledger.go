package usecase

import (
	"context"
	"database/sql"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/interfaces"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"

	_ "modernc.org/sqlite"
)

//go:embed ledger.sql
var ledgerSchema string

type sqliteLedger struct {
	db *sql.DB
}

// OpenLedger opens (creating if needed) the SQLite ledger at path. A leading
// "~/" is expanded to the home directory.
func OpenLedger(ctx context.Context, path string) (interfaces.Ledger, error) {
	path = expandPath(path)
	if strings.TrimSpace(path) == "" {
		return nil, goerr.Wrap(domain.ErrLedger, "ledger path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, domain.Wrap(domain.ErrLedger, err, "failed to create ledger directory",
			goerr.V("path", path),
		)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, domain.Wrap(domain.ErrLedger, err, "failed to open ledger",
			goerr.V("path", path),
		)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	_, _ = db.ExecContext(ctx, "PRAGMA busy_timeout = 5000")
	if _, err := db.ExecContext(ctx, ledgerSchema); err != nil {
		_ = db.Close()
		return nil, domain.Wrap(domain.ErrLedger, err, "failed to migrate ledger",
			goerr.V("path", path),
		)
	}

	return &sqliteLedger{db: db}, nil
}

func (l *sqliteLedger) Announced(ctx context.Context, release model.Release) (bool, error) {
	var n int
	err := l.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM announcements WHERE project = ? AND version = ?`,
		release.Project, release.Version,
	).Scan(&n)
	if err != nil {
		return false, domain.Wrap(domain.ErrLedger, err, "failed to query ledger")
	}
	return n > 0, nil
}

// Record stores a delivered announcement, replacing an earlier record of the
// same release.
func (l *sqliteLedger) Record(ctx context.Context, record *model.ReleaseRecord) error {
	_, err := l.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO announcements (project, version, delivery_id, segments, delivered_at)
		 VALUES (?, ?, ?, ?, ?)`,
		record.Project, record.Version, record.DeliveryID, record.Segments, record.DeliveredAt.UnixMilli(),
	)
	if err != nil {
		return domain.Wrap(domain.ErrLedger, err, "failed to record announcement",
			goerr.V("project", record.Project),
			goerr.V("version", record.Version),
		)
	}
	return nil
}

// List returns the most recent records first. limit <= 0 returns all of them.
func (l *sqliteLedger) List(ctx context.Context, limit int) ([]*model.ReleaseRecord, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT project, version, delivery_id, segments, delivered_at
		 FROM announcements ORDER BY delivered_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, domain.Wrap(domain.ErrLedger, err, "failed to list ledger")
	}
	defer rows.Close()

	var records []*model.ReleaseRecord
	for rows.Next() {
		var (
			record      model.ReleaseRecord
			deliveredAt int64
		)
		if err := rows.Scan(&record.Project, &record.Version, &record.DeliveryID, &record.Segments, &deliveredAt); err != nil {
			return nil, domain.Wrap(domain.ErrLedger, err, "failed to scan ledger row")
		}
		record.DeliveredAt = time.UnixMilli(deliveredAt)
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Wrap(domain.ErrLedger, err, "failed to read ledger")
	}

	return records, nil
}

func (l *sqliteLedger) Close() error {
	if l == nil || l.db == nil {
		return nil
	}
	return l.db.Close()
}

// expandPath expands a leading ~/ to the user's home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(homeDir, path[2:])
}
