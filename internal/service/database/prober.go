// Package database probes the optional external Postgres dependency for the
// diagnostic endpoint. The service itself never stores anything there.
package database

import (
	"context"
	"database/sql"

	"github.com/kapu/portfolio-backend-go/internal/constants"
	"github.com/kapu/portfolio-backend-go/internal/util"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// State classifies the outcome of a capability probe.
type State int

const (
	// StateUnavailable means no DATABASE_URL is configured.
	StateUnavailable State = iota
	// StateAvailableNotInitialized means a URL is configured but no live
	// connection could be established.
	StateAvailableNotInitialized
	// StateConnected means the database answered and its tables were listed.
	StateConnected
	// StateConnectedWithError means the database answered but listing its
	// tables failed; Detail carries the truncated error text.
	StateConnectedWithError
)

// Status is the structured result of a probe. Probe never fails outright;
// every error condition collapses into one of the four states.
type Status struct {
	State  State
	Detail string
	Tables []string
}

type Prober struct {
	url    string
	name   string
	logger *zap.Logger
}

func NewProber(url, name string, logger *zap.Logger) *Prober {
	return &Prober{url: url, name: name, logger: logger}
}

// Probe opens a short-lived connection, pings it, and lists up to ten public
// tables. Connections are not pooled across probes: the endpoint is a
// diagnostic, not a data path.
func (p *Prober) Probe(ctx context.Context) Status {
	if p.url == "" {
		return Status{State: StateUnavailable}
	}

	db, err := sql.Open("postgres", p.url)
	if err != nil {
		p.logger.Warn("Database probe: open failed", zap.Error(err))
		return Status{State: StateAvailableNotInitialized, Detail: err.Error()}
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, constants.DatabaseProbe.PingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		p.logger.Warn("Database probe: ping failed", zap.Error(err))
		return Status{State: StateAvailableNotInitialized, Detail: err.Error()}
	}

	tables, err := p.listTables(ctx, db)
	if err != nil {
		p.logger.Warn("Database probe: table listing failed", zap.Error(err))
		return Status{
			State:  StateConnectedWithError,
			Detail: util.TruncateString(err.Error(), constants.DatabaseProbe.MaxDetailLen),
		}
	}

	p.logger.Debug("Database probe succeeded",
		zap.String("database", p.name),
		zap.Int("tables", len(tables)),
	)
	return Status{State: StateConnected, Tables: tables}
}

func (p *Prober) listTables(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' ORDER BY table_name LIMIT $1`,
		constants.DatabaseProbe.MaxTables)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tables := make([]string, 0, constants.DatabaseProbe.MaxTables)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}
