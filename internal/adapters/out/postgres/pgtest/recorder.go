package pgtest

import (
	"sync"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// StatementRecorder captures the SQL of queries built on a dry-run connection.
// Nothing reaches a server, so it needs no container.
type StatementRecorder struct {
	DB *gorm.DB

	mu         sync.Mutex
	statements []string
}

// NewStatementRecorder opens a dry-run postgres session and records every query it builds.
func NewStatementRecorder() (*StatementRecorder, error) {
	db, err := gorm.Open(
		gormpostgres.Open("host=127.0.0.1 port=1 user=dispatch dbname=dispatch sslmode=disable"),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true, Logger: logger.Discard},
	)
	if err != nil {
		return nil, err
	}

	r := &StatementRecorder{DB: db}
	err = db.Callback().Query().After("gorm:query").Register("pgtest:record", func(tx *gorm.DB) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.statements = append(r.statements, tx.Statement.SQL.String())
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Statements returns the recorded SQL in build order.
func (r *StatementRecorder) Statements() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.statements))
	copy(out, r.statements)
	return out
}
