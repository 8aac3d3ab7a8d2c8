package database

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"socialecho/internal/observability"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
)

func TestQueryOperationAndTable(t *testing.T) {
	tests := []struct {
		name      string
		sql       string
		operation string
		table     string
	}{
		{
			name:      "select",
			sql:       `SELECT * FROM "communities" WHERE id = 1`,
			operation: "select",
			table:     "communities",
		},
		{
			name:      "insert",
			sql:       `INSERT INTO community_moderators (community_id,user_id) VALUES (1,2)`,
			operation: "insert",
			table:     "community_moderators",
		},
		{
			name:      "update",
			sql:       `UPDATE "communities" SET moderator_count = 2 WHERE id = 1`,
			operation: "update",
			table:     "communities",
		},
		{
			name:      "delete",
			sql:       `DELETE FROM comments WHERE post_id IN (SELECT id FROM posts)`,
			operation: "delete",
			table:     "comments",
		},
		{
			name:      "empty",
			sql:       "",
			operation: "unknown",
			table:     "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operation, table := queryOperationAndTable(tt.sql)
			assert.Equal(t, tt.operation, operation)
			assert.Equal(t, tt.table, table)
		})
	}
}

func TestTraceRecordsQueryLatency(t *testing.T) {
	gormLogger := &CustomGormLogger{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config: logger.Config{LogLevel: logger.Silent},
	}

	before := testutil.CollectAndCount(observability.DatabaseQueryLatency)

	begin := time.Now().Add(-5 * time.Millisecond)
	gormLogger.Trace(context.Background(), begin, func() (string, int64) {
		return `SELECT * FROM "logs" ORDER BY created_at DESC`, 3
	}, nil)

	// Latency is recorded even when SQL logging is silenced.
	after := testutil.CollectAndCount(observability.DatabaseQueryLatency)
	assert.Greater(t, after, before)
}
