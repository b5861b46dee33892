package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"visitcap/internal/db"
	"visitcap/internal/model"
	"visitcap/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce 确保 snowflake 在所有并行测试中只初始化一次
var snowflakeOnce sync.Once

// InitSnowflake initializes the ID generator once per test binary.
func InitSnowflake() {
	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// sync.Once 内无法使用 t.Fatalf，改用 panic
			panic("failed to initialize snowflake: " + err.Error())
		}
	})
}

// NewTestDB 创建内存 SQLite 数据库并执行所有迁移
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	InitSnowflake()

	// 每个测试使用唯一的数据库名称以避免冲突
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_txlock=immediate", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.SetMaxOpenConns(1)

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedSiteLimit 插入测试站点限制并返回其 ID
func SeedSiteLimit(t *testing.T, database *sql.DB, limit model.SiteLimit) int64 {
	t.Helper()

	if limit.ID == 0 {
		limit.ID = snowflake.NextID()
	}
	if limit.TimeInterval == "" {
		limit.TimeInterval = model.IntervalDay
	}
	if limit.VisitLimit == 0 {
		limit.VisitLimit = 1
	}
	now := time.Now().UTC()
	if limit.LastReset.IsZero() {
		limit.LastReset = now
	}
	if limit.CreatedAt.IsZero() {
		limit.CreatedAt = now
	}

	_, err := database.ExecContext(
		context.Background(),
		`INSERT INTO site_limits (id, pattern, visit_limit, time_interval, visit_count, last_reset, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		limit.ID, limit.Pattern, limit.VisitLimit, string(limit.TimeInterval), limit.VisitCount,
		limit.LastReset.UTC().Format(time.RFC3339Nano), limit.CreatedAt.UTC().Format(time.RFC3339Nano),
		now.Format(time.RFC3339Nano),
	)
	if err != nil {
		t.Fatalf("failed to seed site limit: %v", err)
	}

	return limit.ID
}
