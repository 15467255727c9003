package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestDetectOperationType(t *testing.T) {
	tests := map[string]string{
		"SELECT * FROM clients":               "SELECT",
		"  insert into payments values (1)":   "INSERT",
		"update invoices set status = 'PAID'": "UPDATE",
		"DELETE FROM attendances":             "DELETE",
		"PRAGMA foreign_keys":                 "OTHER",
		"":                                    "OTHER",
	}
	for query, want := range tests {
		assert.Equal(t, want, detectOperationType(query), query)
	}
}

func TestDBMetrics_RecordQuery(t *testing.T) {
	reader, mp := newTestMeter(t)
	m, err := NewDBMetrics(mp.Meter("db"), DBMetricsConfig{SlowQueryThreshold: 50 * time.Millisecond}, zap.NewNop())
	require.NoError(t, err)
	ctx := context.Background()

	m.RecordQuery(ctx, "SELECT", "clients", time.Millisecond, nil)
	m.RecordQuery(ctx, "SELECT", "clients", time.Millisecond, gorm.ErrRecordNotFound)
	m.RecordQuery(ctx, "UPDATE", "subscriptions", 100*time.Millisecond, errors.New("deadlock"))

	rm := collect(t, reader)
	assert.Equal(t, int64(2), counterValue(t, rm, "db_query_total", AttrDBOperation.String("SELECT")))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_total", AttrDBOperation.String("UPDATE")))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_errors_total"))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_slow_query_total", AttrDBTable.String("subscriptions")))
}

func TestRegisterDBMetrics_Disabled(t *testing.T) {
	_, mp := newTestMeter(t)
	m, err := RegisterDBMetrics(context.Background(), setupTestDB(t), mp.Meter("db"), DBMetricsConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestRegisterDBMetrics_CountsGormOperations(t *testing.T) {
	reader, mp := newTestMeter(t)
	db := setupTestDB(t)

	cfg := DefaultDBMetricsConfig()
	cfg.PoolStatsInterval = time.Hour
	m, err := RegisterDBMetrics(context.Background(), db, mp.Meter("db"), cfg, zap.NewNop())
	require.NoError(t, err)
	require.NotNil(t, m)
	defer m.Stop()

	require.NoError(t, db.Create(&tracedRow{Name: "a"}).Error)
	var rows []tracedRow
	require.NoError(t, db.Find(&rows).Error)
	require.NoError(t, db.Model(&tracedRow{}).Where("name = ?", "a").Update("name", "b").Error)

	rm := collect(t, reader)
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_total", AttrDBOperation.String("INSERT")))
	assert.GreaterOrEqual(t, counterValue(t, rm, "db_query_total", AttrDBOperation.String("SELECT")), int64(1))
	assert.Equal(t, int64(1), counterValue(t, rm, "db_query_total", AttrDBOperation.String("UPDATE")))

	_, ok := findMetric(rm, "db_pool_connections")
	assert.True(t, ok)

	m.Stop()
	m.Stop()
}
