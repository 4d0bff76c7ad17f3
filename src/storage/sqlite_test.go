package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"market-streamer/src/logger"
	"market-streamer/src/models"
)

func newTestDB(t *testing.T) *AsyncSQLiteDB {
	t.Helper()

	cfg := &models.MConfig{LogLevel: "ERROR"}
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "test.db")
	cfg.Storage.DataRetentionDays = 7

	db, err := NewAsyncSQLiteDB(cfg, logger.NewLogger("ERROR", "test"))
	require.NoError(t, err)
	require.NoError(t, db.Initialize())
	t.Cleanup(func() { db.Close() })
	return db
}

func countBars(t *testing.T, db *AsyncSQLiteDB) int {
	t.Helper()
	var n int
	require.NoError(t, db.DB.QueryRow("SELECT COUNT(*) FROM bars").Scan(&n))
	return n
}

func TestSaveBarInsertsRow(t *testing.T) {
	db := newTestDB(t)

	bar := models.MBar{Timestamp: 1700000000, Open: 10, High: 12, Low: 9, Close: 11, Volume: 100}
	require.NoError(t, db.SaveBar("AAPL", "NASDAQ", "in_1_minute", bar))

	assert.Equal(t, 1, countBars(t, db))
}

func TestSaveBarUpsertsOnConflict(t *testing.T) {
	db := newTestDB(t)

	bar := models.MBar{Timestamp: 1700000000, Open: 10, High: 12, Low: 9, Close: 11, Volume: 100}
	require.NoError(t, db.SaveBar("AAPL", "NASDAQ", "in_1_minute", bar))

	// Same coordinates, updated values: row replaced, not duplicated
	bar.Close = 11.5
	bar.Volume = 150
	require.NoError(t, db.SaveBar("AAPL", "NASDAQ", "in_1_minute", bar))

	assert.Equal(t, 1, countBars(t, db))

	var closePrice, volume float64
	require.NoError(t, db.DB.QueryRow("SELECT close, volume FROM bars").Scan(&closePrice, &volume))
	assert.Equal(t, 11.5, closePrice)
	assert.Equal(t, 150.0, volume)
}

func TestSameTimestampDifferentStreamsCoexist(t *testing.T) {
	db := newTestDB(t)

	bar := models.MBar{Timestamp: 1700000000, Open: 1, High: 1, Low: 1, Close: 1, Volume: 1}
	require.NoError(t, db.SaveBar("AAPL", "NASDAQ", "in_1_minute", bar))
	require.NoError(t, db.SaveBar("AAPL", "NASDAQ", "in_5_minute", bar))
	require.NoError(t, db.SaveBar("GOLD", "MCX", "in_1_minute", bar))

	assert.Equal(t, 3, countBars(t, db))
}

func TestCleanupOldDataRespectsRetention(t *testing.T) {
	db := newTestDB(t)

	now := time.Now().UTC()
	old := models.MBar{Timestamp: now.AddDate(0, 0, -30).Unix(), Open: 1, High: 1, Low: 1, Close: 1, Volume: 1}
	fresh := models.MBar{Timestamp: now.Unix(), Open: 2, High: 2, Low: 2, Close: 2, Volume: 2}

	require.NoError(t, db.SaveBar("AAPL", "NASDAQ", "in_1_minute", old))
	require.NoError(t, db.SaveBar("AAPL", "NASDAQ", "in_1_minute", fresh))

	require.NoError(t, db.CleanupOldData())

	assert.Equal(t, 1, countBars(t, db))

	var ts int64
	require.NoError(t, db.DB.QueryRow("SELECT timestamp FROM bars").Scan(&ts))
	assert.Equal(t, fresh.Timestamp, ts)
}
