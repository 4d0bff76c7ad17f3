package storage

import (
	"database/sql"
	"fmt"
	"time"

	"market-streamer/src/logger"
	"market-streamer/src/models"

	_ "modernc.org/sqlite"
)

// -----------------------------------------------------------------------------

type AsyncSQLiteDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewAsyncSQLiteDB(cfg *models.MConfig, log *logger.Logger) (*AsyncSQLiteDB, error) {
	return &AsyncSQLiteDB{
		Config: cfg,
		Logger: log,
	}, nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Initialize() error {
	dsn := d.Config.Storage.DBPath

	// Open DB
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	// PRAGMA optimizations
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		d.Logger.Warning("Failed to set WAL mode: %v", err)
	}
	if _, err := db.Exec("PRAGMA synchronous = NORMAL;"); err != nil {
		d.Logger.Warning("Failed to set synchronous mode: %v", err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) createTables() error {
	// The archive survives restarts, so tables are created, never recreated.
	// SQLite types: INTEGER for int64, REAL for float64, TEXT for string
	query := `
		CREATE TABLE IF NOT EXISTS bars (
			symbol TEXT,
			exchange TEXT,
			interval TEXT,
			timestamp INTEGER,
			open REAL,
			high REAL,
			low REAL,
			close REAL,
			volume REAL,
			pushed_at INTEGER,
			PRIMARY KEY (symbol, exchange, interval, timestamp)
		);
	`
	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create bars: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) SaveBar(symbol, exchange, interval string, bar models.MBar) error {
	query := `
		INSERT INTO bars (symbol, exchange, interval, timestamp, open, high, low, close, volume, pushed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (symbol, exchange, interval, timestamp) DO UPDATE SET
			open = excluded.open,
			high = excluded.high,
			low = excluded.low,
			close = excluded.close,
			volume = excluded.volume,
			pushed_at = excluded.pushed_at
	`

	_, err := d.DB.Exec(query,
		symbol, exchange, interval, bar.Timestamp,
		bar.Open, bar.High, bar.Low, bar.Close, bar.Volume,
		time.Now().UTC().Unix(),
	)
	return err
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) CleanupOldData() error {
	retentionDays := d.Config.Storage.DataRetentionDays
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Unix()

	if _, err := d.DB.Exec("DELETE FROM bars WHERE timestamp < ?", cutoff); err != nil {
		d.Logger.Error("Cleanup bars error: %v", err)
		return err
	}

	d.Logger.Info("Cleanup completed (cutoff %d)", cutoff)
	return nil
}

// -----------------------------------------------------------------------------

func (d *AsyncSQLiteDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
