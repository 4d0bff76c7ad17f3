package storage

import (
	"database/sql"
	"fmt"
	"time"

	"market-streamer/src/logger"
	"market-streamer/src/models"

	_ "github.com/lib/pq"
)

// -----------------------------------------------------------------------------

type PostgresDB struct {
	Config *models.MConfig
	DB     *sql.DB
	Logger *logger.Logger
	schema string
}

// -----------------------------------------------------------------------------

func NewPostgresDB(cfg *models.MConfig, log *logger.Logger) (*PostgresDB, error) {
	return &PostgresDB{
		Config: cfg,
		Logger: log,
		schema: "market_streamer",
	}, nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Initialize() error {
	db, err := sql.Open("postgres", d.Config.Storage.DBConnectionString)
	if err != nil {
		return err
	}

	if err := db.Ping(); err != nil {
		return err
	}

	d.DB = db

	if _, err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", d.schema)); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf("SET search_path TO %s", d.schema)); err != nil {
		return fmt.Errorf("failed to set search_path: %w", err)
	}

	return d.createTables()
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) createTables() error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s.bars (
			symbol TEXT,
			exchange TEXT,
			interval TEXT,
			timestamp BIGINT,
			open DOUBLE PRECISION,
			high DOUBLE PRECISION,
			low DOUBLE PRECISION,
			close DOUBLE PRECISION,
			volume DOUBLE PRECISION,
			pushed_at BIGINT,
			PRIMARY KEY (symbol, exchange, interval, timestamp)
		);
	`, d.schema)

	if _, err := d.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create bars: %w", err)
	}

	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) SaveBar(symbol, exchange, interval string, bar models.MBar) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.bars (symbol, exchange, interval, timestamp, open, high, low, close, volume, pushed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (symbol, exchange, interval, timestamp) DO UPDATE SET
			open = EXCLUDED.open,
			high = EXCLUDED.high,
			low = EXCLUDED.low,
			close = EXCLUDED.close,
			volume = EXCLUDED.volume,
			pushed_at = EXCLUDED.pushed_at
	`, d.schema)

	_, err := d.DB.Exec(query,
		symbol, exchange, interval, bar.Timestamp,
		bar.Open, bar.High, bar.Low, bar.Close, bar.Volume,
		time.Now().UTC().Unix(),
	)
	return err
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) CleanupOldData() error {
	retentionDays := d.Config.Storage.DataRetentionDays
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays).Unix()

	query := fmt.Sprintf("DELETE FROM %s.bars WHERE timestamp < $1", d.schema)
	if _, err := d.DB.Exec(query, cutoff); err != nil {
		d.Logger.Error("Cleanup bars error: %v", err)
		return err
	}

	d.Logger.Info("Cleanup completed (cutoff %d)", cutoff)
	return nil
}

// -----------------------------------------------------------------------------

func (d *PostgresDB) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
