package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/filearr/filearr/internal/domain"
	"github.com/filearr/filearr/internal/logging"
	"github.com/filearr/filearr/internal/ports"
)

// SQLiteRepository implements ports.FolderSettingRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.FolderSettingRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the filearr logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("FILEARR_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (creating if needed) the settings database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the SSH server and a local CLI share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&FolderSettingModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate system_settings schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(4)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Settings database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements FolderSettingReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, key string) (*domain.FolderSetting, error) {
	var model FolderSettingModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("key = ?", key).First(&model).Error
	}, 3)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSettingNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, err)
	}

	setting := folderSettingModelToDomain(model)
	return &setting, nil
}

// List implements FolderSettingReader.List, ordered by key
func (r *SQLiteRepository) List(ctx context.Context) ([]domain.FolderSetting, error) {
	var models []FolderSettingModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("key").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	settings := make([]domain.FolderSetting, 0, len(models))
	for _, m := range models {
		settings = append(settings, folderSettingModelToDomain(m))
	}
	return settings, nil
}

// Set implements FolderSettingWriter.Set
func (r *SQLiteRepository) Set(ctx context.Context, key, value string) (string, error) {
	var previous string

	err := withRetry(func() error {
		previous = ""
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing FolderSettingModel
			err := tx.Where("key = ?", key).First(&existing).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				return tx.Create(&FolderSettingModel{Key: key, Value: value}).Error
			}
			if err != nil {
				return err
			}

			previous = existing.Value
			existing.Value = value
			return tx.Save(&existing).Error
		})
	}, 3)
	if err != nil {
		return "", fmt.Errorf("failed to set setting %s: %w", key, err)
	}

	return previous, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
