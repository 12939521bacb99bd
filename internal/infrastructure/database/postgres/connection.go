package postgres

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"logitrack/internal/config"
	"logitrack/internal/infrastructure/database/postgres/models"
	"logitrack/internal/logger"
)

type DB struct {
	*gorm.DB
}

// gormConfig builds the shared gorm configuration. TranslateError
// makes the postgres driver report unique-constraint violations as
// gorm.ErrDuplicatedKey, which the repositories map onto the domain
// duplicate sentinels.
func gormConfig(environment string) *gorm.Config {
	logLevel := gormLogger.Info
	if environment == "production" {
		logLevel = gormLogger.Warn
	}

	return &gorm.Config{
		Logger:         gormLogger.Default.LogMode(logLevel),
		TranslateError: true,
	}
}

func NewDB(cfg *config.Config) (*DB, error) {
	dsn := cfg.Database.DSN()

	db, err := gorm.Open(postgres.Open(dsn), gormConfig(cfg.Server.Environment))
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	logger.Info("Database connection established",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	return &DB{DB: db}, nil
}

// Migrate creates or updates the schema for every model.
func (d *DB) Migrate() error {
	return d.DB.AutoMigrate(
		&models.EntrepotModel{},
		&models.UserModel{},
		&models.RefreshTokenModel{},
		&models.ClientModel{},
		&models.VehiculeModel{},
		&models.LivraisonModel{},
		&models.ColisModel{},
		&models.HistoriqueStatutModel{},
	)
}

func (d *DB) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *DB) Health() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
