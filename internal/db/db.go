// Package db établit les connexions aux deux magasins : PostgreSQL pour les
// comptes, MongoDB pour le catalogue.
package db

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	migrate "github.com/golang-migrate/migrate/v4"
	// The following blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/louvel/boutique/internal/config"
	"github.com/louvel/boutique/internal/models"
)

// ConnectAndMigrate ouvre la connexion PostgreSQL avec quelques tentatives,
// puis amène le schéma à jour : migrations SQL via golang-migrate quand
// MIGRATIONS est activé, AutoMigrate sinon (confort de développement).
func ConnectAndMigrate(cfg *config.Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	gcfg := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// fait remonter gorm.ErrDuplicatedKey sur violation d'unicité
		TranslateError: true,
	}

	var db *gorm.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN()), gcfg)
		if err == nil {
			break
		}
		log.Println("Nouvelle tentative de connexion à la base...", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connexion à la base impossible après plusieurs tentatives: %w", err)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if cfg.App.Migrations {
		if err := runSQLMigrations(cfg.Database.URL()); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if err := db.AutoMigrate(&models.User{}); err != nil {
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}

	// sanity check: la table des comptes doit exister après migration
	if !db.Migrator().HasTable("users") {
		return nil, errors.New("missing table after migration: users")
	}
	return db, nil
}

// runSQLMigrations executes migrations in ./migrations using golang-migrate file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
