package storage

import (
	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the sqlite database, keeps the schema updated via
// AutoMigrate and seeds the item catalog rows from the config on first
// run. Item stats are never persisted; the config file stays the single
// source of truth.
func OpenAndMigrate(dataSourceName string, itemsFromConfig []game.Item) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&game.Item{}, &game.Pilot{}); err != nil {
		return nil, err
	}

	seedCatalog(db, itemsFromConfig)
	return db, nil
}

func seedCatalog(db *gorm.DB, itemsFromConfig []game.Item) {
	var count int64
	db.Model(&game.Item{}).Count(&count)
	if count > 0 {
		return
	}
	rows := make([]game.Item, 0, len(itemsFromConfig))
	for _, it := range itemsFromConfig {
		rows = append(rows, game.Item{Name: it.Name})
	}
	if len(rows) > 0 {
		db.Create(&rows)
	}
}
