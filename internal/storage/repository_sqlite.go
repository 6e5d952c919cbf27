package storage

import (
	"errors"
	"strings"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
	// configByName maps lowercase item name -> config definition (stats).
	configByName map[string]game.Item
}

// NewSQLiteRepository wraps the gorm handle. Catalog reads overlay the
// config-provided stats onto the persisted rows, since only names are
// stored in the database.
func NewSQLiteRepository(db *gorm.DB, configItems []game.Item) Repository {
	m := make(map[string]game.Item, len(configItems))
	for _, it := range configItems {
		m[strings.ToLower(it.Name)] = it
	}
	return &sqliteRepository{db: db, configByName: m}
}

func (r *sqliteRepository) overlay(it *game.Item) {
	if conf, ok := r.configByName[strings.ToLower(it.Name)]; ok {
		it.Type = conf.Type
		it.Element = conf.Element
		it.Tags = conf.Tags
		it.Stats = conf.Stats
	}
}

func (r *sqliteRepository) GetItems() ([]game.Item, error) {
	var items []game.Item
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}
	for i := range items {
		r.overlay(&items[i])
	}
	return items, nil
}

func (r *sqliteRepository) GetItemByName(name string) (*game.Item, error) {
	var it game.Item
	if err := r.db.Where("LOWER(name) = ?", strings.ToLower(name)).First(&it).Error; err != nil {
		return nil, err
	}
	r.overlay(&it)
	return &it, nil
}

func (r *sqliteRepository) UpsertPilot(pilotUUID, callsign string) (*game.Pilot, error) {
	var p game.Pilot
	err := r.db.Where("pilot_uuid = ?", pilotUUID).First(&p).Error
	switch {
	case err == nil:
		p.Callsign = callsign
		if err := r.db.Save(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		p = game.Pilot{PilotUUID: pilotUUID, Callsign: callsign}
		if err := r.db.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	default:
		return nil, err
	}
}

func (r *sqliteRepository) GetPilotByUUID(pilotUUID string) (*game.Pilot, error) {
	var p game.Pilot
	if err := r.db.Where("pilot_uuid = ?", pilotUUID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(winnerUUID, loserUUID string) error {
	if winnerUUID != "" {
		if err := r.db.Model(&game.Pilot{}).
			Where("pilot_uuid = ?", winnerUUID).
			Updates(map[string]interface{}{
				"battles_fought": gorm.Expr("battles_fought + 1"),
				"victories":      gorm.Expr("victories + 1"),
			}).Error; err != nil {
			return err
		}
	}
	if loserUUID != "" {
		if err := r.db.Model(&game.Pilot{}).
			Where("pilot_uuid = ?", loserUUID).
			Update("battles_fought", gorm.Expr("battles_fought + 1")).Error; err != nil {
			return err
		}
	}
	return nil
}
