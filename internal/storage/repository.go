package storage

import "github.com/ctrl-raul/supermechs-workshop-server/internal/game"

// Repository is the persistence surface of the server. Battle and queue
// state live purely in memory; only the item catalog rows and pilot
// profiles are stored.
type Repository interface {
	GetItems() ([]game.Item, error)
	GetItemByName(name string) (*game.Item, error)

	UpsertPilot(pilotUUID, callsign string) (*game.Pilot, error)
	GetPilotByUUID(pilotUUID string) (*game.Pilot, error)
	UpdateStatsOnBattleEnd(winnerUUID, loserUUID string) error
}
