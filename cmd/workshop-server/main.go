package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/ctrl-raul/supermechs-workshop-server/internal/api"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/arena"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/config"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/constants"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/engine"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/logging"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/matchmaker"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/service"
	"github.com/ctrl-raul/supermechs-workshop-server/internal/storage"

	"github.com/joho/godotenv"
)

func main() {
	// Optional .env for local development; environment variables win.
	_ = godotenv.Load()

	// Load the item and stat configuration file (required). Path may be
	// provided via WORKSHOP_CONFIG or defaults to ./workshop_config.json
	// in the current working directory.
	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./workshop_config.json"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Fatal("Missing or invalid workshop configuration", err, logging.Fields{"config_path": configPath, "hint": "create a workshop_config.json with an 'item_list' array of item objects (name,type,element,tags,stats) and a 'stat_list' array of stat buff entries (key,buff{mode,amount})"})
	}

	// Allow the DB path to be configured via WORKSHOP_DB. Default to a
	// `data/` directory inside the module for local development.
	dbPath := os.Getenv(constants.EnvDBPath)
	if dbPath == "" {
		dbPath = "./data/workshop.db"
	}
	db, err := storage.OpenAndMigrate(dbPath, cfg.Items)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db, cfg.Items)

	catalog := service.NewCatalog(cfg.Items)
	registry := arena.NewRegistry()
	inbox := api.NewEventInbox()
	rng := engine.NewLockedRand(rand.New(rand.NewSource(time.Now().UnixNano())))
	mm := matchmaker.NewService(registry, inbox, rng)

	handler := api.NewHandler(repo, catalog, cfg.Stats, registry, mm, inbox, rng)
	inbox.OnBattleEnd = handler.RecordOutcome

	router := api.NewRouter(handler)

	addr := cfg.ServerAddress
	if port := os.Getenv(constants.EnvPort); port != "" {
		addr = ":" + port
	}
	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
