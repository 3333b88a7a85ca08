package main

import (
	"github.com/zhoumeng-creater/netdefence/internal/logging"
	"github.com/zhoumeng-creater/netdefence/internal/scenario"
	"github.com/zhoumeng-creater/netdefence/internal/storage"
)

func loadConfigOrExit(path string) *scenario.LoadedConfig {
	cfg, err := scenario.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid netdefence configuration", err, logging.Fields{"config_path": path})
	}
	return cfg
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
