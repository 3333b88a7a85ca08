package storage

import (
	"github.com/zhoumeng-creater/netdefence/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Keep the schema updated via AutoMigrate; removing the DB file resets
	// everything in development.
	err = db.AutoMigrate(&game.GameSession{}, &game.MoveRecord{}, &game.EnvironmentState{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
