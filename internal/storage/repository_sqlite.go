package storage

import (
	"errors"
	"time"

	"github.com/zhoumeng-creater/netdefence/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.GameSession) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByUUID(sessionUUID string) (*game.GameSession, error) {
	var s game.GameSession
	err := r.db.
		Preload("Moves", func(tx *gorm.DB) *gorm.DB { return tx.Order("move_records.id ASC") }).
		Preload("History", func(tx *gorm.DB) *gorm.DB { return tx.Order("environment_snapshots.round ASC") }).
		Where("session_uuid = ?", sessionUUID).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) ListSessions(status game.SessionStatus, limit int) ([]game.GameSession, error) {
	if limit <= 0 {
		limit = 50
	}
	q := r.db.Order("created_at DESC").Limit(limit)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var sessions []game.GameSession
	if err := q.Find(&sessions).Error; err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sqliteRepository) UpdateSession(s *game.GameSession) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(s).Error
}

func (r *sqliteRepository) FindIdleSessions(cutoff time.Time) ([]game.GameSession, error) {
	var sessions []game.GameSession
	err := r.db.
		Where("status = ? AND updated_at <= ?", game.StatusActive, cutoff).
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
