package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/innercore-api/schema"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

func (s *InnerCoreStore) CreateSession(accountID uuid.UUID, expiresAt time.Time) (*schema.Session, error) {
	session := schema.Session{
		ID:        uuid.New(),
		AccountID: accountID,
		ExpiresAt: expiresAt,
	}

	if err := s.ormDB.Create(&session).Error; err != nil {
		return nil, err
	}

	return &session, nil
}

func (s *InnerCoreStore) GetSession(id uuid.UUID) (*schema.Session, error) {
	var session schema.Session
	if err := s.ormDB.Where("id = ?", id).First(&session).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &session, nil
}

// RevokeSession marks a session as signed out. Revoking twice is a no-op.
func (s *InnerCoreStore) RevokeSession(id uuid.UUID) error {
	result := s.ormDB.Model(&schema.Session{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", time.Now())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if _, err := s.GetSession(id); err != nil {
			return err
		}
	}

	return nil
}

// ExpireSessions removes sessions which are revoked or expired at the given time
func (s *InnerCoreStore) ExpireSessions(now time.Time) (int64, error) {
	result := s.ormDB.Where("expires_at < ? OR revoked_at IS NOT NULL", now).Delete(schema.Session{})
	if result.Error != nil {
		return 0, result.Error
	}

	log.WithField("prefix", "orm").Infof("%d sessions expired", result.RowsAffected)
	return result.RowsAffected, nil
}
