package store

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/bitmark-inc/innercore-api/schema"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountTaken    = errors.New("email is already registered")
)

const uniqueViolation = "23505"

// CreateAccount registers an email. Emails are compared case-insensitively.
func (s *InnerCoreStore) CreateAccount(email, passHash string) (*schema.Account, error) {
	a := schema.Account{
		ID:       uuid.New(),
		Email:    normalizeEmail(email),
		PassHash: passHash,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return nil, ErrAccountTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns an account instance of a given id
func (s *InnerCoreStore) GetAccount(id uuid.UUID) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (s *InnerCoreStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", normalizeEmail(email)).First(&a).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
