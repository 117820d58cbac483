package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/innercore-api/schema"
)

// InnerCore is the relational datastore of accounts and sessions
type InnerCore interface {
	Ping() error

	// Account
	CreateAccount(email, passHash string) (*schema.Account, error)
	GetAccount(id uuid.UUID) (*schema.Account, error)
	GetAccountByEmail(email string) (*schema.Account, error)

	// Session
	CreateSession(accountID uuid.UUID, expiresAt time.Time) (*schema.Session, error)
	GetSession(id uuid.UUID) (*schema.Session, error)
	RevokeSession(id uuid.UUID) error
	ExpireSessions(now time.Time) (int64, error)
}

// InnerCoreStore is an implementation of InnerCore
type InnerCoreStore struct {
	ormDB *gorm.DB
}

func NewInnerCoreStore(ormDB *gorm.DB) *InnerCoreStore {
	return &InnerCoreStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *InnerCoreStore) Ping() error {
	return s.ormDB.DB().Ping()
}
