package schema

import (
	"time"

	"github.com/google/uuid"
)

// Account is a sign-in identity. The account id is the uid that owns every
// document in mongo.
type Account struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email     string    `json:"email" gorm:"unique_index;not null"`
	PassHash  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session backs a bearer token. A token is valid while its session is
// neither revoked nor expired.
type Session struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	AccountID uuid.UUID  `json:"account_id" gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time  `json:"expires_at" gorm:"index"`
	RevokedAt *time.Time `json:"revoked_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (s Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
