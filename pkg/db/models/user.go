package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/emberoak/atelier-backend/pkg/enums"
)

// User backs the admin console login. The schema anticipates per-user seller
// accounts; the current onboarding flow still writes to site settings.
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string         `gorm:"column:name;not null"`
	Email           string         `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash    string         `gorm:"column:password_hash;not null"`
	Role            enums.UserRole `gorm:"column:role;not null;default:'admin'"`
	SellerAccountID *string        `gorm:"column:seller_account_id"`
	JoinedAt        time.Time      `gorm:"column:joined_at;autoCreateTime"`
	CreatedAt       time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
