package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleHost      Role = "HOST"
	RoleCandidate Role = "CANDIDATE"
)

func (r Role) Valid() bool {
	return r == RoleHost || r == RoleCandidate
}

// User is the account record. Email is the login key and is stored
// lower-cased; PasswordHash is a bcrypt hash and is empty for accounts
// created through Google login until they set a password via reset.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Phone        string    `json:"phone"`
	Role         Role      `gorm:"not null;default:CANDIDATE" json:"role"`
	Avatar       string    `json:"avatar"`
	IsActive     bool      `gorm:"not null;default:true" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
