package domain

import (
	"context"
	"time"
)

// User is the persisted identity record. The plaintext password never lives
// here; only the bcrypt hash is stored.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Name         string    `gorm:"size:64;not null" json:"name"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (User) TableName() string { return "users" }

// UserRepository owns User records. FindByEmail and FindByID return (nil, nil)
// when no record matches. Create must reject an already-registered email
// atomically (unique index, not check-then-insert) and report ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context, offset, limit int, q string) ([]User, int64, error)
}
