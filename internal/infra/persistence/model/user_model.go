// Package model holds the GORM persistence models for the postgres storage driver.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. IDs are generated by the application.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	FullName     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"column:password;type:varchar(255);not null"`
	RefreshToken string    `gorm:"type:text;not null;default:''"`
	Avatar       string    `gorm:"type:text;not null;default:''"`
	CoverImage   string    `gorm:"type:text;not null;default:''"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	WatchHistory []WatchHistoryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// WatchHistoryModel mirrors the 'watch_histories' table. One row per (user, video);
// re-watching bumps WatchedAt, which is the history order.
type WatchHistoryModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	VideoID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	WatchedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (WatchHistoryModel) TableName() string {
	return "watch_histories"
}
