package model

import "time"

// Refresh token disimpan sebagai hash SHA-256; raw token hanya hidup di
// cookie klien. Satu row per sesi, dirotasi setiap kali dipakai.
type RefreshTokenModel struct {
	TokenID        uint      `gorm:"column:token_id;primaryKey;autoIncrement" json:"token_id"`
	TokenAdminID   uint      `gorm:"column:token_admin_id;not null;index" json:"token_admin_id"`
	TokenHash      string    `gorm:"column:token_hash;type:char(64);uniqueIndex;not null" json:"-"`
	TokenExpiresAt time.Time `gorm:"column:token_expires_at;not null" json:"token_expires_at"`
	TokenCreatedAt time.Time `gorm:"column:token_created_at;autoCreateTime" json:"token_created_at"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
