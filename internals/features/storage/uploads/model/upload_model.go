package model

import "time"

// UploadModel adalah ledger setiap object yang pernah dikirim ke OSS.
// Baris dibuat sebelum insert data konten; setelah row konten tersimpan,
// upload ditandai claimed. Baris yang tidak pernah di-claim adalah kandidat
// orphan untuk reaper.
type UploadModel struct {
	UploadID        uint       `gorm:"column:upload_id;primaryKey;autoIncrement" json:"upload_id"`
	UploadObjectKey string     `gorm:"column:upload_object_key;type:text;not null;uniqueIndex" json:"upload_object_key"`
	UploadPublicURL string     `gorm:"column:upload_public_url;type:text;not null" json:"upload_public_url"`
	UploadDir       string     `gorm:"column:upload_dir;type:varchar(64);not null" json:"upload_dir"`
	UploadClaimedAt *time.Time `gorm:"column:upload_claimed_at" json:"upload_claimed_at,omitempty"`
	UploadCreatedAt time.Time  `gorm:"column:upload_created_at;autoCreateTime" json:"upload_created_at"`
}

func (UploadModel) TableName() string {
	return "uploads"
}
