package model

import "time"

// Akun admin panel. Password disimpan sebagai hash bcrypt; GoogleID terisi
// untuk akun yang login via Google.
type AdminUserModel struct {
	AdminID           uint      `gorm:"column:admin_id;primaryKey;autoIncrement" json:"admin_id"`
	AdminUsername     string    `gorm:"column:admin_username;type:varchar(64);uniqueIndex;not null" json:"admin_username"`
	AdminPasswordHash string    `gorm:"column:admin_password_hash;type:varchar(100);not null" json:"-"`
	AdminNamaLengkap  string    `gorm:"column:admin_nama_lengkap;type:varchar(255)" json:"admin_nama_lengkap"`
	AdminEmail        string    `gorm:"column:admin_email;type:varchar(255);uniqueIndex" json:"admin_email"`
	AdminRole         string    `gorm:"column:admin_role;type:varchar(16);not null;default:'admin'" json:"admin_role"`
	AdminIsActive     bool      `gorm:"column:admin_is_active;not null;default:true" json:"admin_is_active"`
	AdminGoogleID     *string   `gorm:"column:admin_google_id;type:varchar(64);uniqueIndex" json:"-"`
	AdminCreatedAt    time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt    time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminUserModel) TableName() string {
	return "admin_users"
}
