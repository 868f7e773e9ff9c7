package dto

import (
	"time"

	"desacitamiang_backend/internals/features/users/admin/model"
)

type AdminUserResponse struct {
	AdminID          uint   `json:"admin_id"`
	AdminUsername    string `json:"admin_username"`
	AdminNamaLengkap string `json:"admin_nama_lengkap"`
	AdminEmail       string `json:"admin_email"`
	AdminRole        string `json:"admin_role"`
	AdminIsActive    bool   `json:"admin_is_active"`
	AdminCreatedAt   string `json:"admin_created_at"`
}

type CreateAdminUserRequest struct {
	AdminUsername    string `json:"admin_username" validate:"required,alphanum,min=4,max=64"`
	AdminPassword    string `json:"admin_password" validate:"required,min=8,max=72"`
	AdminNamaLengkap string `json:"admin_nama_lengkap" validate:"max=255"`
	AdminEmail       string `json:"admin_email" validate:"omitempty,email,max=255"`
	AdminRole        string `json:"admin_role" validate:"required,oneof=admin owner"`
}

func ToAdminUserResponse(m model.AdminUserModel) AdminUserResponse {
	return AdminUserResponse{
		AdminID:          m.AdminID,
		AdminUsername:    m.AdminUsername,
		AdminNamaLengkap: m.AdminNamaLengkap,
		AdminEmail:       m.AdminEmail,
		AdminRole:        m.AdminRole,
		AdminIsActive:    m.AdminIsActive,
		AdminCreatedAt:   m.AdminCreatedAt.Format(time.RFC3339),
	}
}

func ToAdminUserResponseList(list []model.AdminUserModel) []AdminUserResponse {
	out := make([]AdminUserResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToAdminUserResponse(m))
	}
	return out
}
