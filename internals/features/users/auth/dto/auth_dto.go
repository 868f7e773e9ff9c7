package dto

import adminDTO "desacitamiang_backend/internals/features/users/admin/dto"

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=4,max=64"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required,min=8,max=72"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72,nefield=OldPassword"`
}

// LoginResponse juga membawa access token di body untuk klien yang memakai
// Authorization header; cookie tetap dipasang untuk klien browser.
type LoginResponse struct {
	AccessToken string                     `json:"access_token"`
	Admin       adminDTO.AdminUserResponse `json:"admin"`
}
