package request

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

// UpdateAdminRequest is the body of the legacy POST /api/update-admin
type UpdateAdminRequest struct {
	Phone   string `json:"phone" validate:"required"`
	IsAdmin *bool  `json:"isAdmin" validate:"required"`
}
