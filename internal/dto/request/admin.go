package request

// UpdateUserRequest edits a profile; omitted fields stay unchanged
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Phone    *string `json:"phone"`
}

type SetAdminRequest struct {
	IsAdmin *bool `json:"isAdmin" validate:"required"`
}

type ProductRequest struct {
	Name string `json:"name" validate:"required"`
}

type RenameProductRequest struct {
	OldName string `json:"oldName" validate:"required"`
	NewName string `json:"newName" validate:"required"`
}
