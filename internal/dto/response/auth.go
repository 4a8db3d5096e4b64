package response

type AuthResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

type CheckAdminResponse struct {
	Success  bool   `json:"success"`
	IsAdmin  bool   `json:"isAdmin"`
	UserID   string `json:"userId,omitempty"`
	Username string `json:"username,omitempty"`
	Error    string `json:"error,omitempty"`
}
