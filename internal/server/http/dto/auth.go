package dto

// LoginRequest describes admin login payload.
type LoginRequest struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session token and the account role.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
