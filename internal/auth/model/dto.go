package model

// RegisterRequest represents the body of POST /auth/register.
type RegisterRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

// PublicUser is the user record exposed over the API and stored in the
// client session.
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse represents the response of a successful login.
type LoginResponse struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

// Claims is what the service extracts from a verified token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}
