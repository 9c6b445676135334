package httpdto

// RegisterRequest is used for POST /api/auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse is returned after successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// LoginRequest is used for POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token string      `json:"token"`
	User  AuthUserDTO `json:"user"`
}

// AuthUserDTO is the public projection of an account
type AuthUserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
