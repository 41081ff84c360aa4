package request

// RegisterRequest creates a new business and its first user.
type RegisterRequest struct {
	NomeEmpresa string `json:"nomeEmpresa" binding:"required"`
	Nome        string `json:"nome" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

// LoginRequest authenticates a user by email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest rotates the token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}
