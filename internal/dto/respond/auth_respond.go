package respond

// LoginRespond carries the token pair issued on login or refresh.
type LoginRespond struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       uint   `json:"userId"`
	TenantID     uint   `json:"tenantId"`
	Nome         string `json:"nome"`
	Email        string `json:"email"`
	Role         string `json:"role"`
}
