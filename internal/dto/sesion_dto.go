package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type IngresarRequest struct {
	Ultimos4 string `json:"ultimos_4" validate:"required,len=4,numeric"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PersonalResponse struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Ultimos4 string `json:"ultimos_4"`
	Rol      string `json:"rol"`
}

type SesionResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int              `json:"expires_in"`
	Personal    PersonalResponse `json:"personal"`
}
