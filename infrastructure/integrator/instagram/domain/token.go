package domain

// TokenGrant é a resposta das operações de troca e renovação de token
type TokenGrant struct {
	AccessToken    string `json:"access_token"`
	TokenType      string `json:"token_type"`
	ExternalUserID string `json:"user_id"`
	ExpiresIn      int64  `json:"expires_in"`
}
