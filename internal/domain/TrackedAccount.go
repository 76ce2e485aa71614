package domain

import "time"

// AccountID identifica uma conta monitorada no nosso banco de dados
type AccountID string

// PostID identifica uma publicação na plataforma externa. Também é usado
// como chave de unicidade dos feedbacks, por isso o tipo dedicado.
type PostID string

func (a AccountID) String() string {
	return string(a)
}

func (p PostID) String() string {
	return string(p)
}

// Niche representa o nicho de conteúdo de uma conta monitorada
type Niche string

const (
	NicheFashion   Niche = "fashion"
	NicheBeauty    Niche = "beauty"
	NicheFitness   Niche = "fitness"
	NicheFood      Niche = "food"
	NicheTravel    Niche = "travel"
	NicheLifestyle Niche = "lifestyle"
	NicheTech      Niche = "tech"
	NicheGaming    Niche = "gaming"
	NicheParenting Niche = "parenting"
	NicheBusiness  Niche = "business"
	NicheOther     Niche = "other"
)

// Credential guarda o token de acesso de uma conta na plataforma externa.
// É substituída por inteiro a cada renovação, nunca mutada parcialmente.
type Credential struct {
	AccessToken    string     `json:"access_token"`
	ExternalUserID string     `json:"external_user_id"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
}

// Stale indica se a credencial precisa ser renovada antes do uso
func (c *Credential) Stale(now time.Time) bool {
	if c == nil || c.ExpiresAt == nil {
		return false
	}
	return now.After(*c.ExpiresAt)
}

// TrackedAccount representa uma conta de criador monitorada pelo sistema
type TrackedAccount struct {
	ID         AccountID   `json:"id"`
	UserID     string      `json:"user_id"`
	Username   string      `json:"username"`
	Niche      Niche       `json:"niche"`
	Active     bool        `json:"active"`
	Credential *Credential `json:"credential,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// HasCredential indica se a conta está apta a participar das coletas
func (a *TrackedAccount) HasCredential() bool {
	return a.Credential != nil && a.Credential.AccessToken != ""
}
