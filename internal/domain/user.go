package domain

import "time"

// User é o dono de uma ou mais contas monitoradas. Aqui só carregamos os
// dados necessários para entrega de relatórios; autenticação fica fora
// deste serviço.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
