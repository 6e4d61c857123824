package domain

import "time"

// ClientRecord é o registro bruto de um cliente
type ClientRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
