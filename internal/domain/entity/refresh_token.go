package entity

import "time"

// RefreshToken token opaco de refresco almacenado en servidor, se rota en cada uso.
type RefreshToken struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired indica si el token ya venció.
func (t *RefreshToken) Expired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
