package repository

import (
	"time"

	"github.com/jhoicas/Inventario-api/internal/domain/entity"
)

// RefreshTokenRepository persiste refresh tokens opacos emitidos en login.
type RefreshTokenRepository interface {
	Create(token string, userID string, expiresAt time.Time) error
	// Find devuelve (nil, nil) si el token no existe.
	Find(token string) (*entity.RefreshToken, error)
	Delete(token string) error
	DeleteByUser(userID string) error
}
