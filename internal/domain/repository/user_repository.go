package repository

import (
	"time"

	"github.com/jhoicas/Inventario-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get devuelven (nil, nil) cuando no existe el registro.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetByEmail busca por email ya normalizado (minúsculas).
	GetByEmail(email string) (*entity.User, error)
	UpdateLastLogin(id string, at time.Time) error
}
