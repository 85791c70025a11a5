package entity

import "time"

// User representa una cuenta de la aplicación. Email es la clave de login y se
// persiste siempre en minúsculas.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	LastLogin    *time.Time // nil hasta el primer login exitoso
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName nombre completo para mensajes de presentación.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
