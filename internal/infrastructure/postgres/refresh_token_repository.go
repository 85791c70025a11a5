package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Inventario-api/internal/domain/entity"
	"github.com/jhoicas/Inventario-api/internal/domain/repository"
)

var _ repository.RefreshTokenRepository = (*RefreshTokenRepo)(nil)

// RefreshTokenRepo implementación del puerto RefreshTokenRepository sobre PostgreSQL.
type RefreshTokenRepo struct {
	q Querier
}

// NewRefreshTokenRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRefreshTokenRepository(q Querier) *RefreshTokenRepo {
	return &RefreshTokenRepo{q: q}
}

// Create almacena un refresh token nuevo con su vencimiento.
func (r *RefreshTokenRepo) Create(token, userID string, expiresAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO refresh_tokens (token, user_id, expires_at, created_at) VALUES ($1, $2, $3, now())`,
		token, userID, expiresAt)
	if err != nil {
		return fmt.Errorf("insert refresh token: %w", err)
	}
	return nil
}

// Find busca un token por su valor opaco. Devuelve (nil, nil) si no existe.
func (r *RefreshTokenRepo) Find(token string) (*entity.RefreshToken, error) {
	var t entity.RefreshToken
	err := r.q.QueryRow(context.Background(),
		`SELECT token, user_id, expires_at, created_at FROM refresh_tokens WHERE token = $1`,
		token).Scan(&t.Token, &t.UserID, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find refresh token: %w", err)
	}
	return &t, nil
}

// Delete invalida un token. Borrar uno inexistente no es error.
func (r *RefreshTokenRepo) Delete(token string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

// DeleteByUser invalida todos los tokens de un usuario.
func (r *RefreshTokenRepo) DeleteByUser(userID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete refresh tokens by user: %w", err)
	}
	return nil
}
