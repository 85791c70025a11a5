package repository

import "github.com/jhoicas/Inventario-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Toda consulta va filtrada por propietario dentro del query: un producto
// ajeno es indistinguible de uno inexistente.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByIDAndOwner devuelve (nil, nil) si no existe o pertenece a otro usuario.
	GetByIDAndOwner(id, ownerID string) (*entity.Product, error)
	// UpdateOwned escribe con WHERE id AND user_id; devuelve domain.ErrNotFound
	// si no afectó filas (borrado concurrente incluido).
	UpdateOwned(product *entity.Product) error
	// DeleteOwned elimina con WHERE id AND user_id; domain.ErrNotFound si no existía.
	DeleteOwned(id, ownerID string) error
	ListByOwner(ownerID string, limit, offset int) ([]*entity.Product, error)
}
