package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-api/internal/application/dto"
	"github.com/jhoicas/Inventario-api/internal/domain"
	"github.com/jhoicas/Inventario-api/internal/domain/entity"
	"github.com/jhoicas/Inventario-api/internal/domain/repository"
)

// TxRunner ejecuta fn con un repositorio de productos atado a una transacción.
// El update corre lectura + merge + escritura en una sola transacción para que
// un delete concurrente aparezca como ErrNotFound y nunca como update parcial.
type TxRunner interface {
	RunProducts(ctx context.Context, fn func(products repository.ProductRepository) error) error
}

// ProductUseCase CRUD de productos acotado al propietario autenticado.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create valida y persiste un producto nuevo. El propietario es siempre el
// usuario autenticado, nunca un campo del cuerpo.
func (uc *ProductUseCase) Create(ownerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Name:      strings.TrimSpace(in.ProductName),
		Price:     in.Price,
		Discount:  in.Discount,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByOwner obtiene un producto del propietario. Un producto ajeno responde
// igual que uno inexistente.
func (uc *ProductUseCase) GetByOwner(ownerID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica un update parcial: los campos omitidos conservan su valor y la
// validación completa se re-evalúa sobre el estado final ya mezclado.
func (uc *ProductUseCase) Update(ownerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out *dto.ProductResponse
	err := uc.txRunner.RunProducts(context.Background(), func(products repository.ProductRepository) error {
		product, err := products.GetByIDAndOwner(id, ownerID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if in.ProductName != nil {
			product.Name = strings.TrimSpace(*in.ProductName)
		}
		if in.Price != nil {
			product.Price = *in.Price
		}
		if in.Discount != nil {
			product.Discount = *in.Discount
		}
		if err := product.Validate(); err != nil {
			return err
		}
		product.UpdatedAt = time.Now()
		if err := products.UpdateOwned(product); err != nil {
			return err
		}
		out = toProductResponse(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina definitivamente un producto del propietario. Borrar un id ya
// borrado devuelve ErrNotFound, no éxito.
func (uc *ProductUseCase) Delete(ownerID, id string) error {
	return uc.repo.DeleteOwned(id, ownerID)
}

// List lista los productos del propietario ordenados por nombre.
func (uc *ProductUseCase) List(ownerID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByOwner(ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Discount:    p.Discount,
		FinalPrice:  p.FinalPrice(),
		User:        p.UserID,
	}
}
