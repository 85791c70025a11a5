package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-api/internal/application/dto"
	"github.com/jhoicas/Inventario-api/internal/application/usecase"
	"github.com/jhoicas/Inventario-api/internal/domain"
	"github.com/jhoicas/Inventario-api/internal/domain/entity"
	"github.com/jhoicas/Inventario-api/internal/domain/repository"
)

// fakeProductRepo implementación en memoria del puerto, con la misma regla que
// el adaptador real: toda operación va filtrada por propietario.
type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByIDAndOwner(id, ownerID string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || p.UserID != ownerID {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) UpdateOwned(p *entity.Product) error {
	existing, ok := r.products[p.ID]
	if !ok || existing.UserID != p.UserID {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) DeleteOwned(id, ownerID string) error {
	p, ok := r.products[id]
	if !ok || p.UserID != ownerID {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) ListByOwner(ownerID string, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.products {
		if p.UserID == ownerID {
			cp := *p
			list = append(list, &cp)
		}
	}
	return list, nil
}

type fakeTxRunner struct {
	repo *fakeProductRepo
}

func (f *fakeTxRunner) RunProducts(ctx context.Context, fn func(products repository.ProductRepository) error) error {
	return fn(f.repo)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func strPtr(s string) *string { return &s }

func newUseCase() (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := newFakeProductRepo()
	return usecase.NewProductUseCase(repo, &fakeTxRunner{repo: repo}), repo
}

func createWidget(t *testing.T, uc *usecase.ProductUseCase, owner string) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Create(owner, dto.CreateProductRequest{
		ProductName: "Widget",
		Price:       dec("100.00"),
		Discount:    dec("10.00"),
	})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AsignaPropietarioYPrecioFinal(t *testing.T) {
	uc, _ := newUseCase()
	out := createWidget(t, uc, "u1")
	assert.Equal(t, "u1", out.User, "el propietario sale del caller autenticado")
	assert.Equal(t, "Widget", out.ProductName)
	assert.True(t, out.FinalPrice.Equal(dec("90.00")))
}

func TestCreate_DescuentoMayorQuePrecio(t *testing.T) {
	uc, _ := newUseCase()
	_, err := uc.Create("u1", dto.CreateProductRequest{
		ProductName: "Widget",
		Price:       dec("50.00"),
		Discount:    dec("60.00"),
	})
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields[domain.NonFieldKey], "Discount cannot be greater than the price.")
}

func TestCreate_DescuentoIgualAlPrecio(t *testing.T) {
	uc, _ := newUseCase()
	out, err := uc.Create("u1", dto.CreateProductRequest{
		ProductName: "Widget",
		Price:       dec("50.00"),
		Discount:    dec("50.00"),
	})
	require.NoError(t, err)
	assert.True(t, out.FinalPrice.IsZero())
}

func TestCreate_ErroresDeCampoJuntos(t *testing.T) {
	uc, repo := newUseCase()
	_, err := uc.Create("u1", dto.CreateProductRequest{
		ProductName: "  ",
		Price:       dec("0"),
		Discount:    dec("-5"),
	})
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields["product_name"], "Product name cannot be empty.")
	assert.Contains(t, ve.Fields["price"], "Price must be greater than zero.")
	assert.Contains(t, ve.Fields["discount"], "Discount cannot be negative.")
	assert.Empty(t, repo.products, "la validación fallida no persiste nada")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad: producto ajeno indistinguible de inexistente
// ──────────────────────────────────────────────────────────────────────────────

func TestOperacionesSobreProductoAjeno_NotFound(t *testing.T) {
	uc, _ := newUseCase()
	out := createWidget(t, uc, "userB")

	_, err := uc.GetByOwner("userA", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update("userA", out.ID, dto.UpdateProductRequest{Discount: decPtr("5.00")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete("userA", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByOwner_Existente(t *testing.T) {
	uc, _ := newUseCase()
	out := createWidget(t, uc, "u1")
	got, err := uc.GetByOwner("u1", out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_ParcialConservaCampos(t *testing.T) {
	uc, _ := newUseCase()
	out := createWidget(t, uc, "u1")

	updated, err := uc.Update("u1", out.ID, dto.UpdateProductRequest{Discount: decPtr("25.00")})
	require.NoError(t, err)
	assert.Equal(t, "Widget", updated.ProductName, "los campos omitidos conservan su valor")
	assert.True(t, updated.Price.Equal(dec("100.00")))
	assert.True(t, updated.Discount.Equal(dec("25.00")))
	assert.True(t, updated.FinalPrice.Equal(dec("75.00")))
}

// La regla discount <= price se re-evalúa sobre el estado final mezclado.
func TestUpdate_DescuentoSuperaPrecioVigente(t *testing.T) {
	uc, _ := newUseCase()
	out := createWidget(t, uc, "u1") // price=100.00

	_, err := uc.Update("u1", out.ID, dto.UpdateProductRequest{Discount: decPtr("150.00")})
	require.Error(t, err)
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields[domain.NonFieldKey], "Discount cannot be greater than the price.")

	// El producto queda intacto.
	got, err := uc.GetByOwner("u1", out.ID)
	require.NoError(t, err)
	assert.True(t, got.Discount.Equal(dec("10.00")))
}

func TestUpdate_BajarPrecioPorDebajoDelDescuento(t *testing.T) {
	uc, _ := newUseCase()
	out := createWidget(t, uc, "u1") // discount=10.00

	_, err := uc.Update("u1", out.ID, dto.UpdateProductRequest{Price: decPtr("5.00")})
	require.Error(t, err)
	_, ok := domain.AsValidationError(err)
	assert.True(t, ok)
}

func TestUpdate_NoPermiteTransferirPropietario(t *testing.T) {
	uc, repo := newUseCase()
	out := createWidget(t, uc, "u1")

	_, err := uc.Update("u1", out.ID, dto.UpdateProductRequest{ProductName: strPtr("Gadget")})
	require.NoError(t, err)
	assert.Equal(t, "u1", repo.products[out.ID].UserID, "el propietario es inmutable")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_YLuegoNotFound(t *testing.T) {
	uc, _ := newUseCase()
	out := createWidget(t, uc, "u1")

	require.NoError(t, uc.Delete("u1", out.ID))

	// Borrar un id ya borrado es NotFound, no éxito.
	assert.ErrorIs(t, uc.Delete("u1", out.ID), domain.ErrNotFound)
	_, err := uc.GetByOwner("u1", out.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_SoloDelPropietario(t *testing.T) {
	uc, _ := newUseCase()
	createWidget(t, uc, "u1")
	createWidget(t, uc, "u2")

	out, err := uc.List("u1", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "u1", out.Items[0].User)
}
