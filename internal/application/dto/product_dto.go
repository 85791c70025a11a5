package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. El propietario sale del
// token, nunca del cuerpo.
type CreateProductRequest struct {
	ProductName string          `json:"product_name" validate:"required,min=1,max=255"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
}

// UpdateProductRequest entrada para actualizar un producto. Campos en puntero:
// los omitidos conservan su valor actual.
type UpdateProductRequest struct {
	ProductName *string          `json:"product_name" validate:"omitempty,min=1,max=255"`
	Price       *decimal.Decimal `json:"price"`
	Discount    *decimal.Decimal `json:"discount"`
}

// ProductResponse salida de un producto. User es la referencia al propietario
// (solo lectura); FinalPrice es derivado, no se persiste.
type ProductResponse struct {
	ID          string          `json:"id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Discount    decimal.Decimal `json:"discount"`
	FinalPrice  decimal.Decimal `json:"final_price"`
	User        string          `json:"user"`
}

// ProductListResponse lista de productos del usuario autenticado.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
