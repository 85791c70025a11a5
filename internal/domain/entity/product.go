package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-api/internal/domain"
)

// Product representa un producto perteneciente a exactamente un User.
// UserID es inmutable después de la creación; nunca se transfiere.
type Product struct {
	ID        string
	UserID    string
	Name      string
	Price     decimal.Decimal
	Discount  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FinalPrice precio final tras aplicar el descuento (derivado, no se persiste).
func (p *Product) FinalPrice() decimal.Decimal {
	return p.Price.Sub(p.Discount)
}

// Validate aplica las reglas de campo y la regla del registro completo.
// Acumula todos los mensajes en un ValidationError en vez de cortar en el primero.
func (p *Product) Validate() error {
	ve := &domain.ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		ve.Add("product_name", "Product name cannot be empty.")
	}
	if !p.Price.IsPositive() {
		ve.Add("price", "Price must be greater than zero.")
	}
	if p.Discount.IsNegative() {
		ve.Add("discount", "Discount cannot be negative.")
	}
	if ve.Empty() && p.Discount.GreaterThan(p.Price) {
		ve.Add(domain.NonFieldKey, "Discount cannot be greater than the price.")
	}
	if ve.Empty() {
		return nil
	}
	return ve
}
