package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Agslz/inventory-control-api-rest/internal/domain/entity"
)

// ProductRequest datos de entrada para crear o actualizar un producto.
// Picture llega YA comprimida: la capa HTTP aplica el códec antes de invocar
// el caso de uso (igual que el controller original).
type ProductRequest struct {
	Name       string
	Price      decimal.Decimal
	Account    int
	Picture    []byte
	CategoryID int64
}

// ProductResponse representación de salida de un producto.
// Picture lleva los bytes descomprimidos (base64 en JSON).
type ProductResponse struct {
	ID       int64             `json:"id"`
	Name     string            `json:"name"`
	Price    decimal.Decimal   `json:"price"`
	Account  int               `json:"account"`
	Picture  []byte            `json:"picture"`
	Category *CategoryResponse `json:"category,omitempty"`
}

// ToProductResponse mapea la entidad a su DTO de salida con la imagen ya descomprimida.
func ToProductResponse(p *entity.Product, picture []byte) ProductResponse {
	out := ProductResponse{
		ID:      p.ID,
		Name:    p.Name,
		Price:   p.Price,
		Account: p.Account,
		Picture: picture,
	}
	if p.Category != nil {
		cat := ToCategoryResponse(p.Category)
		out.Category = &cat
	}
	return out
}
