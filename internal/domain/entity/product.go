package entity

import "github.com/shopspring/decimal"

// Product representa un producto del inventario.
//
// Picture guarda los bytes de la imagen SIEMPRE comprimidos con zlib; solo se
// descomprimen, de forma transitoria, al construir una respuesta de lectura.
// Category se resuelve en el momento de escribir: debe existir o la escritura se rechaza.
type Product struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Account  int // cantidad en existencia
	Picture  []byte
	Category *Category
}
