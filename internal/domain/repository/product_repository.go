package repository

import "github.com/Agslz/inventory-control-api-rest/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven el producto con su categoría resuelta (join).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id int64) (*entity.Product, error)
	// GetByNameLike busca por subcadena del nombre sin distinguir mayúsculas.
	// La subcadena vacía empareja todos los productos.
	GetByNameLike(name string) ([]*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id int64) error
}
