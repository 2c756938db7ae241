package repository

import "github.com/Agslz/inventory-control-api-rest/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Los Get* devuelven (nil, nil) cuando no hay fila; los errores nativos de la
// base se traducen a centinelas de dominio o se envuelven.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) error
}
