package usecase

import (
	"github.com/Agslz/inventory-control-api-rest/internal/application/dto"
	"github.com/Agslz/inventory-control-api-rest/internal/domain/entity"
)

// MergeCategory aplica una actualización parcial: solo name y description se
// sobreescriben sobre el registro cargado; el id se conserva. Independiente del
// store para poder probarse sin base de datos.
func MergeCategory(existing *entity.Category, in dto.CategoryRequest) *entity.Category {
	merged := *existing
	merged.Name = in.Name
	merged.Description = in.Description
	return &merged
}

// MergeProduct sobreescribe account, category, name, picture y price sobre el
// registro cargado, conservando el id. A diferencia de la categoría, aquí se
// reemplazan todos los campos mutables (política heredada del sistema original).
func MergeProduct(existing *entity.Product, in dto.ProductRequest, category *entity.Category) *entity.Product {
	merged := *existing
	merged.Name = in.Name
	merged.Price = in.Price
	merged.Account = in.Account
	merged.Picture = in.Picture
	merged.Category = category
	return &merged
}
