package usecase

import (
	"github.com/Agslz/inventory-control-api-rest/internal/application/dto"
	"github.com/Agslz/inventory-control-api-rest/internal/domain/entity"
	"github.com/Agslz/inventory-control-api-rest/internal/domain/repository"
)

// CategoryUseCase orquesta el CRUD de categorías. Cada operación devuelve el
// sobre uniforme de respuesta más el estado que la capa HTTP traduce a un código.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List devuelve todas las categorías. Una lista vacía sigue siendo éxito
// (a diferencia de los productos, donde vacío se trata como no encontrado).
func (uc *CategoryUseCase) List() (*dto.Envelope[dto.CategoryResponse], dto.Kind) {
	categories, err := uc.repo.List()
	if err != nil {
		return dto.Fail[dto.CategoryResponse]("error al consultar categorías"), dto.KindInternal
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.ToCategoryResponse(c))
	}
	return dto.OKList("consulta exitosa", items), dto.KindOK
}

// GetByID busca una categoría por id.
func (uc *CategoryUseCase) GetByID(id int64) (*dto.Envelope[dto.CategoryResponse], dto.Kind) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return dto.Fail[dto.CategoryResponse]("error al consultar la categoría por id"), dto.KindInternal
	}
	if category == nil {
		return dto.Fail[dto.CategoryResponse]("categoría no encontrada"), dto.KindNotFound
	}
	return dto.OK("categoría encontrada", dto.ToCategoryResponse(category)), dto.KindOK
}

// Create persiste una nueva categoría con id asignado por el store.
func (uc *CategoryUseCase) Create(in dto.CategoryRequest) (*dto.Envelope[dto.CategoryResponse], dto.Kind) {
	category := &entity.Category{
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.repo.Create(category); err != nil {
		if k := dto.Classify(err); k == dto.KindBadRequest {
			return dto.Fail[dto.CategoryResponse]("categoría no guardada"), k
		}
		return dto.Fail[dto.CategoryResponse]("error al guardar la categoría"), dto.KindInternal
	}
	return dto.OK("categoría guardada", dto.ToCategoryResponse(category)), dto.KindOK
}

// Update carga el registro por id y sobreescribe solo name y description
// (actualización parcial, no reemplazo completo).
func (uc *CategoryUseCase) Update(id int64, in dto.CategoryRequest) (*dto.Envelope[dto.CategoryResponse], dto.Kind) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return dto.Fail[dto.CategoryResponse]("error al actualizar la categoría"), dto.KindInternal
	}
	if existing == nil {
		return dto.Fail[dto.CategoryResponse]("categoría no encontrada"), dto.KindNotFound
	}
	merged := MergeCategory(existing, in)
	if err := uc.repo.Update(merged); err != nil {
		if k := dto.Classify(err); k == dto.KindBadRequest {
			return dto.Fail[dto.CategoryResponse]("categoría no actualizada"), k
		}
		return dto.Fail[dto.CategoryResponse]("error al actualizar la categoría"), dto.KindInternal
	}
	return dto.OK("categoría actualizada", dto.ToCategoryResponse(merged)), dto.KindOK
}

// DeleteByID elimina por id sin verificar existencia: borrar un id inexistente
// también es éxito (política heredada del sistema original).
func (uc *CategoryUseCase) DeleteByID(id int64) (*dto.Envelope[dto.CategoryResponse], dto.Kind) {
	if err := uc.repo.Delete(id); err != nil {
		return dto.Fail[dto.CategoryResponse]("error al eliminar la categoría"), dto.KindInternal
	}
	return dto.OK[dto.CategoryResponse]("registro eliminado"), dto.KindOK
}
