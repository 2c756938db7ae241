package usecase

import (
	"fmt"

	"github.com/Agslz/inventory-control-api-rest/internal/application/dto"
	"github.com/Agslz/inventory-control-api-rest/internal/domain"
	"github.com/Agslz/inventory-control-api-rest/internal/domain/entity"
	"github.com/Agslz/inventory-control-api-rest/internal/domain/repository"
)

// PictureCodec es el contrato mínimo que el caso de uso necesita del códec de
// imágenes. Lo implementa codec.Zlib; la interfaz evita acoplar la aplicación
// al algoritmo concreto.
type PictureCodec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

// ProductUseCase orquesta el CRUD de productos. Las escrituras resuelven primero
// la categoría referenciada; las lecturas descomprimen la imagen de cada producto
// antes de armar el sobre de respuesta.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	codec      PictureCodec
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, codec PictureCodec) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, codec: codec}
}

// resolveCategory verifica la precondición de escritura: la categoría referenciada
// debe existir antes de cualquier mutación. Devuelve ErrNotFound si no resuelve.
func (uc *ProductUseCase) resolveCategory(id int64) (*entity.Category, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("resolver categoría %d: %w", id, err)
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// toResponses descomprime la imagen de cada producto y arma los DTOs de salida.
func (uc *ProductUseCase) toResponses(products []*entity.Product) ([]dto.ProductResponse, error) {
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		picture, err := uc.codec.Decompress(p.Picture)
		if err != nil {
			return nil, fmt.Errorf("descomprimir imagen del producto %d: %w", p.ID, err)
		}
		items = append(items, dto.ToProductResponse(p, picture))
	}
	return items, nil
}

// List devuelve todos los productos con la imagen descomprimida. Un resultado
// vacío se trata como no encontrado, no como éxito vacío (política heredada).
func (uc *ProductUseCase) List() (*dto.Envelope[dto.ProductResponse], dto.Kind) {
	products, err := uc.products.List()
	if err != nil {
		return dto.Fail[dto.ProductResponse]("error al consultar productos"), dto.KindInternal
	}
	if len(products) == 0 {
		return dto.Fail[dto.ProductResponse]("productos no encontrados"), dto.KindNotFound
	}
	items, err := uc.toResponses(products)
	if err != nil {
		return dto.Fail[dto.ProductResponse]("error al descomprimir la imagen del producto"), dto.KindInternal
	}
	return dto.OKList("productos encontrados", items), dto.KindOK
}

// GetByID busca un producto por id y descomprime su imagen.
func (uc *ProductUseCase) GetByID(id int64) (*dto.Envelope[dto.ProductResponse], dto.Kind) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return dto.Fail[dto.ProductResponse]("error al consultar el producto por id"), dto.KindInternal
	}
	if product == nil {
		return dto.Fail[dto.ProductResponse]("producto no encontrado"), dto.KindNotFound
	}
	picture, err := uc.codec.Decompress(product.Picture)
	if err != nil {
		return dto.Fail[dto.ProductResponse]("error al descomprimir la imagen del producto"), dto.KindInternal
	}
	return dto.OK("producto encontrado", dto.ToProductResponse(product, picture)), dto.KindOK
}

// GetByName busca por subcadena del nombre sin distinguir mayúsculas. La
// subcadena vacía empareja todo; cero coincidencias es no encontrado.
func (uc *ProductUseCase) GetByName(name string) (*dto.Envelope[dto.ProductResponse], dto.Kind) {
	products, err := uc.products.GetByNameLike(name)
	if err != nil {
		return dto.Fail[dto.ProductResponse]("error al buscar productos por nombre"), dto.KindInternal
	}
	if len(products) == 0 {
		return dto.Fail[dto.ProductResponse]("productos no encontrados"), dto.KindNotFound
	}
	items, err := uc.toResponses(products)
	if err != nil {
		return dto.Fail[dto.ProductResponse]("error al descomprimir la imagen del producto"), dto.KindInternal
	}
	return dto.OKList("productos encontrados", items), dto.KindOK
}

// Create resuelve la categoría y persiste el producto. La imagen ya viene
// comprimida desde la capa HTTP; el payload de respuesta la devuelve tal cual.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.Envelope[dto.ProductResponse], dto.Kind) {
	category, err := uc.resolveCategory(in.CategoryID)
	if err != nil {
		if k := dto.Classify(err); k == dto.KindNotFound {
			return dto.Fail[dto.ProductResponse]("categoría asociada al producto no encontrada"), k
		}
		return dto.Fail[dto.ProductResponse]("error al guardar el producto"), dto.KindInternal
	}

	product := &entity.Product{
		Name:     in.Name,
		Price:    in.Price,
		Account:  in.Account,
		Picture:  in.Picture,
		Category: category,
	}
	if err := uc.products.Create(product); err != nil {
		if k := dto.Classify(err); k == dto.KindBadRequest {
			return dto.Fail[dto.ProductResponse]("producto no guardado"), k
		}
		return dto.Fail[dto.ProductResponse]("error al guardar el producto"), dto.KindInternal
	}
	return dto.OK("producto guardado", dto.ToProductResponse(product, product.Picture)), dto.KindOK
}

// Update resuelve la categoría, carga el producto existente y sobreescribe sus
// campos mutables (account, category, name, picture, price) conservando el id.
// Si la categoría o el producto no existen, aborta sin mutar nada.
func (uc *ProductUseCase) Update(id int64, in dto.ProductRequest) (*dto.Envelope[dto.ProductResponse], dto.Kind) {
	category, err := uc.resolveCategory(in.CategoryID)
	if err != nil {
		if k := dto.Classify(err); k == dto.KindNotFound {
			return dto.Fail[dto.ProductResponse]("categoría asociada al producto no encontrada"), k
		}
		return dto.Fail[dto.ProductResponse]("error al actualizar el producto"), dto.KindInternal
	}

	existing, err := uc.products.GetByID(id)
	if err != nil {
		return dto.Fail[dto.ProductResponse]("error al actualizar el producto"), dto.KindInternal
	}
	if existing == nil {
		return dto.Fail[dto.ProductResponse]("producto no actualizado"), dto.KindNotFound
	}

	merged := MergeProduct(existing, in, category)
	if err := uc.products.Update(merged); err != nil {
		if k := dto.Classify(err); k == dto.KindBadRequest {
			return dto.Fail[dto.ProductResponse]("producto no actualizado"), k
		}
		return dto.Fail[dto.ProductResponse]("error al actualizar el producto"), dto.KindInternal
	}
	return dto.OK("producto actualizado", dto.ToProductResponse(merged, merged.Picture)), dto.KindOK
}

// DeleteByID elimina por id sin verificar existencia (borrado idempotente).
func (uc *ProductUseCase) DeleteByID(id int64) (*dto.Envelope[dto.ProductResponse], dto.Kind) {
	if err := uc.products.Delete(id); err != nil {
		return dto.Fail[dto.ProductResponse]("error al eliminar el producto"), dto.KindInternal
	}
	return dto.OK[dto.ProductResponse]("producto eliminado"), dto.KindOK
}
