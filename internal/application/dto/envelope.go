package dto

import (
	"errors"
	"net/http"

	"github.com/Agslz/inventory-control-api-rest/internal/domain"
)

// Códigos de estado del sobre de respuesta (contrato heredado del API original).
const (
	CodeOK   = "00"
	CodeFail = "-1"
)

// Kind clasifica el resultado de una operación de caso de uso. Es la única
// taxonomía que cruza la frontera del servicio: ningún error crudo de la base
// ni del códec llega al handler.
type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindBadRequest
	KindInternal
)

// httpByKind es la tabla única de traducción estado → código HTTP.
var httpByKind = map[Kind]int{
	KindOK:         http.StatusOK,
	KindNotFound:   http.StatusNotFound,
	KindBadRequest: http.StatusBadRequest,
	KindInternal:   http.StatusInternalServerError,
}

// HTTPStatus devuelve el código HTTP asociado al estado.
func (k Kind) HTTPStatus() int {
	if s, ok := httpByKind[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Classify convierte un error de repositorio o códec en un Kind.
// Se invoca una sola vez, en la frontera del caso de uso.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, domain.ErrNotFound):
		return KindNotFound
	case errors.Is(err, domain.ErrPersistenceRejected):
		return KindBadRequest
	default:
		return KindInternal
	}
}

// Metadata estado del sobre: mensaje fijo, código "00"/"-1" y detalle legible.
type Metadata struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Detail  string `json:"detail"`
}

// List envoltorio nombrado con la secuencia ordenada de entidades de una clase.
type List[T any] struct {
	Items []T `json:"items"`
}

// Envelope sobre uniforme de respuesta: toda operación, exitosa o no, devuelve
// esta misma forma para que la capa HTTP la serialice sin saber qué operación fue.
type Envelope[T any] struct {
	Metadata Metadata `json:"metadata"`
	Data     List[T]  `json:"data"`
}

// OK construye un sobre exitoso con los elementos dados.
func OK[T any](detail string, items ...T) *Envelope[T] {
	if items == nil {
		items = []T{}
	}
	return &Envelope[T]{
		Metadata: Metadata{Message: "Response Ok", Code: CodeOK, Detail: detail},
		Data:     List[T]{Items: items},
	}
}

// OKList construye un sobre exitoso a partir de una secuencia ya armada.
func OKList[T any](detail string, items []T) *Envelope[T] {
	if items == nil {
		items = []T{}
	}
	return &Envelope[T]{
		Metadata: Metadata{Message: "Response Ok", Code: CodeOK, Detail: detail},
		Data:     List[T]{Items: items},
	}
}

// Fail construye un sobre de fallo con el detalle dado y payload vacío.
func Fail[T any](detail string) *Envelope[T] {
	return &Envelope[T]{
		Metadata: Metadata{Message: "Response Not Ok", Code: CodeFail, Detail: detail},
		Data:     List[T]{Items: []T{}},
	}
}
