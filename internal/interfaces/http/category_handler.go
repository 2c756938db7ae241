package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Agslz/inventory-control-api-rest/internal/application/dto"
	"github.com/Agslz/inventory-control-api-rest/internal/application/usecase"
)

// CategoryHandler maneja las peticiones HTTP para Category.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// parseID convierte el path param :id a int64.
func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respond serializa el sobre con el código HTTP que corresponde al estado.
func respond[T any](c *fiber.Ctx, env *dto.Envelope[T], kind dto.Kind) error {
	return c.Status(kind.HTTPStatus()).JSON(env)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {object}  dto.Envelope[dto.CategoryResponse]
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	env, kind := h.uc.List()
	return respond(c, env, kind)
}

// GetByID godoc
// @Summary      Obtener categoría por id
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope[dto.CategoryResponse]
// @Failure      404  {object}  dto.Envelope[dto.CategoryResponse]
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, dto.Fail[dto.CategoryResponse]("id inválido"), dto.KindBadRequest)
	}
	env, kind := h.uc.GetByID(id)
	return respond(c, env, kind)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría"
// @Success      200   {object}  dto.Envelope[dto.CategoryResponse]
// @Failure      400   {object}  dto.Envelope[dto.CategoryResponse]
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, dto.Fail[dto.CategoryResponse]("cuerpo inválido"), dto.KindBadRequest)
	}
	if in.Name == "" {
		return respond(c, dto.Fail[dto.CategoryResponse]("name es requerido"), dto.KindBadRequest)
	}
	env, kind := h.uc.Create(in)
	return respond(c, env, kind)
}

// Update godoc
// @Summary      Actualizar categoría (solo name y description)
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Envelope[dto.CategoryResponse]
// @Failure      404   {object}  dto.Envelope[dto.CategoryResponse]
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, dto.Fail[dto.CategoryResponse]("id inválido"), dto.KindBadRequest)
	}
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return respond(c, dto.Fail[dto.CategoryResponse]("cuerpo inválido"), dto.KindBadRequest)
	}
	env, kind := h.uc.Update(id, in)
	return respond(c, env, kind)
}

// DeleteByID godoc
// @Summary      Eliminar categoría por id
// @Tags         categories
// @Produce      json
// @Param        id   path  int  true  "ID de la categoría"
// @Success      200  {object}  dto.Envelope[dto.CategoryResponse]
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) DeleteByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, dto.Fail[dto.CategoryResponse]("id inválido"), dto.KindBadRequest)
	}
	env, kind := h.uc.DeleteByID(id)
	return respond(c, env, kind)
}
