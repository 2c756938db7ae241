package http

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Agslz/inventory-control-api-rest/internal/application/dto"
	"github.com/Agslz/inventory-control-api-rest/internal/application/usecase"
)

// productExporter es el contrato mínimo que el handler necesita del exportador
// xlsx. Lo implementa *excel.ProductExporter; la interfaz evita acoplar la capa
// HTTP a la infraestructura concreta.
type productExporter interface {
	Export(products []dto.ProductResponse) ([]byte, error)
}

// ProductHandler maneja las peticiones HTTP para Product.
// Comprime la imagen recibida ANTES de invocar el caso de uso: el servicio
// persiste los bytes tal cual llegan.
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	codec    usecase.PictureCodec
	exporter productExporter
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, codec usecase.PictureCodec, exporter productExporter) *ProductHandler {
	return &ProductHandler{uc: uc, codec: codec, exporter: exporter}
}

// parseProductForm decodifica el formulario multipart (name, price, account,
// categoryId, picture) y comprime la imagen. Devuelve un detalle de error
// legible cuando algún campo no es válido.
func (h *ProductHandler) parseProductForm(c *fiber.Ctx) (dto.ProductRequest, string) {
	var in dto.ProductRequest

	in.Name = c.FormValue("name")
	if in.Name == "" {
		return in, "name es requerido"
	}

	price, err := decimal.NewFromString(c.FormValue("price"))
	if err != nil {
		return in, "price inválido"
	}
	in.Price = price

	account, err := strconv.Atoi(c.FormValue("account"))
	if err != nil {
		return in, "account inválido"
	}
	in.Account = account

	categoryID, err := strconv.ParseInt(c.FormValue("categoryId"), 10, 64)
	if err != nil || categoryID <= 0 {
		return in, "categoryId inválido"
	}
	in.CategoryID = categoryID

	fh, err := c.FormFile("picture")
	if err != nil {
		return in, "picture es requerido"
	}
	file, err := fh.Open()
	if err != nil {
		return in, "no se pudo leer picture"
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		return in, "no se pudo leer picture"
	}

	compressed, err := h.codec.Compress(raw)
	if err != nil {
		return in, "no se pudo comprimir picture"
	}
	in.Picture = compressed

	return in, ""
}

// List godoc
// @Summary      Listar productos (imagen descomprimida)
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.Envelope[dto.ProductResponse]
// @Failure      404  {object}  dto.Envelope[dto.ProductResponse]
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	env, kind := h.uc.List()
	return respond(c, env, kind)
}

// GetByID godoc
// @Summary      Obtener producto por id
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Envelope[dto.ProductResponse]
// @Failure      404  {object}  dto.Envelope[dto.ProductResponse]
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, dto.Fail[dto.ProductResponse]("id inválido"), dto.KindBadRequest)
	}
	env, kind := h.uc.GetByID(id)
	return respond(c, env, kind)
}

// GetByName godoc
// @Summary      Buscar productos por subcadena del nombre (sin distinguir mayúsculas)
// @Tags         products
// @Produce      json
// @Param        name  path  string  true  "Subcadena del nombre"
// @Success      200   {object}  dto.Envelope[dto.ProductResponse]
// @Failure      404   {object}  dto.Envelope[dto.ProductResponse]
// @Router       /api/v1/products/filter/{name} [get]
func (h *ProductHandler) GetByName(c *fiber.Ctx) error {
	env, kind := h.uc.GetByName(c.Params("name"))
	return respond(c, env, kind)
}

// Create godoc
// @Summary      Crear producto (multipart: name, price, account, categoryId, picture)
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Success      200  {object}  dto.Envelope[dto.ProductResponse]
// @Failure      400  {object}  dto.Envelope[dto.ProductResponse]
// @Failure      404  {object}  dto.Envelope[dto.ProductResponse]
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in, detail := h.parseProductForm(c)
	if detail != "" {
		return respond(c, dto.Fail[dto.ProductResponse](detail), dto.KindBadRequest)
	}
	env, kind := h.uc.Create(in)
	return respond(c, env, kind)
}

// Update godoc
// @Summary      Actualizar producto (multipart: name, price, account, categoryId, picture)
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.Envelope[dto.ProductResponse]
// @Failure      400  {object}  dto.Envelope[dto.ProductResponse]
// @Failure      404  {object}  dto.Envelope[dto.ProductResponse]
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, dto.Fail[dto.ProductResponse]("id inválido"), dto.KindBadRequest)
	}
	in, detail := h.parseProductForm(c)
	if detail != "" {
		return respond(c, dto.Fail[dto.ProductResponse](detail), dto.KindBadRequest)
	}
	env, kind := h.uc.Update(id, in)
	return respond(c, env, kind)
}

// DeleteByID godoc
// @Summary      Eliminar producto por id (idempotente)
// @Tags         products
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.Envelope[dto.ProductResponse]
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) DeleteByID(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return respond(c, dto.Fail[dto.ProductResponse]("id inválido"), dto.KindBadRequest)
	}
	env, kind := h.uc.DeleteByID(id)
	return respond(c, env, kind)
}

// ExportExcel godoc
// @Summary      Exportar el listado de productos como xlsx
// @Tags         products
// @Produce      octet-stream
// @Success      200  {file}  file
// @Failure      404  {object}  dto.Envelope[dto.ProductResponse]
// @Router       /api/v1/products/export/excel [get]
func (h *ProductHandler) ExportExcel(c *fiber.Ctx) error {
	env, kind := h.uc.List()
	if kind != dto.KindOK {
		return respond(c, env, kind)
	}
	out, err := h.exporter.Export(env.Data.Items)
	if err != nil {
		return respond(c, dto.Fail[dto.ProductResponse]("error al exportar productos"), dto.KindInternal)
	}
	c.Set(fiber.HeaderContentType, "application/octet-stream")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=result_product.xlsx`)
	return c.Send(out)
}
