package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Agslz/inventory-control-api-rest/internal/application/usecase"
	"github.com/Agslz/inventory-control-api-rest/internal/domain/entity"
	"github.com/Agslz/inventory-control-api-rest/internal/infrastructure/excel"
	apphttp "github.com/Agslz/inventory-control-api-rest/internal/interfaces/http"
	"github.com/Agslz/inventory-control-api-rest/pkg/codec"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria y helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	byID   map[int64]*entity.Category
	nextID int64
}

func (m *memCategoryRepo) Create(c *entity.Category) error {
	m.nextID++
	c.ID = m.nextID
	clone := *c
	m.byID[clone.ID] = &clone
	return nil
}

func (m *memCategoryRepo) GetByID(id int64) (*entity.Category, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (m *memCategoryRepo) List() ([]*entity.Category, error) {
	list := make([]*entity.Category, 0, len(m.byID))
	for _, c := range m.byID {
		clone := *c
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *memCategoryRepo) Update(c *entity.Category) error {
	clone := *c
	m.byID[clone.ID] = &clone
	return nil
}

func (m *memCategoryRepo) Delete(id int64) error {
	delete(m.byID, id)
	return nil
}

type memProductRepo struct {
	byID   map[int64]*entity.Product
	nextID int64
}

func (m *memProductRepo) Create(p *entity.Product) error {
	m.nextID++
	p.ID = m.nextID
	clone := *p
	m.byID[clone.ID] = &clone
	return nil
}

func (m *memProductRepo) GetByID(id int64) (*entity.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (m *memProductRepo) GetByNameLike(name string) ([]*entity.Product, error) {
	all, _ := m.List()
	needle := strings.ToLower(name)
	var matched []*entity.Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (m *memProductRepo) List() ([]*entity.Product, error) {
	list := make([]*entity.Product, 0, len(m.byID))
	for _, p := range m.byID {
		clone := *p
		list = append(list, &clone)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (m *memProductRepo) Update(p *entity.Product) error {
	clone := *p
	m.byID[clone.ID] = &clone
	return nil
}

func (m *memProductRepo) Delete(id int64) error {
	delete(m.byID, id)
	return nil
}

// buildTestApp arma la aplicación completa sobre repos en memoria y el códec real.
func buildTestApp(t *testing.T) (*fiber.App, *memCategoryRepo, *memProductRepo) {
	t.Helper()
	categories := &memCategoryRepo{byID: map[int64]*entity.Category{}}
	products := &memProductRepo{byID: map[int64]*entity.Product{}}
	zl := codec.NewZlib()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CategoryUC: usecase.NewCategoryUseCase(categories),
		ProductUC:  usecase.NewProductUseCase(products, categories, zl),
		Codec:      zl,
		Exporter:   excel.NewProductExporter(),
	})
	return app, categories, products
}

// envelope forma JSON del sobre de respuesta para decodificar en tests.
type envelope struct {
	Metadata struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Detail  string `json:"detail"`
	} `json:"metadata"`
	Data struct {
		Items []struct {
			ID      int64  `json:"id"`
			Name    string `json:"name"`
			Price   string `json:"price"`
			Account int    `json:"account"`
			Picture []byte `json:"picture"`
		} `json:"items"`
	} `json:"data"`
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// multipartProduct arma el formulario multipart que consume el handler de productos.
func multipartProduct(t *testing.T, name, price, account, categoryID string, picture []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("name", name))
	require.NoError(t, w.WriteField("price", price))
	require.NoError(t, w.WriteField("account", account))
	require.NoError(t, w.WriteField("categoryId", categoryID))
	fw, err := w.CreateFormFile("picture", "picture.png")
	require.NoError(t, err)
	_, err = fw.Write(picture)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func createProduct(t *testing.T, app *fiber.App, name, categoryID string, picture []byte) envelope {
	t.Helper()
	body, contentType := multipartProduct(t, name, "10", "5", categoryID, picture)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	req.Header.Set("Content-Type", contentType)
	resp := doRequest(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decodeEnvelope(t, resp)
}

func seedCategory(repo *memCategoryRepo, name string) int64 {
	c := &entity.Category{Name: name}
	_ = repo.Create(c)
	return c.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreateYGetByID(t *testing.T) {
	app, categories, products := buildTestApp(t)
	catID := seedCategory(categories, "Electronics")

	raw := []byte("contenido de la imagen")
	env := createProduct(t, app, "Mouse", fmt.Sprint(catID), raw)

	assert.Equal(t, "00", env.Metadata.Code)
	require.Len(t, env.Data.Items, 1)
	id := env.Data.Items[0].ID
	assert.NotZero(t, id)

	// En reposo la imagen está comprimida
	stored := products.byID[id]
	require.NotNil(t, stored)
	assert.NotEqual(t, raw, stored.Picture)

	// GET descomprime y devuelve los bytes originales
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/products/%d", id), nil)
	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	getEnv := decodeEnvelope(t, resp)
	require.Len(t, getEnv.Data.Items, 1)
	assert.Equal(t, raw, getEnv.Data.Items[0].Picture)
}

func TestProductCreate_CategoriaInexistenteRetorna404(t *testing.T) {
	app, _, products := buildTestApp(t)

	body, contentType := multipartProduct(t, "Mouse", "10", "5", "99", []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "-1", env.Metadata.Code)
	assert.Empty(t, products.byID, "no debe persistirse nada")
}

func TestProductCreate_FormularioInvalidoRetorna400(t *testing.T) {
	app, categories, _ := buildTestApp(t)
	seedCategory(categories, "Electronics")

	body, contentType := multipartProduct(t, "Mouse", "no-numérico", "5", "1", []byte("img"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", body)
	req.Header.Set("Content-Type", contentType)

	resp := doRequest(t, app, req)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "-1", env.Metadata.Code)
	assert.Equal(t, "price inválido", env.Metadata.Detail)
}

// La lista vacía responde 404, no 200 con payload vacío.
func TestProductList_VaciaRetorna404(t *testing.T) {
	app, _, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "-1", env.Metadata.Code)
}

func TestProductGetByName_Filtro(t *testing.T) {
	app, categories, _ := buildTestApp(t)
	catID := seedCategory(categories, "Electronics")
	createProduct(t, app, "laptop-x1", fmt.Sprint(catID), []byte("img"))
	createProduct(t, app, "Mouse", fmt.Sprint(catID), []byte("img"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/filter/LAPTOP", nil)
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, "laptop-x1", env.Data.Items[0].Name)
}

// Borrar un id nunca creado responde 200 (borrado idempotente).
func TestProductDelete_IDInexistenteRetorna200(t *testing.T) {
	app, _, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/products/777", nil)
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.Equal(t, "00", env.Metadata.Code)
}

func TestProductExportExcel(t *testing.T) {
	app, categories, _ := buildTestApp(t)
	catID := seedCategory(categories, "Electronics")
	createProduct(t, app, "Mouse", fmt.Sprint(catID), []byte("img"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/export/excel", nil)
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "result_product.xlsx")

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("PK")), "un xlsx es un contenedor ZIP")
}

func TestProductExportExcel_SinProductosRetorna404(t *testing.T) {
	app, _, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/export/excel", nil)
	resp := doRequest(t, app, req)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
