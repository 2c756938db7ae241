package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Agslz/inventory-control-api-rest/internal/domain"
	"github.com/Agslz/inventory-control-api-rest/internal/domain/entity"
	"github.com/Agslz/inventory-control-api-rest/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// Las lecturas hacen join con categories para devolver la categoría resuelta.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.name, p.price, p.account, p.picture,
	c.id, c.name, c.description`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var c entity.Category
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Account, &p.Picture,
		&c.ID, &c.Name, &c.Description); err != nil {
		return nil, err
	}
	p.Category = &c
	return &p, nil
}

// Create persiste un nuevo producto (imagen ya comprimida) y asigna el id generado.
// Una violación de integridad (FK de categoría incluida) se traduce a ErrPersistenceRejected.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, price, account, picture, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Price, product.Account, product.Picture, product.Category.ID,
	).Scan(&product.ID)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrPersistenceRejected
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por id con su categoría. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id int64) (*entity.Product, error) {
	query := `
		SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByNameLike busca por subcadena del nombre sin distinguir mayúsculas (ILIKE).
// La subcadena vacía empareja todos los productos.
func (r *ProductRepo) GetByNameLike(name string) ([]*entity.Product, error) {
	query := `
		SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.name ILIKE '%' || $1 || '%'
		ORDER BY p.id`
	rows, err := r.q.Query(context.Background(), query, name)
	if err != nil {
		return nil, fmt.Errorf("search products by name: %w", err)
	}
	return collectProducts(rows)
}

// List devuelve todos los productos con su categoría, ordenados por id.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT` + productColumns + `
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update sobreescribe los campos mutables de un producto existente.
// Si la fila no existe devuelve ErrPersistenceRejected (la base no aplicó nada).
func (r *ProductRepo) Update(product *entity.Product) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET name = $2, price = $3, account = $4, picture = $5, category_id = $6 WHERE id = $1`,
		product.ID, product.Name, product.Price, product.Account, product.Picture, product.Category.ID,
	)
	if err != nil {
		if isIntegrityViolation(err) {
			return domain.ErrPersistenceRejected
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrPersistenceRejected
	}
	return nil
}

// Delete elimina un producto por id. Borrar un id inexistente no es error.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
