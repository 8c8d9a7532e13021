package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dtroode/shopsense/internal/model"
)

var _ model.ProductStore = (*ProductRepository)(nil)

type ProductRepository struct {
	db          *Connection
	searchLimit int
}

func NewProductRepository(db *Connection, searchLimit int) *ProductRepository {
	return &ProductRepository{
		db:          db,
		searchLimit: searchLimit,
	}
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	var product model.Product
	query := `SELECT id, name, category, price, stock_quantity, created_at
			  FROM products WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID, &product.Name, &product.Category,
		&product.Price, &product.StockQuantity, &product.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Product{}, model.ErrNotFound
		}
		return model.Product{}, model.NewDataAccessError("get product by id", err)
	}

	return product, nil
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT id, name, category, price, stock_quantity, created_at
			  FROM products ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, model.NewDataAccessError("list products", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// Search matches the text against product name or category,
// case-insensitively. Results come back in relevance order: global order
// count descending, then id ascending.
func (r *ProductRepository) Search(ctx context.Context, text string) ([]model.Product, error) {
	query := `SELECT p.id, p.name, p.category, p.price, p.stock_quantity, p.created_at
			  FROM products p
			  LEFT JOIN orders o ON o.product_id = p.id
			  WHERE p.name ILIKE '%' || $1 || '%' OR p.category ILIKE '%' || $1 || '%'
			  GROUP BY p.id
			  ORDER BY COUNT(o.id) DESC, p.id
			  LIMIT $2`

	rows, err := r.db.Query(ctx, query, text, r.searchLimit)
	if err != nil {
		return nil, model.NewDataAccessError("search products", err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		var product model.Product
		err := rows.Scan(
			&product.ID, &product.Name, &product.Category,
			&product.Price, &product.StockQuantity, &product.CreatedAt,
		)
		if err != nil {
			return nil, model.NewDataAccessError("scan product row", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewDataAccessError("iterate product rows", err)
	}

	return products, nil
}
