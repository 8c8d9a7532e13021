package postgres

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/shopsense/internal/model"
)

var _ model.OrderStore = (*OrderRepository)(nil)

type OrderRepository struct {
	db *Connection
}

func NewOrderRepository(db *Connection) *OrderRepository {
	return &OrderRepository{
		db: db,
	}
}

func (r *OrderRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	query := `SELECT id, user_id, product_id, quantity, total_price, order_date, status
			  FROM orders WHERE user_id = $1 ORDER BY order_date, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, model.NewDataAccessError("get orders by user id", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var order model.Order
		err := rows.Scan(
			&order.ID, &order.UserID, &order.ProductID,
			&order.Quantity, &order.TotalPrice, &order.OrderDate, &order.Status,
		)
		if err != nil {
			return nil, model.NewDataAccessError("scan order row", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewDataAccessError("iterate order rows", err)
	}

	return orders, nil
}

func (r *OrderRepository) GetGlobalOrderCounts(ctx context.Context) (map[uuid.UUID]int, error) {
	query := `SELECT product_id, COUNT(*) FROM orders GROUP BY product_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, model.NewDataAccessError("get global order counts", err)
	}
	defer rows.Close()

	counts := make(map[uuid.UUID]int)
	for rows.Next() {
		var productID uuid.UUID
		var count int
		if err := rows.Scan(&productID, &count); err != nil {
			return nil, model.NewDataAccessError("scan order count row", err)
		}
		counts[productID] = count
	}
	if err := rows.Err(); err != nil {
		return nil, model.NewDataAccessError("iterate order count rows", err)
	}

	return counts, nil
}
