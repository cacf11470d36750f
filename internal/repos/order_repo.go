package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"minishop/internal/domain"
)

type OrderRepo struct{ DB *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{DB: db} }

func (r *OrderRepo) Create(o domain.Order) (domain.Order, error) {
	res, err := r.DB.Exec(`INSERT INTO orders(order_desc,order_fee,user_id) VALUES(?,?,?)`,
		o.OrderDesc, o.OrderFee, o.UserID)
	if err != nil {
		return domain.Order{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Order{}, err
	}
	o.OrderID = int(id)
	return o, nil
}

func (r *OrderRepo) ByID(id int) (domain.Order, error) {
	var o domain.Order
	err := r.DB.Get(&o, `SELECT order_id,order_desc,order_fee,user_id FROM orders WHERE order_id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
	}
	return o, err
}

func (r *OrderRepo) All() ([]domain.Order, error) {
	var out []domain.Order
	err := r.DB.Select(&out, `SELECT order_id,order_desc,order_fee,user_id FROM orders ORDER BY order_id`)
	return out, err
}

func (r *OrderRepo) Update(o domain.Order) (domain.Order, error) {
	res, err := r.DB.Exec(`UPDATE orders SET order_desc=?,order_fee=?,user_id=? WHERE order_id=?`,
		o.OrderDesc, o.OrderFee, o.UserID, o.OrderID)
	if err != nil {
		return domain.Order{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Order{}, fmt.Errorf("%w: id %d", ErrOrderNotFound, o.OrderID)
	}
	return o, nil
}

func (r *OrderRepo) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM orders WHERE order_id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: id %d", ErrOrderNotFound, id)
	}
	return nil
}

// AddItem upserts on the (productId, orderId) composite key: re-adding
// the same product to an order replaces the quantity.
func (r *OrderRepo) AddItem(oi domain.OrderItem) error {
	_, err := r.DB.Exec(`INSERT INTO order_items(product_id,order_id,ordered_quantity) VALUES(?,?,?)
	                     ON CONFLICT(product_id,order_id) DO UPDATE SET ordered_quantity=excluded.ordered_quantity`,
		oi.ProductID, oi.OrderID, oi.OrderedQuantity)
	return err
}

func (r *OrderRepo) Items() ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	err := r.DB.Select(&out, `SELECT product_id,order_id,ordered_quantity FROM order_items ORDER BY order_id,product_id`)
	return out, err
}

func (r *OrderRepo) ItemsByOrder(orderID int) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	err := r.DB.Select(&out, `SELECT product_id,order_id,ordered_quantity FROM order_items WHERE order_id=? ORDER BY product_id`, orderID)
	return out, err
}
