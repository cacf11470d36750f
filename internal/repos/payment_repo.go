package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"minishop/internal/domain"
)

type PaymentRepo struct{ DB *sqlx.DB }

func NewPaymentRepo(db *sqlx.DB) *PaymentRepo { return &PaymentRepo{DB: db} }

func (r *PaymentRepo) Create(p domain.Payment) (domain.Payment, error) {
	if p.PaymentStatus == "" {
		p.PaymentStatus = domain.PaymentNotStarted
	}
	res, err := r.DB.Exec(`INSERT INTO payments(is_payed,payment_status,order_id) VALUES(?,?,?)`,
		p.IsPayed, string(p.PaymentStatus), p.OrderID)
	if err != nil {
		return domain.Payment{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Payment{}, err
	}
	p.PaymentID = int(id)
	return p, nil
}

func (r *PaymentRepo) ByID(id int) (domain.Payment, error) {
	var p domain.Payment
	err := r.DB.Get(&p, `SELECT payment_id,is_payed,payment_status,order_id FROM payments WHERE payment_id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Payment{}, fmt.Errorf("%w: id %d", ErrPaymentNotFound, id)
	}
	return p, err
}

func (r *PaymentRepo) All() ([]domain.Payment, error) {
	var out []domain.Payment
	err := r.DB.Select(&out, `SELECT payment_id,is_payed,payment_status,order_id FROM payments ORDER BY payment_id`)
	return out, err
}

func (r *PaymentRepo) SetStatus(id int, status domain.PaymentStatus, payed bool) error {
	res, err := r.DB.Exec(`UPDATE payments SET payment_status=?,is_payed=? WHERE payment_id=?`,
		string(status), payed, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: id %d", ErrPaymentNotFound, id)
	}
	return nil
}
