package domain

type PaymentStatus string

const (
	PaymentNotStarted PaymentStatus = "NOT_STARTED"
	PaymentInProgress PaymentStatus = "IN_PROGRESS"
	PaymentCompleted  PaymentStatus = "COMPLETED"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentNotStarted, PaymentInProgress, PaymentCompleted:
		return true
	}
	return false
}

type Payment struct {
	PaymentID     int           `json:"paymentId" db:"payment_id"`
	IsPayed       bool          `json:"isPayed" db:"is_payed"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty" db:"payment_status"`
	OrderID       int           `json:"orderId,omitempty" db:"order_id"`
}
