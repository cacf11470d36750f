package perf

import (
	"github.com/google/uuid"

	"minishop/internal/domain"
)

// DefaultTasks is the standard journey mix: mostly reads across the
// service constellation, with a trickle of user and order writes
// carrying unique payloads.
func DefaultTasks() []Task {
	return []Task{
		{Name: "health", Method: "GET", Endpoint: "/healthz", Weight: 3},
		{Name: "browse-products", Method: "GET", Endpoint: "/api/products", Weight: 4},
		{Name: "list-payments", Method: "GET", Endpoint: "/api/payments", Weight: 2},
		{Name: "list-order-items", Method: "GET", Endpoint: "/api/order-items", Weight: 2},
		{Name: "list-favourites", Method: "GET", Endpoint: "/api/favourites", Weight: 2},
		{
			Name: "register-user", Method: "POST", Endpoint: "/api/users", Weight: 1,
			Body: func() any {
				tag := uuid.NewString()[:8]
				return domain.User{
					FirstName: "Load",
					LastName:  "Tester",
					Email:     "load." + tag + "@minishop.test",
					Phone:     "+1 555 010 0199",
				}
			},
		},
		{
			Name: "place-order", Method: "POST", Endpoint: "/api/orders", Weight: 1,
			Body: func() any {
				return domain.Order{OrderDesc: "loadgen order " + uuid.NewString()[:8], OrderFee: 9.99, UserID: 1}
			},
		},
	}
}
