package handlers_test

import (
	"testing"
	"time"

	"minishop/internal/domain"
)

// Full shopping journey across the whole service constellation, in one
// fixture process: register, stock the catalog, order, pay, like.
func TestUserJourneyEndToEnd(t *testing.T) {
	app := newApp()

	user := decode[domain.User](t, do(t, app, jsonReq(t, "POST", "/api/users", domain.User{
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "juan.perez@email.com",
		Phone:     "+57 300 123 4567",
	})))
	if user.UserID == 0 {
		t.Fatal("user id not assigned")
	}

	cred := decode[domain.Credential](t, do(t, app, jsonReq(t, "POST", "/api/credentials", domain.Credential{
		Username: "juan.perez",
		Password: "securePassword123",
		UserID:   user.UserID,
	})))
	if cred.CredentialID == 0 {
		t.Fatal("credential id not assigned")
	}

	do(t, app, jsonReq(t, "POST", "/api/addresses", domain.Address{
		FullAddress: "Calle 123 #45-67, Bogotá, Colombia",
		PostalCode:  "110111",
		City:        "Bogotá",
		UserID:      user.UserID,
	}))

	category := decode[domain.Category](t, do(t, app, jsonReq(t, "POST", "/api/categories", domain.Category{
		CategoryTitle: "Electronics",
	})))

	product := decode[domain.Product](t, do(t, app, jsonReq(t, "POST", "/api/products", domain.Product{
		ProductTitle: "Laptop",
		SKU:          "LT-100",
		PriceUnit:    1299.99,
		Quantity:     5,
		CategoryID:   category.CategoryID,
	})))

	order := decode[domain.Order](t, do(t, app, jsonReq(t, "POST", "/api/orders", domain.Order{
		OrderDesc: "Juan's laptop order",
		OrderFee:  1299.99,
		UserID:    user.UserID,
	})))
	if order.OrderID == 0 {
		t.Fatal("order id not assigned")
	}

	do(t, app, jsonReq(t, "POST", "/api/order-items", domain.OrderItem{
		ProductID:       product.ProductID,
		OrderID:         order.OrderID,
		OrderedQuantity: 1,
	}))

	payment := decode[domain.Payment](t, do(t, app, jsonReq(t, "POST", "/api/payments", domain.Payment{
		IsPayed:       true,
		PaymentStatus: domain.PaymentCompleted,
		OrderID:       order.OrderID,
	})))
	if payment.PaymentID == 0 {
		t.Fatal("payment id not assigned")
	}

	// the order survives the journey untouched
	gotOrder := decode[domain.Order](t, do(t, app, jsonReq(t, "GET", "/api/orders/1", nil)))
	if gotOrder.OrderDesc != "Juan's laptop order" || gotOrder.UserID != user.UserID {
		t.Fatalf("order changed mid-journey: %+v", gotOrder)
	}

	// the completed payment shows up in the list
	payments := decode[domain.Collection[domain.Payment]](t, do(t, app, jsonReq(t, "GET", "/api/payments", nil)))
	found := false
	for _, p := range payments.Collection {
		if p.OrderID == order.OrderID && p.PaymentStatus == domain.PaymentCompleted && p.IsPayed {
			found = true
		}
	}
	if !found {
		t.Fatalf("completed payment missing from %+v", payments.Collection)
	}

	// like the product, retrieve it by pair, then unlike
	likeDate := time.Now().UTC().Format(domain.LikeDateLayout)
	do(t, app, jsonReq(t, "POST", "/api/favourites", domain.Favourite{
		UserID:    user.UserID,
		ProductID: product.ProductID,
		LikeDate:  likeDate,
	}))

	fav := decode[domain.Favourite](t, do(t, app, jsonReq(t, "GET", "/api/favourites/1/1/"+likeDate, nil)))
	if fav.LikeDate != likeDate {
		t.Fatalf("favourite not retrieved: %+v", fav)
	}

	if ok := decode[bool](t, do(t, app, jsonReq(t, "DELETE", "/api/favourites/1/1/"+likeDate, nil))); !ok {
		t.Fatal("favourite delete should report success")
	}
}
