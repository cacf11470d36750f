package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"minishop/internal/domain"
	"minishop/internal/fixture"
	"minishop/internal/http/handlers"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(requestid.New())
	handlers.NewDeps(fixture.NewStore()).Register(app)
	return app
}

func jsonReq(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatal(err)
		}
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s: status %d, body %s", req.Method, req.URL.Path, resp.StatusCode, body)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestCreateUserAssignsSequentialIDs(t *testing.T) {
	app := newApp()

	first := decode[domain.User](t, do(t, app, jsonReq(t, "POST", "/api/users", domain.User{FirstName: "Ana"})))
	second := decode[domain.User](t, do(t, app, jsonReq(t, "POST", "/api/users", domain.User{FirstName: "Luis"})))

	if first.UserID != 1 || second.UserID != 2 {
		t.Fatalf("want ids 1,2; got %d,%d", first.UserID, second.UserID)
	}
	if first.FirstName != "Ana" {
		t.Fatalf("payload fields lost: %+v", first)
	}
}

func TestGetUserMissSynthesizesDefault(t *testing.T) {
	app := newApp()

	u := decode[domain.User](t, do(t, app, jsonReq(t, "GET", "/api/users/99", nil)))
	if u.UserID != 99 {
		t.Fatalf("default must carry requested id, got %d", u.UserID)
	}
	if u.FirstName != "Juan" || u.LastName != "Pérez" ||
		u.Email != "juan.perez@email.com" || u.Phone != "+57 300 123 4567" {
		t.Fatalf("unexpected default user: %+v", u)
	}
}

func TestGetProductMissSynthesizesBareDefault(t *testing.T) {
	app := newApp()

	p := decode[domain.Product](t, do(t, app, jsonReq(t, "GET", "/api/products/7", nil)))
	if p.ProductID != 7 {
		t.Fatalf("default must carry requested id, got %d", p.ProductID)
	}
	if p.ProductTitle != "" || p.SKU != "" || p.PriceUnit != 0 || p.Quantity != 0 {
		t.Fatalf("default product must carry the id only, got %+v", p)
	}
}

func TestGetOrderMissSynthesizesTestOrder(t *testing.T) {
	app := newApp()

	o := decode[domain.Order](t, do(t, app, jsonReq(t, "GET", "/api/orders/12", nil)))
	if o.OrderID != 12 || o.OrderDesc != "Test Order" {
		t.Fatalf("unexpected default order: %+v", o)
	}
}

func TestProductCreateThenListAndGet(t *testing.T) {
	app := newApp()

	created := decode[domain.Product](t, do(t, app, jsonReq(t, "POST", "/api/products",
		domain.Product{ProductTitle: "Mouse", SKU: "MS-1", PriceUnit: 19.9, Quantity: 10})))
	if created.ProductID != 1 {
		t.Fatalf("want product id 1, got %d", created.ProductID)
	}

	got := decode[domain.Product](t, do(t, app, jsonReq(t, "GET", "/api/products/1", nil)))
	if got != created {
		t.Fatalf("get mismatch: %+v vs %+v", got, created)
	}

	list := decode[domain.Collection[domain.Product]](t, do(t, app, jsonReq(t, "GET", "/api/products", nil)))
	if len(list.Collection) != 1 || list.Collection[0] != created {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestOrderItemsAndPaymentsUseCollectionEnvelope(t *testing.T) {
	app := newApp()

	do(t, app, jsonReq(t, "POST", "/api/order-items", domain.OrderItem{ProductID: 1, OrderID: 2, OrderedQuantity: 3}))
	do(t, app, jsonReq(t, "POST", "/api/payments", domain.Payment{OrderID: 2, PaymentStatus: domain.PaymentNotStarted}))

	items := decode[domain.Collection[domain.OrderItem]](t, do(t, app, jsonReq(t, "GET", "/api/order-items", nil)))
	if len(items.Collection) != 1 || items.Collection[0].OrderedQuantity != 3 {
		t.Fatalf("unexpected order items: %+v", items)
	}

	payments := decode[domain.Collection[domain.Payment]](t, do(t, app, jsonReq(t, "GET", "/api/payments", nil)))
	if len(payments.Collection) != 1 || payments.Collection[0].PaymentID != 1 {
		t.Fatalf("unexpected payments: %+v", payments)
	}
}

func TestFavouriteLookupIgnoresLikeDateSegment(t *testing.T) {
	app := newApp()

	fav := domain.Favourite{UserID: 5, ProductID: 9, LikeDate: "01-06-2025__10:00:00"}
	do(t, app, jsonReq(t, "POST", "/api/favourites", fav))

	// any likeDate segment retrieves the (5,9) favourite
	got := decode[domain.Favourite](t, do(t, app, jsonReq(t, "GET", "/api/favourites/5/9/whenever", nil)))
	if got != fav {
		t.Fatalf("want %+v, got %+v", fav, got)
	}

	// miss synthesizes userId/productId only
	missing := decode[domain.Favourite](t, do(t, app, jsonReq(t, "GET", "/api/favourites/8/3/whenever", nil)))
	if missing.UserID != 8 || missing.ProductID != 3 || missing.LikeDate != "" {
		t.Fatalf("unexpected default favourite: %+v", missing)
	}
}

func TestDeleteFavouriteAlwaysReportsSuccess(t *testing.T) {
	app := newApp()

	ok := decode[bool](t, do(t, app, jsonReq(t, "DELETE", "/api/favourites/1/2/never-existed", nil)))
	if !ok {
		t.Fatal("delete must report success even for unknown favourites")
	}
}

func TestAddressCredentialCategoryGetGeneratedIDs(t *testing.T) {
	app := newApp()

	addr := decode[domain.Address](t, do(t, app, jsonReq(t, "POST", "/api/addresses", domain.Address{City: "Bogotá", UserID: 1})))
	if addr.AddressID != 1 || addr.City != "Bogotá" {
		t.Fatalf("unexpected address: %+v", addr)
	}

	cred := decode[domain.Credential](t, do(t, app, jsonReq(t, "POST", "/api/credentials", domain.Credential{Username: "ana", UserID: 1})))
	if cred.CredentialID != 1 {
		t.Fatalf("unexpected credential: %+v", cred)
	}

	cat := decode[domain.Category](t, do(t, app, jsonReq(t, "POST", "/api/categories", domain.Category{CategoryTitle: "Games"})))
	if cat.CategoryID != 1 {
		t.Fatalf("unexpected category: %+v", cat)
	}
}

func TestMalformedBodyRejected(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("POST", "/api/users", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("want 400 for malformed body, got %d", resp.StatusCode)
	}
}
