package fixture

import (
	"minishop/internal/domain"
)

// Store is the in-memory system-of-record substitute used by the e2e
// harness. Each entity kind has its own id sequence and its own
// append-only collection; nothing here survives a restart.
//
// A Store must be constructed with NewStore and passed explicitly to
// whatever needs it; there is no package-level instance.
type Store struct {
	userIDs       sequence
	productIDs    sequence
	orderIDs      sequence
	paymentIDs    sequence
	addressIDs    sequence
	credentialIDs sequence
	categoryIDs   sequence

	users      table[domain.User]
	products   table[domain.Product]
	orders     table[domain.Order]
	payments   table[domain.Payment]
	orderItems table[domain.OrderItem]
	favourites table[domain.Favourite]
}

func NewStore() *Store {
	return &Store{}
}

// NextUserID returns the next unused user id. Ids start at 1 and are
// never reused within a process lifetime.
func (s *Store) NextUserID() int { return s.userIDs.next() }

func (s *Store) AddUser(u domain.User) { s.users.add(u) }

func (s *Store) UserByID(id int) (domain.User, bool) {
	return s.users.find(func(u domain.User) bool { return u.UserID == id })
}

func (s *Store) NextProductID() int { return s.productIDs.next() }

func (s *Store) AddProduct(p domain.Product) { s.products.add(p) }

func (s *Store) ProductByID(id int) (domain.Product, bool) {
	return s.products.find(func(p domain.Product) bool { return p.ProductID == id })
}

func (s *Store) Products() []domain.Product { return s.products.all() }

func (s *Store) NextOrderID() int { return s.orderIDs.next() }

func (s *Store) AddOrder(o domain.Order) { s.orders.add(o) }

func (s *Store) OrderByID(id int) (domain.Order, bool) {
	return s.orders.find(func(o domain.Order) bool { return o.OrderID == id })
}

func (s *Store) NextPaymentID() int { return s.paymentIDs.next() }

func (s *Store) AddPayment(p domain.Payment) { s.payments.add(p) }

func (s *Store) Payments() []domain.Payment { return s.payments.all() }

func (s *Store) AddOrderItem(oi domain.OrderItem) { s.orderItems.add(oi) }

func (s *Store) OrderItems() []domain.OrderItem { return s.orderItems.all() }

func (s *Store) AddFavourite(f domain.Favourite) { s.favourites.add(f) }

func (s *Store) Favourites() []domain.Favourite { return s.favourites.all() }

// FavouriteByKey matches on (userId, productId) only. The likeDate
// component of the identity is deliberately ignored here: it is a
// fixture convenience so journey tests can retrieve a like without
// carrying the exact timestamp around.
func (s *Store) FavouriteByKey(userID, productID int) (domain.Favourite, bool) {
	return s.favourites.find(func(f domain.Favourite) bool {
		return f.UserID == userID && f.ProductID == productID
	})
}

func (s *Store) NextAddressID() int { return s.addressIDs.next() }

func (s *Store) NextCredentialID() int { return s.credentialIDs.next() }

func (s *Store) NextCategoryID() int { return s.categoryIDs.next() }
