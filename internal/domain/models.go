package domain

type Category struct {
	CategoryID    int    `json:"categoryId" db:"category_id"`
	CategoryTitle string `json:"categoryTitle,omitempty" db:"category_title"`
	ImageURL      string `json:"imageUrl,omitempty" db:"image_url"`
}

type Product struct {
	ProductID    int     `json:"productId" db:"product_id"`
	ProductTitle string  `json:"productTitle,omitempty" db:"product_title"`
	ImageURL     string  `json:"imageUrl,omitempty" db:"image_url"`
	SKU          string  `json:"sku,omitempty" db:"sku"`
	PriceUnit    float64 `json:"priceUnit,omitempty" db:"price_unit"`
	Quantity     int     `json:"quantity,omitempty" db:"quantity"`
	CategoryID   int     `json:"categoryId,omitempty" db:"category_id"`
}

type Order struct {
	OrderID   int     `json:"orderId" db:"order_id"`
	OrderDesc string  `json:"orderDesc,omitempty" db:"order_desc"`
	OrderFee  float64 `json:"orderFee,omitempty" db:"order_fee"`
	UserID    int     `json:"userId,omitempty" db:"user_id"`
}

// OrderItem has no surrogate id; identity is the (productId, orderId) pair.
type OrderItem struct {
	ProductID       int `json:"productId" db:"product_id"`
	OrderID         int `json:"orderId" db:"order_id"`
	OrderedQuantity int `json:"orderedQuantity,omitempty" db:"ordered_quantity"`
}
