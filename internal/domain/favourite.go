package domain

// LikeDateLayout is the wire format for Favourite.LikeDate.
const LikeDateLayout = "02-01-2006__15:04:05"

// Favourite has no surrogate id. True identity is the full
// (userId, productId, likeDate) tuple: liking the same product twice at
// different instants yields two distinct favourites.
type Favourite struct {
	UserID    int    `json:"userId" db:"user_id"`
	ProductID int    `json:"productId" db:"product_id"`
	LikeDate  string `json:"likeDate,omitempty" db:"like_date"`
}
