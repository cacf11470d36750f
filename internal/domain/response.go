package domain

// Collection is the envelope every list endpoint responds with.
type Collection[T any] struct {
	Collection []T `json:"collection"`
}
