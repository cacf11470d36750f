package repos

import "errors"

// One NotFound kind per entity. Unlike the e2e fixture, which papers
// over misses with synthesized defaults, these surface as 404s and must
// stay that strict.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAddressNotFound    = errors.New("address not found")
	ErrCredentialNotFound = errors.New("credential not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrFavouriteNotFound  = errors.New("favourite not found")
)

// IsNotFound reports whether err is any of the per-entity NotFound kinds.
func IsNotFound(err error) bool {
	for _, kind := range []error{
		ErrUserNotFound, ErrAddressNotFound, ErrCredentialNotFound,
		ErrCategoryNotFound, ErrProductNotFound, ErrOrderNotFound,
		ErrPaymentNotFound, ErrFavouriteNotFound,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
