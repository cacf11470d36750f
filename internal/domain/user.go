package domain

type User struct {
	UserID    int    `json:"userId" db:"user_id"`
	FirstName string `json:"firstName,omitempty" db:"first_name"`
	LastName  string `json:"lastName,omitempty" db:"last_name"`
	Email     string `json:"email,omitempty" db:"email"`
	Phone     string `json:"phone,omitempty" db:"phone"`
}

type Address struct {
	AddressID   int    `json:"addressId" db:"address_id"`
	FullAddress string `json:"fullAddress,omitempty" db:"full_address"`
	PostalCode  string `json:"postalCode,omitempty" db:"postal_code"`
	City        string `json:"city,omitempty" db:"city"`
	UserID      int    `json:"userId,omitempty" db:"user_id"`
}

// Credential.Password carries the plaintext on create requests only; the
// stored row always holds a bcrypt hash.
type Credential struct {
	CredentialID int    `json:"credentialId" db:"credential_id"`
	Username     string `json:"username,omitempty" db:"username"`
	Password     string `json:"password,omitempty" db:"password"`
	UserID       int    `json:"userId,omitempty" db:"user_id"`
}
