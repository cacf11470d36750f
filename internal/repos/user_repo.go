package repos

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"minishop/internal/domain"
)

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) Create(u domain.User) (domain.User, error) {
	res, err := r.DB.Exec(`INSERT INTO users(first_name,last_name,email,phone) VALUES(?,?,?,?)`,
		u.FirstName, u.LastName, u.Email, u.Phone)
	if err != nil {
		return domain.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	u.UserID = int(id)
	return u, nil
}

func (r *UserRepo) ByID(id int) (domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT user_id,first_name,last_name,email,phone FROM users WHERE user_id=?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return u, err
}

func (r *UserRepo) All() ([]domain.User, error) {
	var out []domain.User
	err := r.DB.Select(&out, `SELECT user_id,first_name,last_name,email,phone FROM users ORDER BY user_id`)
	return out, err
}

func (r *UserRepo) Update(u domain.User) (domain.User, error) {
	res, err := r.DB.Exec(`UPDATE users SET first_name=?,last_name=?,email=?,phone=? WHERE user_id=?`,
		u.FirstName, u.LastName, u.Email, u.Phone, u.UserID)
	if err != nil {
		return domain.User{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.User{}, fmt.Errorf("%w: id %d", ErrUserNotFound, u.UserID)
	}
	return u, nil
}

func (r *UserRepo) Delete(id int) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE user_id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: id %d", ErrUserNotFound, id)
	}
	return nil
}

func (r *UserRepo) CreateAddress(a domain.Address) (domain.Address, error) {
	res, err := r.DB.Exec(`INSERT INTO addresses(full_address,postal_code,city,user_id) VALUES(?,?,?,?)`,
		a.FullAddress, a.PostalCode, a.City, a.UserID)
	if err != nil {
		return domain.Address{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Address{}, err
	}
	a.AddressID = int(id)
	return a, nil
}

func (r *UserRepo) AddressesByUser(userID int) ([]domain.Address, error) {
	var out []domain.Address
	err := r.DB.Select(&out, `SELECT address_id,full_address,postal_code,city,user_id FROM addresses WHERE user_id=? ORDER BY address_id`, userID)
	return out, err
}

// CreateCredential stores the credential as given; hashing the password
// is the service layer's job.
func (r *UserRepo) CreateCredential(cr domain.Credential) (domain.Credential, error) {
	res, err := r.DB.Exec(`INSERT INTO credentials(username,password,user_id) VALUES(?,?,?)`,
		cr.Username, cr.Password, cr.UserID)
	if err != nil {
		return domain.Credential{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Credential{}, err
	}
	cr.CredentialID = int(id)
	return cr, nil
}

func (r *UserRepo) CredentialByUsername(username string) (domain.Credential, error) {
	var cr domain.Credential
	err := r.DB.Get(&cr, `SELECT credential_id,username,password,user_id FROM credentials WHERE username=?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Credential{}, fmt.Errorf("%w: username %s", ErrCredentialNotFound, username)
	}
	return cr, err
}
