package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"minishop/internal/domain"
	"minishop/internal/repos"
	"minishop/internal/validate"
)

var ErrInvalidLogin = errors.New("invalid username or password")

type UserService struct {
	Users *repos.UserRepo
}

func NewUserService(users *repos.UserRepo) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) Register(u domain.User) (domain.User, error) {
	if _, ok := validate.Name(u.FirstName); !ok {
		return domain.User{}, fmt.Errorf("invalid first name")
	}
	if _, ok := validate.Name(u.LastName); !ok {
		return domain.User{}, fmt.Errorf("invalid last name")
	}
	email, ok := validate.Email(u.Email)
	if !ok {
		return domain.User{}, fmt.Errorf("invalid email")
	}
	u.Email = email
	if u.Phone != "" {
		phone, ok := validate.Phone(u.Phone)
		if !ok {
			return domain.User{}, fmt.Errorf("invalid phone")
		}
		u.Phone = phone
	}
	return s.Users.Create(u)
}

// AddCredential hashes the password before it reaches storage. The
// returned record never carries the plaintext back.
func (s *UserService) AddCredential(cr domain.Credential) (domain.Credential, error) {
	username, ok := validate.Username(cr.Username)
	if !ok {
		return domain.Credential{}, fmt.Errorf("invalid username")
	}
	if !validate.Password(cr.Password) {
		return domain.Credential{}, fmt.Errorf("password does not meet policy")
	}
	if _, err := s.Users.ByID(cr.UserID); err != nil {
		return domain.Credential{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cr.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.Credential{}, err
	}
	cr.Username = username
	cr.Password = string(hash)
	stored, err := s.Users.CreateCredential(cr)
	if err != nil {
		return domain.Credential{}, err
	}
	stored.Password = ""
	return stored, nil
}

func (s *UserService) Authenticate(username, password string) (domain.User, error) {
	cr, err := s.Users.CredentialByUsername(username)
	if err != nil {
		if repos.IsNotFound(err) {
			return domain.User{}, ErrInvalidLogin
		}
		return domain.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cr.Password), []byte(password)) != nil {
		return domain.User{}, ErrInvalidLogin
	}
	return s.Users.ByID(cr.UserID)
}
