package services_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"minishop/internal/domain"
	"minishop/internal/repos"
	"minishop/internal/services"
)

func newUserService(t *testing.T) (*services.UserService, *repos.UserRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })
	users := repos.NewUserRepo(db)
	return services.NewUserService(users), users
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := newUserService(t)

	if _, err := svc.Register(domain.User{FirstName: "Ana", LastName: "Gómez", Email: "not-an-email"}); err == nil {
		t.Fatal("bad email must be rejected")
	}
	if _, err := svc.Register(domain.User{FirstName: "", LastName: "Gómez", Email: "a@b.co"}); err == nil {
		t.Fatal("empty first name must be rejected")
	}

	u, err := svc.Register(domain.User{FirstName: "Ana", LastName: "Gómez", Email: "ana@shop.test", Phone: "+57 300 111 2233"})
	if err != nil {
		t.Fatal(err)
	}
	if u.UserID != 1 {
		t.Fatalf("want id 1, got %d", u.UserID)
	}
}

func TestCredentialPasswordIsHashed(t *testing.T) {
	svc, users := newUserService(t)

	u, err := svc.Register(domain.User{FirstName: "Ana", LastName: "Gómez", Email: "ana@shop.test"})
	if err != nil {
		t.Fatal(err)
	}

	created, err := svc.AddCredential(domain.Credential{Username: "ana.gomez", Password: "Passw0rd!x", UserID: u.UserID})
	if err != nil {
		t.Fatal(err)
	}
	if created.Password != "" {
		t.Fatal("response must not echo the password")
	}

	stored, err := users.CredentialByUsername("ana.gomez")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(stored.Password, "Passw0rd!x") {
		t.Fatal("plaintext password reached storage")
	}
	if !strings.HasPrefix(stored.Password, "$2") {
		t.Fatalf("unexpected hash format: %s", stored.Password)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("Passw0rd!x")); err != nil {
		t.Fatalf("hash does not validate original password: %v", err)
	}
}

func TestCredentialRequiresExistingUser(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.AddCredential(domain.Credential{Username: "ghost", Password: "Passw0rd!x", UserID: 42})
	if !errors.Is(err, repos.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	svc, _ := newUserService(t)

	u, err := svc.Register(domain.User{FirstName: "Ana", LastName: "Gómez", Email: "ana@shop.test"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddCredential(domain.Credential{Username: "ana.gomez", Password: "Passw0rd!x", UserID: u.UserID}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.Authenticate("ana.gomez", "Passw0rd!x")
	if err != nil || got.UserID != u.UserID {
		t.Fatalf("login failed: %+v err=%v", got, err)
	}

	if _, err := svc.Authenticate("ana.gomez", "wrong-pass!"); !errors.Is(err, services.ErrInvalidLogin) {
		t.Fatalf("want ErrInvalidLogin, got %v", err)
	}
	if _, err := svc.Authenticate("nobody", "Passw0rd!x"); !errors.Is(err, services.ErrInvalidLogin) {
		t.Fatalf("unknown username must look like a bad login, got %v", err)
	}
}
