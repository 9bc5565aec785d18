package accounts

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
)

func registerReq(username string) *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: username,
		Password: "s3cret!",
		Name:     "Alice",
		Email:    "alice@example.com",
	}
}

func TestRegisterAndAuthenticate(t *testing.T) {
	r := New(nil, nil, zap.NewNop())

	customer, err := r.RegisterCustomer(registerReq("alice"))
	if err != nil {
		t.Fatalf("RegisterCustomer: %v", err)
	}
	if customer.PasswordHash == "s3cret!" {
		t.Error("password stored in plain text")
	}

	got, err := r.AuthenticateCustomer("alice", "s3cret!")
	if err != nil {
		t.Fatalf("AuthenticateCustomer: %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("authenticated customer = %q, want alice", got.Username)
	}
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	r := New(nil, nil, zap.NewNop())
	if _, err := r.RegisterCustomer(registerReq("alice")); err != nil {
		t.Fatal(err)
	}

	if _, err := r.AuthenticateCustomer("alice", "wrong"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("wrong password = %v, want ErrNotFound", err)
	}
	if _, err := r.AuthenticateCustomer("nobody", "s3cret!"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("unknown user = %v, want ErrNotFound", err)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := New(nil, nil, zap.NewNop())
	if _, err := r.RegisterCustomer(registerReq("alice")); err != nil {
		t.Fatal(err)
	}

	if _, err := r.RegisterCustomer(registerReq("alice")); !errors.Is(err, entity.ErrDuplicateKey) {
		t.Errorf("duplicate register = %v, want ErrDuplicateKey", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	r := New(nil, nil, zap.NewNop())

	req := registerReq("alice")
	req.Email = "not-an-email"
	if _, err := r.RegisterCustomer(req); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("bad email = %v, want ErrValidation", err)
	}

	req = registerReq("alice")
	req.Password = "short"
	if _, err := r.RegisterCustomer(req); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("short password = %v, want ErrValidation", err)
	}
}

func TestAdminAccounts(t *testing.T) {
	r := New(nil, nil, zap.NewNop())

	if err := r.AddAdmin("root", "changeme"); err != nil {
		t.Fatalf("AddAdmin: %v", err)
	}
	if err := r.AddAdmin("root", "other"); !errors.Is(err, entity.ErrDuplicateKey) {
		t.Errorf("duplicate AddAdmin = %v, want ErrDuplicateKey", err)
	}

	if _, err := r.AuthenticateAdmin("root", "changeme"); err != nil {
		t.Errorf("AuthenticateAdmin: %v", err)
	}
	if _, err := r.AuthenticateAdmin("root", "wrong"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("wrong admin password = %v, want ErrNotFound", err)
	}
}
