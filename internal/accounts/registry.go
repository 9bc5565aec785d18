// Package accounts keeps the customer and admin records and handles
// registration and login checks. Passwords are stored as bcrypt hashes.
package accounts

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
	"cinema-chain/pkg/utils"
)

type Registry struct {
	customers map[string]*entity.Customer
	admins    []entity.Admin
	log       *zap.Logger
}

func New(customers map[string]*entity.Customer, admins []entity.Admin, log *zap.Logger) *Registry {
	if customers == nil {
		customers = make(map[string]*entity.Customer)
	}
	return &Registry{
		customers: customers,
		admins:    admins,
		log:       log.With(zap.String("service", "accounts")),
	}
}

func (r *Registry) RegisterCustomer(req *request.RegisterRequest) (*entity.Customer, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		r.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if _, ok := r.customers[req.Username]; ok {
		return nil, fmt.Errorf("customer %q: %w", req.Username, entity.ErrDuplicateKey)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		r.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	customer := &entity.Customer{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		CreatedAt:    time.Now(),
	}
	r.customers[req.Username] = customer

	r.log.Info("Customer registered", zap.String("username", req.Username))
	return customer, nil
}

// AuthenticateCustomer checks username and password. Unknown user and
// wrong password both come back as ErrNotFound so login failures do not
// confirm which usernames exist.
func (r *Registry) AuthenticateCustomer(username, password string) (*entity.Customer, error) {
	customer, ok := r.customers[username]
	if !ok || !utils.CheckPasswordHash(password, customer.PasswordHash) {
		r.log.Warn("Customer login failed", zap.String("username", username))
		return nil, fmt.Errorf("customer %q: %w", username, entity.ErrNotFound)
	}

	r.log.Info("Customer logged in", zap.String("username", username))
	return customer, nil
}

func (r *Registry) AuthenticateAdmin(username, password string) (*entity.Admin, error) {
	for i := range r.admins {
		if r.admins[i].Username == username && utils.CheckPasswordHash(password, r.admins[i].PasswordHash) {
			r.log.Info("Admin logged in", zap.String("username", username))
			return &r.admins[i], nil
		}
	}
	r.log.Warn("Admin login failed", zap.String("username", username))
	return nil, fmt.Errorf("admin %q: %w", username, entity.ErrNotFound)
}

func (r *Registry) AddAdmin(username, password string) error {
	for _, a := range r.admins {
		if a.Username == username {
			return fmt.Errorf("admin %q: %w", username, entity.ErrDuplicateKey)
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	r.admins = append(r.admins, entity.Admin{Username: username, PasswordHash: hash})
	r.log.Info("Admin added", zap.String("username", username))
	return nil
}

func (r *Registry) CustomerByUsername(username string) (*entity.Customer, error) {
	customer, ok := r.customers[username]
	if !ok {
		return nil, fmt.Errorf("customer %q: %w", username, entity.ErrNotFound)
	}
	return customer, nil
}

// ---- snapshot access ----

func (r *Registry) Customers() map[string]*entity.Customer {
	return r.customers
}

func (r *Registry) Admins() []entity.Admin {
	return r.admins
}
