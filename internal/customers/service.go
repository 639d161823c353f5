package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/svsdigitals/printshop-backend/pkg/db/models"
	pkgerrors "github.com/svsdigitals/printshop-backend/pkg/errors"
	"gorm.io/gorm"
)

type repository interface {
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	Save(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query ListQuery) (*ListResult, error)
	Count(ctx context.Context) (int64, error)
}

// UpdateInput carries the admin-editable profile fields.
type UpdateInput struct {
	Name   string
	Email  string
	Phone  string
	Street string
	City   string
	State  string
	Zip    string
}

// Service exposes the admin customer operations.
type Service interface {
	List(ctx context.Context, query ListQuery) (*ListResult, error)
	Get(ctx context.Context, id string) (*models.Customer, error)
	Update(ctx context.Context, id string, input UpdateInput) (*models.Customer, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	repo repository
}

// ServiceParams carries the dependencies for NewService.
type ServiceParams struct {
	Repo repository
}

// NewService builds a customer service backed by the provided repository.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	result, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}
	return result, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "get customer")
	}
	return customer, nil
}

// Update edits the profile fields. Lifetime counters only move through
// checkout.
func (s *service) Update(ctx context.Context, id string, input UpdateInput) (*models.Customer, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer name is required")
	}
	customer, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	customer.Name = strings.TrimSpace(input.Name)
	customer.Email = strings.TrimSpace(input.Email)
	customer.Phone = strings.TrimSpace(input.Phone)
	customer.Street = input.Street
	customer.City = input.City
	customer.State = input.State
	customer.Zip = input.Zip
	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update customer")
	}
	return customer, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "customer not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete customer")
	}
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count customers")
	}
	return count, nil
}
