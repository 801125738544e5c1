package services

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

type CustomerService interface {
	List(ctx context.Context) ([]*models.Customer, error)
	ListIDs(ctx context.Context) ([]string, error)
	Add(ctx context.Context, customer *models.Customer) error
	Edit(ctx context.Context, customer *models.Customer) error
	Remove(ctx context.Context, ci string) error
}

type customerService struct {
	customerRepo repositories.CustomerRepository
}

func NewCustomerService(customerRepo repositories.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) List(ctx context.Context) ([]*models.Customer, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return customers, nil
}

func (s *customerService) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := s.customerRepo.ListIDs(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return ids, nil
}

func (s *customerService) Add(ctx context.Context, customer *models.Customer) error {
	if err := common.ValidateStruct(customer); err != nil {
		return err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *customerService) Edit(ctx context.Context, customer *models.Customer) error {
	if err := common.ValidateStruct(customer); err != nil {
		return err
	}
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *customerService) Remove(ctx context.Context, ci string) error {
	if err := common.ValidateCustomerCI(ci); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, ci); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}
