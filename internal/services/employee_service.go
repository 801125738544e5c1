package services

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

type EmployeeService interface {
	ListByBranch(ctx context.Context, branchRIF string) ([]*models.Employee, error)
	Add(ctx context.Context, employee *models.Employee) error
	Edit(ctx context.Context, employee *models.Employee) error
	Remove(ctx context.Context, ci, branchRIF string) error
}

type employeeService struct {
	employeeRepo repositories.EmployeeRepository
}

func NewEmployeeService(employeeRepo repositories.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) ListByBranch(ctx context.Context, branchRIF string) ([]*models.Employee, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListByBranch(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return employees, nil
}

func (s *employeeService) Add(ctx context.Context, employee *models.Employee) error {
	if err := common.ValidateStruct(employee); err != nil {
		return err
	}
	if !employee.Salary.IsPositive() {
		return common.NewValidationError("salary", "must be positive")
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *employeeService) Edit(ctx context.Context, employee *models.Employee) error {
	if err := common.ValidateStruct(employee); err != nil {
		return err
	}
	if !employee.Salary.IsPositive() {
		return common.NewValidationError("salary", "must be positive")
	}
	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *employeeService) Remove(ctx context.Context, ci, branchRIF string) error {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return err
	}
	if ci == "" || len(ci) > 10 {
		return common.NewValidationError("ci", "must be between 1 and 10 characters")
	}
	if err := s.employeeRepo.Delete(ctx, ci, branchRIF); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}
