package services

import (
	"context"
	"errors"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

type BranchService interface {
	ListRefs(ctx context.Context) ([]*models.BranchRef, error)
	Get(ctx context.Context, rif string) (*models.Branch, error)
	Add(ctx context.Context, branch *models.Branch) error
	AssignManager(ctx context.Context, rif, employeeCI string) error
}

type branchService struct {
	branchRepo repositories.BranchRepository
}

func NewBranchService(branchRepo repositories.BranchRepository) BranchService {
	return &branchService{branchRepo: branchRepo}
}

func (s *branchService) ListRefs(ctx context.Context) ([]*models.BranchRef, error) {
	branches, err := s.branchRepo.ListRefs(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return branches, nil
}

func (s *branchService) Get(ctx context.Context, rif string) (*models.Branch, error) {
	if err := common.ValidateBranchRIF(rif); err != nil {
		return nil, err
	}
	branch, err := s.branchRepo.GetByRIF(ctx, rif)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, common.ClassifyStorageError(err)
	}
	return branch, nil
}

func (s *branchService) Add(ctx context.Context, branch *models.Branch) error {
	if err := common.ValidateStruct(branch); err != nil {
		return err
	}
	if err := s.branchRepo.Create(ctx, branch); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *branchService) AssignManager(ctx context.Context, rif, employeeCI string) error {
	if err := common.ValidateBranchRIF(rif); err != nil {
		return err
	}
	if employeeCI == "" || len(employeeCI) > 10 {
		return common.NewValidationError("employee_ci", "must be between 1 and 10 characters")
	}
	if err := s.branchRepo.AssignManager(ctx, rif, employeeCI); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}
