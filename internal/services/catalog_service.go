package services

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

// CatalogService manages the service catalog: services, their activities and
// which branches offer them.
type CatalogService interface {
	ListByBranch(ctx context.Context, branchRIF string) ([]*models.ServiceWithActivities, error)
	ListRefs(ctx context.Context) ([]*models.ServiceRef, error)
	Add(ctx context.Context, service *models.Service, offering *models.BranchService) error
	Edit(ctx context.Context, service *models.Service) error
	Remove(ctx context.Context, code int) error
	Offer(ctx context.Context, offering *models.BranchService) error
	AddActivity(ctx context.Context, activity *models.Activity) error
	EditActivity(ctx context.Context, activity *models.Activity) error
	RemoveActivity(ctx context.Context, serviceCode, activityCode int) error
}

type catalogService struct {
	serviceRepo repositories.ServiceRepository
}

func NewCatalogService(serviceRepo repositories.ServiceRepository) CatalogService {
	return &catalogService{serviceRepo: serviceRepo}
}

// ListByBranch groups the flat left-join rows into one entry per service
// with its activities nested.
func (s *catalogService) ListByBranch(ctx context.Context, branchRIF string) ([]*models.ServiceWithActivities, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	rows, err := s.serviceRepo.ListByBranchWithActivities(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}

	var result []*models.ServiceWithActivities
	index := make(map[int]*models.ServiceWithActivities)
	for _, row := range rows {
		svc, ok := index[row.Code]
		if !ok {
			svc = &models.ServiceWithActivities{
				Code:          row.Code,
				Name:          row.Name,
				Charge:        row.Charge,
				SupervisorCI:  row.SupervisorCI,
				CoordinatorCI: row.CoordinatorCI,
			}
			index[row.Code] = svc
			result = append(result, svc)
		}
		// The left join yields a null activity for services with none.
		if row.ActivityCode != nil {
			svc.Activities = append(svc.Activities, models.ActivitySummary{
				Code:        row.ActivityCode,
				Description: row.ActivityDesc,
				HourlyRate:  row.ActivityHourlyRate,
			})
		}
	}
	return result, nil
}

func (s *catalogService) ListRefs(ctx context.Context) ([]*models.ServiceRef, error) {
	refs, err := s.serviceRepo.ListRefs(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return refs, nil
}

// Add creates the catalog row and registers the creating branch as its first
// offerer, mirroring how new services always start at one branch.
func (s *catalogService) Add(ctx context.Context, service *models.Service, offering *models.BranchService) error {
	if err := common.ValidateStruct(service); err != nil {
		return err
	}
	code, err := s.serviceRepo.Create(ctx, service)
	if err != nil {
		return common.ClassifyStorageError(err)
	}
	offering.ServiceCode = code
	if err := common.ValidateStruct(offering); err != nil {
		return err
	}
	if err := s.serviceRepo.Offer(ctx, offering); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *catalogService) Edit(ctx context.Context, service *models.Service) error {
	if err := common.ValidateStruct(service); err != nil {
		return err
	}
	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *catalogService) Remove(ctx context.Context, code int) error {
	if code <= 0 {
		return common.NewValidationError("code", "must be positive")
	}
	if err := s.serviceRepo.Delete(ctx, code); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *catalogService) Offer(ctx context.Context, offering *models.BranchService) error {
	if err := common.ValidateStruct(offering); err != nil {
		return err
	}
	if err := s.serviceRepo.Offer(ctx, offering); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *catalogService) AddActivity(ctx context.Context, activity *models.Activity) error {
	if err := common.ValidateStruct(activity); err != nil {
		return err
	}
	if err := s.serviceRepo.CreateActivity(ctx, activity); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *catalogService) EditActivity(ctx context.Context, activity *models.Activity) error {
	if err := common.ValidateStruct(activity); err != nil {
		return err
	}
	if err := s.serviceRepo.UpdateActivity(ctx, activity); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *catalogService) RemoveActivity(ctx context.Context, serviceCode, activityCode int) error {
	if serviceCode <= 0 || activityCode <= 0 {
		return common.NewValidationError("code", "must be positive")
	}
	if err := s.serviceRepo.DeleteActivity(ctx, serviceCode, activityCode); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}
