package services

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

type ReservationService interface {
	ListByBranch(ctx context.Context, branchRIF string) ([]*models.ReservationRow, error)
	Add(ctx context.Context, reservation *models.Reservation) error
}

type reservationService struct {
	reservationRepo repositories.ReservationRepository
}

func NewReservationService(reservationRepo repositories.ReservationRepository) ReservationService {
	return &reservationService{reservationRepo: reservationRepo}
}

func (s *reservationService) ListByBranch(ctx context.Context, branchRIF string) ([]*models.ReservationRow, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	reservations, err := s.reservationRepo.ListByBranch(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return reservations, nil
}

func (s *reservationService) Add(ctx context.Context, reservation *models.Reservation) error {
	if err := common.ValidateStruct(reservation); err != nil {
		return err
	}
	if reservation.Deposit.IsNegative() {
		return common.NewValidationError("deposit", "cannot be negative")
	}
	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}
