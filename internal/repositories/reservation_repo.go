package repositories

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
)

type ReservationRepository interface {
	ListByBranch(ctx context.Context, branchRIF string) ([]*models.ReservationRow, error)
	Create(ctx context.Context, reservation *models.Reservation) error
}

type reservationRepo struct {
	db DB
}

func NewReservationRepo(db DB) ReservationRepository {
	return &reservationRepo{db: db}
}

func (r *reservationRepo) ListByBranch(ctx context.Context, branchRIF string) ([]*models.ReservationRow, error) {
	query := `
		SELECT r.number, r.reserved_at, r.service_at, r.deposit, r.vehicle_code, r.service_code, r.branch_rif, s.name
		FROM reservations r
		JOIN services s ON s.code = r.service_code
		WHERE r.branch_rif = $1
		ORDER BY r.service_at
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []*models.ReservationRow
	for rows.Next() {
		res := &models.ReservationRow{}
		err := rows.Scan(
			&res.Number, &res.ReservedAt, &res.ServiceAt, &res.Deposit,
			&res.VehicleCode, &res.ServiceCode, &res.BranchRIF, &res.ServiceName,
		)
		if err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(res); err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

// Create stamps the reservation date server-side; the client only picks the
// service date.
func (r *reservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	query := `
		INSERT INTO reservations (reserved_at, service_at, deposit, vehicle_code, service_code, branch_rif)
		VALUES (NOW(), $1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		reservation.ServiceAt, reservation.Deposit, reservation.VehicleCode, reservation.ServiceCode, reservation.BranchRIF,
	)
	return err
}
