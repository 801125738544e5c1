package services

import (
	"context"
	"errors"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

type WorkOrderService interface {
	ListByBranch(ctx context.Context, branchRIF string) ([]*models.WorkOrderRow, error)
	Add(ctx context.Context, order *models.WorkOrder) error
	GetDetail(ctx context.Context, workOrderCode int) (*models.WorkOrderDetail, error)
	HasInvoice(ctx context.Context, workOrderCode int) (bool, error)
	CloseOut(ctx context.Context, workOrderCode int, realOut string) error
	PerformActivity(ctx context.Context, activity *models.PerformedActivity) error
	ConsumeSupply(ctx context.Context, consumption *models.SupplyConsumption) error
	ListInvoicesByBranch(ctx context.Context, branchRIF string) ([]*models.ServiceInvoice, error)
	GetInvoiceDetail(ctx context.Context, invoiceCode int) (*models.ServiceInvoiceDetail, error)
}

type workOrderService struct {
	workOrderRepo repositories.WorkOrderRepository
}

func NewWorkOrderService(workOrderRepo repositories.WorkOrderRepository) WorkOrderService {
	return &workOrderService{workOrderRepo: workOrderRepo}
}

func (s *workOrderService) ListByBranch(ctx context.Context, branchRIF string) ([]*models.WorkOrderRow, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	orders, err := s.workOrderRepo.ListByBranch(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return orders, nil
}

func (s *workOrderService) Add(ctx context.Context, order *models.WorkOrder) error {
	if err := common.ValidateStruct(order); err != nil {
		return err
	}
	if !order.EstOut.After(order.TimeIn) {
		return common.NewValidationError("est_out", "must be after time_in")
	}
	if err := s.workOrderRepo.Create(ctx, order); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

// GetDetail loads the intake header and groups the flat activity join into
// one entry per performed activity with its consumed supplies nested.
func (s *workOrderService) GetDetail(ctx context.Context, workOrderCode int) (*models.WorkOrderDetail, error) {
	if workOrderCode <= 0 {
		return nil, common.NewValidationError("work_order_code", "must be positive")
	}
	order, err := s.workOrderRepo.GetRowByCode(ctx, workOrderCode)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, common.ClassifyStorageError(err)
	}
	rows, err := s.workOrderRepo.GetActivityRows(ctx, workOrderCode)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}

	detail := &models.WorkOrderDetail{WorkOrderRow: *order}
	index := make(map[int]int)
	for _, row := range rows {
		i, ok := index[row.Sequence]
		if !ok {
			detail.PerformedActivities = append(detail.PerformedActivities, models.PerformedActivityDetail{
				ServiceCode:  row.ServiceCode,
				ActivityCode: row.ActivityCode,
				Description:  row.Description,
				Sequence:     row.Sequence,
				HourlyRate:   row.HourlyRate,
				Hours:        row.Hours,
			})
			i = len(detail.PerformedActivities) - 1
			index[row.Sequence] = i
		}
		// The left join yields null consumption columns for an activity
		// that consumed nothing.
		if row.SupplyCode != nil {
			entry := &detail.PerformedActivities[i]
			entry.Resources = append(entry.Resources, models.ResourceUse{
				SupplyCode: *row.SupplyCode,
				SupplyName: *row.SupplyName,
				EmployeeCI: *row.EmployeeCI,
				Quantity:   *row.Quantity,
				Price:      *row.Price,
			})
		}
	}
	return detail, nil
}

// PerformActivity records one execution of a catalog activity on an open
// work order.
func (s *workOrderService) PerformActivity(ctx context.Context, activity *models.PerformedActivity) error {
	if err := common.ValidateStruct(activity); err != nil {
		return err
	}
	if !activity.HourlyRate.IsPositive() {
		return common.NewValidationError("hourly_rate", "must be positive")
	}
	if !activity.Hours.IsPositive() {
		return common.NewValidationError("hours", "must be positive")
	}
	if err := s.workOrderRepo.CreatePerformedActivity(ctx, activity); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

// ConsumeSupply charges a supply against a performed activity.
func (s *workOrderService) ConsumeSupply(ctx context.Context, consumption *models.SupplyConsumption) error {
	if err := common.ValidateStruct(consumption); err != nil {
		return err
	}
	if !consumption.Price.IsPositive() {
		return common.NewValidationError("price", "must be positive")
	}
	if err := s.workOrderRepo.CreateConsumption(ctx, consumption); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *workOrderService) HasInvoice(ctx context.Context, workOrderCode int) (bool, error) {
	if workOrderCode <= 0 {
		return false, common.NewValidationError("work_order_code", "must be positive")
	}
	found, err := s.workOrderRepo.HasInvoice(ctx, workOrderCode)
	if err != nil {
		return false, common.ClassifyStorageError(err)
	}
	return found, nil
}

func (s *workOrderService) CloseOut(ctx context.Context, workOrderCode int, realOut string) error {
	if workOrderCode <= 0 {
		return common.NewValidationError("work_order_code", "must be positive")
	}
	if realOut == "" {
		return common.NewValidationError("real_out", "is required")
	}
	if err := s.workOrderRepo.CloseOut(ctx, workOrderCode, realOut); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *workOrderService) ListInvoicesByBranch(ctx context.Context, branchRIF string) ([]*models.ServiceInvoice, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	invoices, err := s.workOrderRepo.ListInvoicesByBranch(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return invoices, nil
}

// GetInvoiceDetail groups the flat detail rows into the nested shape the
// invoice screen renders: header once, labor lines deduplicated by sequence,
// supply lines deduplicated by (name, price, quantity).
func (s *workOrderService) GetInvoiceDetail(ctx context.Context, invoiceCode int) (*models.ServiceInvoiceDetail, error) {
	if invoiceCode <= 0 {
		return nil, common.NewValidationError("invoice_code", "must be positive")
	}
	rows, err := s.workOrderRepo.GetInvoiceDetailRows(ctx, invoiceCode)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	if len(rows) == 0 {
		return nil, common.ErrNotFound
	}

	first := rows[0]
	detail := &models.ServiceInvoiceDetail{
		Code:         first.Code,
		IssuedAt:     first.IssuedAt,
		Amount:       first.Amount,
		DiscountPct:  first.DiscountPct,
		CustomerCI:   first.CustomerCI,
		CustomerName: first.CustomerName,
		VehicleCode:  first.VehicleCode,
		Plate:        first.Plate,
	}

	seenLabor := make(map[int]bool)
	type supplyKey struct {
		name     string
		price    string
		quantity int
	}
	seenSupply := make(map[supplyKey]bool)

	for _, row := range rows {
		if !seenLabor[row.Sequence] {
			seenLabor[row.Sequence] = true
			detail.Labor = append(detail.Labor, models.LaborLine{
				Sequence:    row.Sequence,
				Description: row.ActivityDesc,
				HourlyRate:  row.HourlyRate,
				Hours:       row.Hours,
				Total:       row.ActivityTotal,
			})
		}
		key := supplyKey{name: row.SupplyName, price: row.SupplyPrice.String(), quantity: row.SupplyQty}
		if !seenSupply[key] {
			seenSupply[key] = true
			detail.Supplies = append(detail.Supplies, models.ConsumedSupply{
				Name:     row.SupplyName,
				Quantity: row.SupplyQty,
				Price:    row.SupplyPrice,
				Total:    row.SupplyTotal,
			})
		}
	}
	return detail, nil
}
