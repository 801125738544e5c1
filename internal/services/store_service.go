package services

import (
	"context"
	"errors"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"

	"github.com/rs/zerolog/log"
)

// StoreInvoiceView is an invoice header with its lines, as the detail screen
// consumes it.
type StoreInvoiceView struct {
	Invoice *models.StoreInvoice       `json:"invoice"`
	Items   []*models.StoreInvoiceItem `json:"items"`
}

type StoreService interface {
	ListItems(ctx context.Context, branchRIF string) ([]*models.StoreItem, error)
	AddItem(ctx context.Context, item *models.StoreItem) error
	EditItem(ctx context.Context, item *models.StoreItem) error
	ListInvoices(ctx context.Context, branchRIF string) ([]*models.StoreInvoice, error)
	GetInvoice(ctx context.Context, code int) (*StoreInvoiceView, error)
	// CreateInvoice is the checkout transaction: one header plus one line
	// per non-zero cart entry, atomic, with prices snapshotted in-tx.
	CreateInvoice(ctx context.Context, branchRIF, customerCI string, cart []models.CartLine) (int, error)
}

type storeService struct {
	storeRepo repositories.StoreRepository
}

func NewStoreService(storeRepo repositories.StoreRepository) StoreService {
	return &storeService{storeRepo: storeRepo}
}

func (s *storeService) ListItems(ctx context.Context, branchRIF string) ([]*models.StoreItem, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	items, err := s.storeRepo.ListItems(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return items, nil
}

func (s *storeService) AddItem(ctx context.Context, item *models.StoreItem) error {
	if err := common.ValidateStruct(item); err != nil {
		return err
	}
	if !item.Price.IsPositive() {
		return common.NewValidationError("price", "must be positive")
	}
	if err := s.storeRepo.CreateItem(ctx, item); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *storeService) EditItem(ctx context.Context, item *models.StoreItem) error {
	if err := common.ValidateStruct(item); err != nil {
		return err
	}
	if !item.Price.IsPositive() {
		return common.NewValidationError("price", "must be positive")
	}
	if err := s.storeRepo.UpdateItem(ctx, item); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *storeService) ListInvoices(ctx context.Context, branchRIF string) ([]*models.StoreInvoice, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	invoices, err := s.storeRepo.ListInvoices(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return invoices, nil
}

func (s *storeService) GetInvoice(ctx context.Context, code int) (*StoreInvoiceView, error) {
	invoice, err := s.storeRepo.GetInvoice(ctx, code)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, common.ClassifyStorageError(err)
	}
	items, err := s.storeRepo.ListInvoiceItems(ctx, code)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return &StoreInvoiceView{Invoice: invoice, Items: items}, nil
}

func (s *storeService) CreateInvoice(ctx context.Context, branchRIF, customerCI string, cart []models.CartLine) (int, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return 0, err
	}
	if err := common.ValidateCustomerCI(customerCI); err != nil {
		return 0, err
	}

	// The form only submits non-zero quantities, but the transaction must
	// not depend on that.
	lines := make([]models.CartLine, 0, len(cart))
	for _, line := range cart {
		if line.Quantity <= 0 {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return 0, common.NewValidationError("cart", "must contain at least one item")
	}

	code, err := s.storeRepo.CreateInvoiceWithItems(ctx, customerCI, branchRIF, lines)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, err
		}
		return 0, common.ClassifyStorageError(err)
	}

	log.Info().Int("invoice", code).Str("branch", branchRIF).Int("lines", len(lines)).Msg("store invoice created")
	return code, nil
}
