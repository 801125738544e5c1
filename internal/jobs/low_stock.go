package jobs

import (
	"context"

	"tallerix/internal/models"
	"tallerix/internal/repositories"

	"github.com/rs/zerolog/log"
)

// LowStockChecker surfaces supplies at or below their configured minimum so
// purchasing can restock before the workshop runs dry.
type LowStockChecker struct {
	supplyRepo repositories.SupplyRepository
}

func NewLowStockChecker(supplyRepo repositories.SupplyRepository) *LowStockChecker {
	return &LowStockChecker{supplyRepo: supplyRepo}
}

func (c *LowStockChecker) Check(ctx context.Context) ([]*models.Supply, error) {
	supplies, err := c.supplyRepo.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	for _, s := range supplies {
		log.Warn().
			Int("supply", s.Code).
			Str("name", s.Name).
			Int("stock", s.Stock).
			Int("min_stock", s.MinStock).
			Msg("supply below minimum stock")
	}
	return supplies, nil
}
