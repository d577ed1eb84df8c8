package ledger

import (
	"context"
	"fmt"

	"github.com/jhoicas/Comedor-api/internal/application/dto"
	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

// ListUseCase sirve las lecturas de inspección de las tres corrientes.
// Corre fuera de la unidad atómica: repositorios sobre el pool, sin transacción.
type ListUseCase struct {
	prodRepo    repository.ProductionRepository
	salesRepo   repository.SalesRepository
	wastageRepo repository.WastageRepository
	maxLimit    int
}

// NewListUseCase construye el caso de uso.
func NewListUseCase(
	prodRepo repository.ProductionRepository,
	salesRepo repository.SalesRepository,
	wastageRepo repository.WastageRepository,
	maxLimit int,
) *ListUseCase {
	return &ListUseCase{prodRepo: prodRepo, salesRepo: salesRepo, wastageRepo: wastageRepo, maxLimit: maxLimit}
}

func (uc *ListUseCase) capLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > uc.maxLimit {
		return uc.maxLimit
	}
	return limit
}

// ListProduction lista producción reciente, o la fila exacta si llegan food_id y fecha.
func (uc *ListUseCase) ListProduction(ctx context.Context, foodID, dateStr string, limit int) ([]*dto.ProductionEntryDTO, error) {
	if foodID != "" && dateStr != "" {
		date, err := parseDay(dateStr)
		if err != nil {
			return nil, err
		}
		e, err := uc.prodRepo.Get(ctx, foodID, date)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return []*dto.ProductionEntryDTO{}, nil
		}
		return []*dto.ProductionEntryDTO{dto.ProductionEntryFromEntity(e)}, nil
	}
	if foodID != "" || dateStr != "" {
		return nil, fmt.Errorf("food_id y date van juntos: %w", domain.ErrValidation)
	}
	entries, err := uc.prodRepo.ListRecent(ctx, uc.capLimit(limit))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductionEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ProductionEntryFromEntity(e))
	}
	return out, nil
}

// ListSales lista ventas recientes, o la fila exacta si llegan food_id y fecha.
func (uc *ListUseCase) ListSales(ctx context.Context, foodID, dateStr string, limit int) ([]*dto.SalesEntryDTO, error) {
	if foodID != "" && dateStr != "" {
		date, err := parseDay(dateStr)
		if err != nil {
			return nil, err
		}
		e, err := uc.salesRepo.Get(ctx, foodID, date)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return []*dto.SalesEntryDTO{}, nil
		}
		return []*dto.SalesEntryDTO{dto.SalesEntryFromEntity(e)}, nil
	}
	if foodID != "" || dateStr != "" {
		return nil, fmt.Errorf("food_id y date van juntos: %w", domain.ErrValidation)
	}
	entries, err := uc.salesRepo.ListRecent(ctx, uc.capLimit(limit))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SalesEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.SalesEntryFromEntity(e))
	}
	return out, nil
}

// ListWastage lista mermas recientes, o la fila exacta si llegan food_id y fecha.
func (uc *ListUseCase) ListWastage(ctx context.Context, foodID, dateStr string, limit int) ([]*dto.WastageEntryDTO, error) {
	if foodID != "" && dateStr != "" {
		date, err := parseDay(dateStr)
		if err != nil {
			return nil, err
		}
		e, err := uc.wastageRepo.Get(ctx, foodID, date)
		if err != nil {
			return nil, err
		}
		if e == nil {
			return []*dto.WastageEntryDTO{}, nil
		}
		return []*dto.WastageEntryDTO{dto.WastageEntryFromEntity(e)}, nil
	}
	if foodID != "" || dateStr != "" {
		return nil, fmt.Errorf("food_id y date van juntos: %w", domain.ErrValidation)
	}
	entries, err := uc.wastageRepo.ListRecent(ctx, uc.capLimit(limit))
	if err != nil {
		return nil, err
	}
	out := make([]*dto.WastageEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.WastageEntryFromEntity(e))
	}
	return out, nil
}
