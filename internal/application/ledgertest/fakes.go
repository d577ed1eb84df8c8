// Package ledgertest provee repositorios en memoria y un TxRunner falso para
// probar los casos de uso del motor sin base de datos. Las transacciones son
// triviales: cada Run ejecuta el callback sobre los mismos repos compartidos.
package ledgertest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

func dayKey(foodID string, date time.Time) string {
	return foodID + "|" + date.Format("2006-01-02")
}

// ── Catálogo ──────────────────────────────────────────────────────────────────

// FoodRepo catálogo en memoria.
type FoodRepo struct {
	Items map[string]*entity.FoodItem
}

var _ repository.FoodItemRepository = (*FoodRepo)(nil)

func NewFoodRepo() *FoodRepo {
	return &FoodRepo{Items: make(map[string]*entity.FoodItem)}
}

func (r *FoodRepo) Create(_ context.Context, item *entity.FoodItem) error {
	if _, ok := r.Items[item.ID]; ok {
		return fmt.Errorf("alimento %s duplicado: %w", item.ID, domain.ErrConflict)
	}
	cp := *item
	r.Items[item.ID] = &cp
	return nil
}

func (r *FoodRepo) GetByID(_ context.Context, id string) (*entity.FoodItem, error) {
	item, ok := r.Items[id]
	if !ok {
		return nil, fmt.Errorf("alimento %s: %w", id, domain.ErrNotFound)
	}
	cp := *item
	return &cp, nil
}

func (r *FoodRepo) GetForUpdate(ctx context.Context, id string) (*entity.FoodItem, error) {
	return r.GetByID(ctx, id)
}

func (r *FoodRepo) Update(_ context.Context, id string, upd repository.FoodItemUpdate) (*entity.FoodItem, error) {
	item, ok := r.Items[id]
	if !ok {
		return nil, fmt.Errorf("alimento %s: %w", id, domain.ErrNotFound)
	}
	if upd.Name != nil {
		item.Name = *upd.Name
	}
	if upd.CategoryID != nil {
		item.CategoryID = *upd.CategoryID
	}
	if upd.UnitID != nil {
		item.UnitID = *upd.UnitID
	}
	if upd.SupplierID != nil {
		item.SupplierID = upd.SupplierID
	}
	if upd.CostPerUnit != nil {
		d, err := decimal.NewFromString(*upd.CostPerUnit)
		if err != nil {
			return nil, fmt.Errorf("cost_per_unit: %w", domain.ErrValidation)
		}
		item.CostPerUnit = d
	}
	if upd.SellingPricePerUnit != nil {
		d, err := decimal.NewFromString(*upd.SellingPricePerUnit)
		if err != nil {
			return nil, fmt.Errorf("selling_price_per_unit: %w", domain.ErrValidation)
		}
		item.SellingPricePerUnit = d
	}
	if upd.MinStockLevel != nil {
		item.MinStockLevel = *upd.MinStockLevel
	}
	if upd.MaxStockLevel != nil {
		item.MaxStockLevel = *upd.MaxStockLevel
	}
	if upd.IsActive != nil {
		item.IsActive = *upd.IsActive
	}
	item.UpdatedAt = time.Now().UTC()
	cp := *item
	return &cp, nil
}

func (r *FoodRepo) List(_ context.Context, limit, offset int) ([]*entity.FoodItem, error) {
	var out []*entity.FoodItem
	for _, item := range r.Items {
		cp := *item
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Corriente de producción ───────────────────────────────────────────────────

// ProductionRepo corriente de producción en memoria, clave (food_id, fecha).
type ProductionRepo struct {
	Entries map[string]*entity.ProductionEntry
}

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

func NewProductionRepo() *ProductionRepo {
	return &ProductionRepo{Entries: make(map[string]*entity.ProductionEntry)}
}

func (r *ProductionRepo) Get(_ context.Context, foodID string, date time.Time) (*entity.ProductionEntry, error) {
	e, ok := r.Entries[dayKey(foodID, date)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *ProductionRepo) Upsert(_ context.Context, e *entity.ProductionEntry) error {
	cp := *e
	r.Entries[dayKey(e.FoodID, e.Date)] = &cp
	return nil
}

func (r *ProductionRepo) TotalQuantity(_ context.Context, foodID string) (int, error) {
	total := 0
	for _, e := range r.Entries {
		if e.FoodID == foodID {
			total += e.QuantityPrepared
		}
	}
	return total, nil
}

func (r *ProductionRepo) ListRecent(_ context.Context, limit int) ([]*entity.ProductionEntry, error) {
	var out []*entity.ProductionEntry
	for _, e := range r.Entries {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Corriente de ventas ───────────────────────────────────────────────────────

// SalesRepo corriente de ventas en memoria, clave (food_id, fecha).
type SalesRepo struct {
	Entries map[string]*entity.SalesEntry
}

var _ repository.SalesRepository = (*SalesRepo)(nil)

func NewSalesRepo() *SalesRepo {
	return &SalesRepo{Entries: make(map[string]*entity.SalesEntry)}
}

func (r *SalesRepo) Get(_ context.Context, foodID string, date time.Time) (*entity.SalesEntry, error) {
	e, ok := r.Entries[dayKey(foodID, date)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *SalesRepo) Upsert(_ context.Context, e *entity.SalesEntry) error {
	cp := *e
	r.Entries[dayKey(e.FoodID, e.Date)] = &cp
	return nil
}

func (r *SalesRepo) TotalQuantity(_ context.Context, foodID string) (int, error) {
	total := 0
	for _, e := range r.Entries {
		if e.FoodID == foodID {
			total += e.QuantitySold
		}
	}
	return total, nil
}

func (r *SalesRepo) ListRecent(_ context.Context, limit int) ([]*entity.SalesEntry, error) {
	var out []*entity.SalesEntry
	for _, e := range r.Entries {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Corriente de mermas ───────────────────────────────────────────────────────

// WastageRepo corriente de mermas en memoria, clave (food_id, fecha).
type WastageRepo struct {
	Entries map[string]*entity.WastageEntry
}

var _ repository.WastageRepository = (*WastageRepo)(nil)

func NewWastageRepo() *WastageRepo {
	return &WastageRepo{Entries: make(map[string]*entity.WastageEntry)}
}

func (r *WastageRepo) Get(_ context.Context, foodID string, date time.Time) (*entity.WastageEntry, error) {
	e, ok := r.Entries[dayKey(foodID, date)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *WastageRepo) Upsert(_ context.Context, e *entity.WastageEntry) error {
	cp := *e
	r.Entries[dayKey(e.FoodID, e.Date)] = &cp
	return nil
}

func (r *WastageRepo) TotalQuantity(_ context.Context, foodID string) (int, error) {
	total := 0
	for _, e := range r.Entries {
		if e.FoodID == foodID {
			total += e.QuantityWasted
		}
	}
	return total, nil
}

func (r *WastageRepo) ListRecent(_ context.Context, limit int) ([]*entity.WastageEntry, error) {
	var out []*entity.WastageEntry
	for _, e := range r.Entries {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Alertas ───────────────────────────────────────────────────────────────────

// AlertRepo alertas en memoria.
type AlertRepo struct {
	Alerts []*entity.Alert
}

var _ repository.AlertRepository = (*AlertRepo)(nil)

func NewAlertRepo() *AlertRepo {
	return &AlertRepo{}
}

func (r *AlertRepo) Create(_ context.Context, a *entity.Alert) error {
	cp := *a
	r.Alerts = append(r.Alerts, &cp)
	return nil
}

func (r *AlertRepo) GetByID(_ context.Context, id string) (*entity.Alert, error) {
	for _, a := range r.Alerts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("alerta %s: %w", id, domain.ErrNotFound)
}

func (r *AlertRepo) GetUnresolved(_ context.Context, foodID string, date time.Time, alertType string) (*entity.Alert, error) {
	for _, a := range r.Alerts {
		if a.FoodID == foodID && a.AlertDate.Equal(date) && a.Type == alertType && !a.IsResolved {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *AlertRepo) UpdateEvaluation(_ context.Context, upd *entity.Alert) error {
	for _, a := range r.Alerts {
		if a.ID == upd.ID && !a.IsResolved {
			a.Message = upd.Message
			a.WastagePercentage = upd.WastagePercentage
			a.Severity = upd.Severity
			return nil
		}
	}
	return fmt.Errorf("alerta %s no está viva: %w", upd.ID, domain.ErrConflict)
}

func (r *AlertRepo) MarkResolved(_ context.Context, upd *entity.Alert) error {
	for _, a := range r.Alerts {
		if a.ID == upd.ID && !a.IsResolved {
			a.IsResolved = true
			a.ResolvedBy = upd.ResolvedBy
			a.ResolvedAt = upd.ResolvedAt
			a.ResolutionNotes = upd.ResolutionNotes
			return nil
		}
	}
	return fmt.Errorf("alerta %s ya resuelta: %w", upd.ID, domain.ErrConflict)
}

func (r *AlertRepo) List(_ context.Context, resolved bool, limit int) ([]*entity.Alert, error) {
	var out []*entity.Alert
	for _, a := range r.Alerts {
		if a.IsResolved == resolved {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Auditoría ─────────────────────────────────────────────────────────────────

// AuditRepo registro de auditoría en memoria, solo inserción.
type AuditRepo struct {
	Records []*entity.AuditRecord
}

var _ repository.AuditRepository = (*AuditRepo)(nil)

func NewAuditRepo() *AuditRepo {
	return &AuditRepo{}
}

func (r *AuditRepo) Create(_ context.Context, rec *entity.AuditRecord) error {
	cp := *rec
	r.Records = append(r.Records, &cp)
	return nil
}

func (r *AuditRepo) List(_ context.Context, tableName string, limit int) ([]*entity.AuditRecord, error) {
	var out []*entity.AuditRecord
	for _, rec := range r.Records {
		if tableName == "" || rec.TableName == tableName {
			cp := *rec
			out = append(out, &cp)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ByTable filtra los registros acumulados por tabla lógica, en orden de inserción.
func (r *AuditRepo) ByTable(tableName string) []*entity.AuditRecord {
	var out []*entity.AuditRecord
	for _, rec := range r.Records {
		if rec.TableName == tableName {
			out = append(out, rec)
		}
	}
	return out
}

// ── Transacciones ─────────────────────────────────────────────────────────────

// Store agrupa los repos en memoria y actúa como TxRunner falso.
type Store struct {
	Foods      *FoodRepo
	Production *ProductionRepo
	Sales      *SalesRepo
	Wastage    *WastageRepo
	Alerts     *AlertRepo
	Audit      *AuditRepo
}

// NewStore construye el almacén en memoria completo.
func NewStore() *Store {
	return &Store{
		Foods:      NewFoodRepo(),
		Production: NewProductionRepo(),
		Sales:      NewSalesRepo(),
		Wastage:    NewWastageRepo(),
		Alerts:     NewAlertRepo(),
		Audit:      NewAuditRepo(),
	}
}

// Run ejecuta fn sobre los repos compartidos. No hay rollback real: los tests
// que verifican atomicidad comprueban que el caso de uso no escribió nada
// antes de fallar la validación.
func (s *Store) Run(_ context.Context, fn func(
	foodRepo repository.FoodItemRepository,
	prodRepo repository.ProductionRepository,
	salesRepo repository.SalesRepository,
	wastageRepo repository.WastageRepository,
	alertRepo repository.AlertRepository,
	auditRepo repository.AuditRepository,
) error) error {
	return fn(s.Foods, s.Production, s.Sales, s.Wastage, s.Alerts, s.Audit)
}
