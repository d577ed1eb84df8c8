package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Comedor-api/internal/domain"
	"github.com/jhoicas/Comedor-api/internal/domain/entity"
	"github.com/jhoicas/Comedor-api/internal/domain/repository"
)

var _ repository.FoodItemRepository = (*FoodItemRepo)(nil)

// FoodItemRepo implementación de FoodItemRepository sobre PostgreSQL (usable con pool o tx).
type FoodItemRepo struct {
	q Querier
}

// NewFoodItemRepository construye el adaptador del catálogo. Pasar pool o tx (Querier).
func NewFoodItemRepository(q Querier) *FoodItemRepo {
	return &FoodItemRepo{q: q}
}

const foodItemColumns = `
	f.id, f.name, f.category_id, COALESCE(c.name, ''), f.unit_id, f.supplier_id,
	f.cost_per_unit, f.selling_price_per_unit, f.min_stock_level, f.max_stock_level,
	f.is_active, f.created_at, f.updated_at`

func scanFoodItem(row pgx.Row) (*entity.FoodItem, error) {
	var f entity.FoodItem
	err := row.Scan(
		&f.ID, &f.Name, &f.CategoryID, &f.CategoryName, &f.UnitID, &f.SupplierID,
		&f.CostPerUnit, &f.SellingPricePerUnit, &f.MinStockLevel, &f.MaxStockLevel,
		&f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste un nuevo alimento.
func (r *FoodItemRepo) Create(ctx context.Context, item *entity.FoodItem) error {
	query := `
		INSERT INTO food_items (id, name, category_id, unit_id, supplier_id, cost_per_unit,
			selling_price_per_unit, min_stock_level, max_stock_level, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.Name, item.CategoryID, item.UnitID, item.SupplierID,
		item.CostPerUnit, item.SellingPricePerUnit, item.MinStockLevel, item.MaxStockLevel,
		item.IsActive, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return translateErr("insert food item", err)
	}
	return nil
}

// GetByID obtiene un alimento por ID, con el nombre de su categoría.
func (r *FoodItemRepo) GetByID(ctx context.Context, id string) (*entity.FoodItem, error) {
	query := `
		SELECT ` + foodItemColumns + `
		FROM food_items f
		LEFT JOIN categories c ON c.id = f.category_id
		WHERE f.id = $1`
	item, err := scanFoodItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alimento %s: %w", id, domain.ErrNotFound)
		}
		return nil, translateErr("get food item", err)
	}
	return item, nil
}

// GetForUpdate obtiene el alimento bloqueando su fila (SELECT FOR UPDATE).
// Es el punto de serialización de las entregas concurrentes sobre el mismo alimento.
func (r *FoodItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.FoodItem, error) {
	query := `
		SELECT ` + foodItemColumns + `
		FROM food_items f
		LEFT JOIN categories c ON c.id = f.category_id
		WHERE f.id = $1
		FOR UPDATE OF f`
	item, err := scanFoodItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alimento %s: %w", id, domain.ErrNotFound)
		}
		return nil, translateErr("get food item for update", err)
	}
	return item, nil
}

// Update aplica la actualización parcial tipada: solo los campos no-nil llegan al SET.
func (r *FoodItemRepo) Update(ctx context.Context, id string, upd repository.FoodItemUpdate) (*entity.FoodItem, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.CategoryID != nil {
		add("category_id", *upd.CategoryID)
	}
	if upd.UnitID != nil {
		add("unit_id", *upd.UnitID)
	}
	if upd.SupplierID != nil {
		add("supplier_id", *upd.SupplierID)
	}
	if upd.CostPerUnit != nil {
		add("cost_per_unit", *upd.CostPerUnit)
	}
	if upd.SellingPricePerUnit != nil {
		add("selling_price_per_unit", *upd.SellingPricePerUnit)
	}
	if upd.MinStockLevel != nil {
		add("min_stock_level", *upd.MinStockLevel)
	}
	if upd.MaxStockLevel != nil {
		add("max_stock_level", *upd.MaxStockLevel)
	}
	if upd.IsActive != nil {
		add("is_active", *upd.IsActive)
	}

	query := fmt.Sprintf(`UPDATE food_items SET %s WHERE id = $1`, strings.Join(sets, ", "))
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return nil, translateErr("update food item", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, fmt.Errorf("alimento %s: %w", id, domain.ErrNotFound)
	}
	return r.GetByID(ctx, id)
}

// List lista el catálogo paginado, por nombre.
func (r *FoodItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.FoodItem, error) {
	query := `
		SELECT ` + foodItemColumns + `
		FROM food_items f
		LEFT JOIN categories c ON c.id = f.category_id
		ORDER BY f.name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, translateErr("list food items", err)
	}
	defer rows.Close()

	var items []*entity.FoodItem
	for rows.Next() {
		item, err := scanFoodItem(rows)
		if err != nil {
			return nil, translateErr("scan food item", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
