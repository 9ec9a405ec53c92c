package repo

import (
	"context"

	"reembolso-api/app/models"

	"gorm.io/gorm"
)

type ExpenseRepository struct{ db *gorm.DB }

func NewExpenseRepository(db *gorm.DB) *ExpenseRepository { return &ExpenseRepository{db: db} }

func (r *ExpenseRepository) Create(ctx context.Context, e *models.Expense) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExpenseRepository) FindByUUID(ctx context.Context, id string) (*models.Expense, error) {
	var e models.Expense
	if err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *ExpenseRepository) ListAll(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	return out, r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
}

// UpdateFields applies a partial update and reports how many rows matched.
func (r *ExpenseRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&models.Expense{}).Where("uuid = ?", id).Updates(fields)
	return tx.RowsAffected, tx.Error
}

func (r *ExpenseRepository) Delete(ctx context.Context, id string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("uuid = ?", id).Delete(&models.Expense{})
	return tx.RowsAffected, tx.Error
}

// ListPending returns pending expenses, optionally restricted to one owner.
// An empty owner applies no owner constraint.
func (r *ExpenseRepository) ListPending(ctx context.Context, owner string) ([]models.Expense, error) {
	q := r.db.WithContext(ctx).Where("status = ?", models.StatusPendente)
	if owner != "" {
		q = q.Where("owner_id = ?", owner)
	}
	var out []models.Expense
	return out, q.Order("created_at DESC").Find(&out).Error
}
