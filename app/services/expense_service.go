package services

import (
	"context"
	"errors"
	"time"

	"reembolso-api/app/cache"
	"reembolso-api/app/models"
	"reembolso-api/app/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateExpenseInput carries the caller-submitted fields that the create path
// actually trusts. Status and valor_aprovado are deliberately absent: they are
// forced on every new expense.
type CreateExpenseInput struct {
	OwnerID     string
	Amount      float64
	Description string
	Category    string
}

// updatableColumns maps JSON body keys to expense columns for the generic
// partial update. Keys outside this map (id, uuid, receipt columns,
// timestamps) are dropped.
var updatableColumns = map[string]string{
	"userId":           "owner_id",
	"amount":           "amount",
	"description":      "description",
	"category":         "category",
	"status":           "status",
	"valor_aprovado":   "valor_aprovado",
	"rejection_reason": "rejection_reason",
	"approval_notes":   "approval_notes",
}

type ExpenseService struct {
	expenses *repo.ExpenseRepository
	pending  *cache.PendingCache
}

func NewExpenseService(expenses *repo.ExpenseRepository, pending *cache.PendingCache) *ExpenseService {
	return &ExpenseService{expenses: expenses, pending: pending}
}

// Create always starts an expense at pendente with no approved value,
// regardless of anything the caller submitted.
func (s *ExpenseService) Create(ctx context.Context, in CreateExpenseInput) (*models.Expense, error) {
	e := &models.Expense{
		UUID:        uuid.NewString(),
		OwnerID:     in.OwnerID,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
		Status:      models.StatusPendente,
		CreatedAt:   time.Now(),
	}
	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	s.pending.Invalidate(ctx)
	return e, nil
}

func (s *ExpenseService) Get(ctx context.Context, id string) (*models.Expense, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}
	e, err := s.expenses.FindByUUID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) List(ctx context.Context) ([]models.Expense, error) {
	return s.expenses.ListAll(ctx)
}

// Update applies a partial update from a decoded JSON body. Absent fields are
// left untouched; unknown keys (including any id) are stripped.
func (s *ExpenseService) Update(ctx context.Context, id string, body map[string]interface{}) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	fields := map[string]interface{}{}
	for k, v := range body {
		if col, ok := updatableColumns[k]; ok {
			fields[col] = v
		}
	}
	if len(fields) == 0 {
		_, err := s.Get(ctx, id)
		return err
	}
	rows, err := s.expenses.UpdateFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	s.pending.Invalidate(ctx)
	return nil
}

func (s *ExpenseService) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	rows, err := s.expenses.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	s.pending.Invalidate(ctx)
	return nil
}

// TransitionStatus moves an expense to any of the four states. valor is
// always written (null when absent); reason and notes are written only when
// supplied, so a previously set value survives a transition that omits them.
func (s *ExpenseService) TransitionStatus(ctx context.Context, id, status string, valor *float64, reason, notes *string) error {
	if !models.ValidStatus(status) {
		return ErrInvalidStatus
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	fields := map[string]interface{}{
		"status":         status,
		"valor_aprovado": valor,
	}
	if reason != nil {
		fields["rejection_reason"] = *reason
	}
	if notes != nil {
		fields["approval_notes"] = *notes
	}
	rows, err := s.expenses.UpdateFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	s.pending.Invalidate(ctx)
	return nil
}

// AttachReceipt stores the uploaded file on the expense, replacing any
// previous receipt.
func (s *ExpenseService) AttachReceipt(ctx context.Context, id string, data []byte, name, contentType string) error {
	if len(data) == 0 {
		return ErrNoFile
	}
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidID
	}
	fields := map[string]interface{}{
		"receipt_data": data,
		"receipt_name": name,
		"receipt_type": contentType,
	}
	rows, err := s.expenses.UpdateFields(ctx, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// GetReceipt fails with ErrNotFound both for a missing expense and for an
// expense that has no receipt attached.
func (s *ExpenseService) GetReceipt(ctx context.Context, id string) (*models.Expense, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.HasReceipt() {
		return nil, ErrNotFound
	}
	return e, nil
}

// ListPending applies the role-scoped visibility filter over pending
// expenses. Role is required.
func (s *ExpenseService) ListPending(ctx context.Context, role, userID string) ([]models.Expense, error) {
	var owner string
	switch role {
	case models.RoleFuncionario:
		// A funcionario without a userId sees every pending expense: the
		// owner filter degrades to no constraint. Known authorization gap,
		// preserved on purpose (see DESIGN.md).
		owner = userID
	case models.RoleSocio, models.RoleFinanceiro:
		owner = ""
	default:
		return nil, ErrMissingRole
	}
	if list, ok := s.pending.Get(ctx, role, owner); ok {
		return list, nil
	}
	list, err := s.expenses.ListPending(ctx, owner)
	if err != nil {
		return nil, err
	}
	s.pending.Put(ctx, role, owner, list)
	return list, nil
}
