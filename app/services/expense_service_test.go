package services

import (
	"context"
	"testing"
	"time"

	"reembolso-api/app/models"
	"reembolso-api/app/repo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ExpenseServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	repo     *repo.ExpenseRepository
	expenses *ExpenseService
	ctx      context.Context
}

func (s *ExpenseServiceSuite) SetupTest() {
	s.db = newTestDB(s.T())
	s.repo = repo.NewExpenseRepository(s.db)
	// nil cache: redis is optional and the service must work without it
	s.expenses = NewExpenseService(s.repo, nil)
	s.ctx = context.Background()
}

func (s *ExpenseServiceSuite) create(owner string, amount float64) *models.Expense {
	e, err := s.expenses.Create(s.ctx, CreateExpenseInput{OwnerID: owner, Amount: amount, Description: "despesa"})
	require.NoError(s.T(), err)
	return e
}

func (s *ExpenseServiceSuite) TestCreateForcesPending() {
	e := s.create("u1", 100)
	assert.Equal(s.T(), models.StatusPendente, e.Status)
	assert.Nil(s.T(), e.ValorAprovado)
	assert.False(s.T(), e.CreatedAt.IsZero())

	got, err := s.expenses.Get(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusPendente, got.Status)
	assert.Nil(s.T(), got.ValorAprovado)
}

func (s *ExpenseServiceSuite) TestApprovalScenario() {
	e := s.create("u1", 100)

	valor := 80.0
	require.NoError(s.T(), s.expenses.TransitionStatus(s.ctx, e.UUID, models.StatusAprovado, &valor, nil, nil))

	got, err := s.expenses.Get(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusAprovado, got.Status)
	require.NotNil(s.T(), got.ValorAprovado)
	assert.Equal(s.T(), 80.0, *got.ValorAprovado)

	// no receipt was ever attached
	_, err = s.expenses.GetReceipt(s.ctx, e.UUID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ExpenseServiceSuite) TestTransitionInvalidStatusMutatesNothing() {
	e := s.create("u1", 100)

	err := s.expenses.TransitionStatus(s.ctx, e.UUID, "arquivado", nil, nil, nil)
	assert.ErrorIs(s.T(), err, ErrInvalidStatus)

	got, err := s.expenses.Get(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusPendente, got.Status)
	assert.Nil(s.T(), got.ValorAprovado)
}

func (s *ExpenseServiceSuite) TestTransitionKeepsOmittedFields() {
	e := s.create("u1", 100)

	reason := "sem nota fiscal"
	require.NoError(s.T(), s.expenses.TransitionStatus(s.ctx, e.UUID, models.StatusReprovado, nil, &reason, nil))

	// a later transition that omits the reason must not clear it
	valor := 50.0
	notes := "aprovado parcialmente"
	require.NoError(s.T(), s.expenses.TransitionStatus(s.ctx, e.UUID, models.StatusParcial, &valor, nil, &notes))

	got, err := s.expenses.Get(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusParcial, got.Status)
	require.NotNil(s.T(), got.RejectionReason)
	assert.Equal(s.T(), "sem nota fiscal", *got.RejectionReason)
	require.NotNil(s.T(), got.ApprovalNotes)
	assert.Equal(s.T(), "aprovado parcialmente", *got.ApprovalNotes)
}

func (s *ExpenseServiceSuite) TestTransitionResetsValorWhenAbsent() {
	e := s.create("u1", 100)

	valor := 80.0
	require.NoError(s.T(), s.expenses.TransitionStatus(s.ctx, e.UUID, models.StatusAprovado, &valor, nil, nil))
	require.NoError(s.T(), s.expenses.TransitionStatus(s.ctx, e.UUID, models.StatusPendente, nil, nil, nil))

	got, err := s.expenses.Get(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), got.ValorAprovado, "valor_aprovado defaults back to null when not supplied")
}

func (s *ExpenseServiceSuite) TestTransitionRepeatedIdenticalIsNotAMiss() {
	e := s.create("u1", 100)

	valor := 80.0
	require.NoError(s.T(), s.expenses.TransitionStatus(s.ctx, e.UUID, models.StatusAprovado, &valor, nil, nil))
	// writing the exact same values again matches the row and must succeed
	require.NoError(s.T(), s.expenses.TransitionStatus(s.ctx, e.UUID, models.StatusAprovado, &valor, nil, nil))

	got, err := s.expenses.Get(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), models.StatusAprovado, got.Status)
	require.NotNil(s.T(), got.ValorAprovado)
	assert.Equal(s.T(), 80.0, *got.ValorAprovado)
}

func (s *ExpenseServiceSuite) TestUpdateRepeatedIdenticalIsNotAMiss() {
	e := s.create("u1", 100)

	body := map[string]interface{}{"description": "taxi"}
	require.NoError(s.T(), s.expenses.Update(s.ctx, e.UUID, body))
	require.NoError(s.T(), s.expenses.Update(s.ctx, e.UUID, body))
}

func (s *ExpenseServiceSuite) TestTransitionErrors() {
	err := s.expenses.TransitionStatus(s.ctx, "bogus", models.StatusAprovado, nil, nil, nil)
	assert.ErrorIs(s.T(), err, ErrInvalidID)

	err = s.expenses.TransitionStatus(s.ctx, uuid.NewString(), models.StatusAprovado, nil, nil, nil)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ExpenseServiceSuite) TestUpdateIsPartialAndStripsID() {
	e := s.create("u1", 100)

	err := s.expenses.Update(s.ctx, e.UUID, map[string]interface{}{
		"description": "taxi",
		"id":          "injected",
		"uuid":        "injected",
		"receiptData": "injected",
	})
	require.NoError(s.T(), err)

	got, err := s.expenses.Get(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "taxi", got.Description)
	assert.Equal(s.T(), e.UUID, got.UUID)
	assert.Equal(s.T(), 100.0, got.Amount, "fields not supplied are left untouched")
	assert.False(s.T(), got.HasReceipt())
}

func (s *ExpenseServiceSuite) TestUpdateErrors() {
	assert.ErrorIs(s.T(), s.expenses.Update(s.ctx, "bogus", map[string]interface{}{"amount": 1.0}), ErrInvalidID)
	assert.ErrorIs(s.T(), s.expenses.Update(s.ctx, uuid.NewString(), map[string]interface{}{"amount": 1.0}), ErrNotFound)
}

func (s *ExpenseServiceSuite) TestDelete() {
	e := s.create("u1", 100)
	require.NoError(s.T(), s.expenses.Delete(s.ctx, e.UUID))

	_, err := s.expenses.Get(s.ctx, e.UUID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
	assert.ErrorIs(s.T(), s.expenses.Delete(s.ctx, e.UUID), ErrNotFound)
}

func (s *ExpenseServiceSuite) TestListNewestFirst() {
	older := &models.Expense{UUID: uuid.NewString(), OwnerID: "u1", Amount: 10, Status: models.StatusPendente, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.Expense{UUID: uuid.NewString(), OwnerID: "u1", Amount: 20, Status: models.StatusPendente, CreatedAt: time.Now()}
	require.NoError(s.T(), s.repo.Create(s.ctx, older))
	require.NoError(s.T(), s.repo.Create(s.ctx, newer))

	list, err := s.expenses.List(s.ctx)
	require.NoError(s.T(), err)
	require.Len(s.T(), list, 2)
	assert.Equal(s.T(), newer.UUID, list[0].UUID)
	assert.Equal(s.T(), older.UUID, list[1].UUID)
}

func (s *ExpenseServiceSuite) TestReceiptRoundTrip() {
	e := s.create("u1", 100)

	assert.ErrorIs(s.T(), s.expenses.AttachReceipt(s.ctx, e.UUID, nil, "nota.png", "image/png"), ErrNoFile)

	require.NoError(s.T(), s.expenses.AttachReceipt(s.ctx, e.UUID, []byte("png-bytes"), "nota.png", "image/png"))
	got, err := s.expenses.GetReceipt(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []byte("png-bytes"), got.ReceiptData)
	assert.Equal(s.T(), "nota.png", got.ReceiptName)
	assert.Equal(s.T(), "image/png", got.ReceiptType)

	// last write wins
	require.NoError(s.T(), s.expenses.AttachReceipt(s.ctx, e.UUID, []byte("pdf-bytes"), "nota.pdf", "application/pdf"))
	got, err = s.expenses.GetReceipt(s.ctx, e.UUID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), []byte("pdf-bytes"), got.ReceiptData)
	assert.Equal(s.T(), "application/pdf", got.ReceiptType)
}

func (s *ExpenseServiceSuite) TestAttachReceiptNotFound() {
	err := s.expenses.AttachReceipt(s.ctx, uuid.NewString(), []byte("x"), "nota.png", "image/png")
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *ExpenseServiceSuite) TestListPendingRoleScoping() {
	e1 := s.create("u1", 10)
	e2 := s.create("u1", 20)
	s.create("u2", 30)

	// approved expenses never show up as pending
	valor := 10.0
	require.NoError(s.T(), s.expenses.TransitionStatus(s.ctx, e2.UUID, models.StatusAprovado, &valor, nil, nil))

	mine, err := s.expenses.ListPending(s.ctx, models.RoleFuncionario, "u1")
	require.NoError(s.T(), err)
	require.Len(s.T(), mine, 1)
	assert.Equal(s.T(), e1.UUID, mine[0].UUID)

	all, err := s.expenses.ListPending(s.ctx, models.RoleSocio, "")
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)

	all, err = s.expenses.ListPending(s.ctx, models.RoleFinanceiro, "u1")
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2, "financeiro ignores userId")

	// funcionario without a userId degrades to no owner constraint
	all, err = s.expenses.ListPending(s.ctx, models.RoleFuncionario, "")
	require.NoError(s.T(), err)
	assert.Len(s.T(), all, 2)
}

func (s *ExpenseServiceSuite) TestListPendingRequiresRole() {
	_, err := s.expenses.ListPending(s.ctx, "", "u1")
	assert.ErrorIs(s.T(), err, ErrMissingRole)

	_, err = s.expenses.ListPending(s.ctx, "gerente", "u1")
	assert.ErrorIs(s.T(), err, ErrMissingRole)
}

func TestExpenseServiceSuite(t *testing.T) {
	suite.Run(t, new(ExpenseServiceSuite))
}
