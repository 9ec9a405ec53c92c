package models

import "time"

// Expense lifecycle states. The graph is total: any state may move to any
// other state; only enum membership is validated.
const (
	StatusPendente  = "pendente"
	StatusAprovado  = "aprovado"
	StatusReprovado = "reprovado"
	StatusParcial   = "parcial"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPendente, StatusAprovado, StatusReprovado, StatusParcial:
		return true
	}
	return false
}

type Expense struct {
	ID              uint      `gorm:"primaryKey" json:"-"`
	UUID            string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	OwnerID         string    `gorm:"index;size:36" json:"userId,omitempty"`
	Amount          float64   `json:"amount"`
	Description     string    `gorm:"size:512" json:"description,omitempty"`
	Category        string    `gorm:"size:128" json:"category,omitempty"`
	Status          string    `gorm:"size:16;not null;default:pendente;index" json:"status"`
	ValorAprovado   *float64  `json:"valor_aprovado"`
	RejectionReason *string   `gorm:"size:512" json:"rejection_reason,omitempty"`
	ApprovalNotes   *string   `gorm:"size:512" json:"approval_notes,omitempty"`
	ReceiptData     []byte    `gorm:"type:mediumblob" json:"-"`
	ReceiptName     string    `gorm:"size:255" json:"-"`
	ReceiptType     string    `gorm:"size:128" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"-"`
}

func (e *Expense) HasReceipt() bool { return len(e.ReceiptData) > 0 }
