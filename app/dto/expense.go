package dto

// CreateExpenseRequest decodes the submission body. Status and ValorAprovado
// are accepted by the decoder but never trusted: the create path overwrites
// both unconditionally.
type CreateExpenseRequest struct {
	UserID        string   `json:"userId"`
	Amount        float64  `json:"amount"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Status        string   `json:"status"`
	ValorAprovado *float64 `json:"valor_aprovado"`
}

// StatusUpdateRequest carries a status transition. Pointer fields distinguish
// "absent" from "empty": absent reason/notes leave the stored value alone.
type StatusUpdateRequest struct {
	Status          string   `json:"status"`
	ValorAprovado   *float64 `json:"valor_aprovado"`
	RejectionReason *string  `json:"rejection_reason"`
	ApprovalNotes   *string  `json:"approval_notes"`
}
