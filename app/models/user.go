package models

import "time"

// Roles fixed by the reimbursement workflow.
const (
	RoleFuncionario = "funcionario"
	RoleSocio       = "socio"
	RoleFinanceiro  = "financeiro"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	UUID         string    `gorm:"uniqueIndex;size:36;not null" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Name         string    `gorm:"size:255" json:"name"`
	Role         string    `gorm:"size:32;not null;default:funcionario" json:"role"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"-"`
}
