package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID string `gorm:"type:uuid;index" json:"client_id"`

	Date       time.Time       `gorm:"not null" json:"appointment"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	Technician string          `gorm:"size:100" json:"technician"`
	Treatment  string          `gorm:"size:255" json:"treatment"`

	// Referência nullable ao controle vigente; pode ficar pendurada
	// após um delete de controle e é resolvida na leitura
	ControlID *string `gorm:"type:uuid" json:"control"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
