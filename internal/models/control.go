package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Controle (retorno) vinculado a um agendamento. Revisões de data não
// reescrevem o histórico: criam um sucessor e apontam para ele.
type Control struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	ClientID      string `gorm:"type:uuid;index" json:"client_id"`
	AppointmentID string `gorm:"type:uuid;index" json:"appointment_id"`

	Date       time.Time       `gorm:"not null" json:"date"`
	Price      decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	Technician string          `gorm:"size:100" json:"technician"`
	Treatment  string          `gorm:"size:255" json:"treatment"`

	// Ponteiro da cadeia de revisões (nome de wire herdado: "control")
	SuccessorID *string `gorm:"type:uuid" json:"control,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Control) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
