package schedule

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinicdesk/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// NewLinkedControl monta o controle criado junto com (ou para) um
// agendamento, copiando a proveniência cliente/agendamento.
func NewLinkedControl(
	ap *models.Appointment,
	date time.Time,
	price decimal.Decimal,
	technician string,
	treatment string,
) *models.Control {
	return &models.Control{
		ClientID:      ap.ClientID,
		AppointmentID: ap.ID,
		Date:          date,
		Price:         price,
		Technician:    technician,
		Treatment:     treatment,
	}
}

// ForkControl monta o sucessor de uma revisão de controle. O original não
// é tocado aqui; quem persiste o sucessor também grava o ponteiro da
// cadeia no original.
func ForkControl(
	original *models.Control,
	date time.Time,
	price decimal.Decimal,
	technician string,
	treatment string,
) *models.Control {
	return &models.Control{
		ClientID:      original.ClientID,
		AppointmentID: original.AppointmentID,
		Date:          date,
		Price:         price,
		Technician:    technician,
		Treatment:     treatment,
	}
}
