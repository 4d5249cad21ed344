package schedule

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinicdesk/agenda-api/internal/models"
)

// AppointmentPatch atualiza campos individuais; nil deixa o campo intacto.
type AppointmentPatch struct {
	Date       *time.Time
	Price      *decimal.Decimal
	Technician *string
	Treatment  *string
}

// ControlPatch idem; SuccessorID aponta a revisão recém-criada.
type ControlPatch struct {
	Date        *time.Time
	Price       *decimal.Decimal
	Technician  *string
	Treatment   *string
	SuccessorID *string
}

type Repository interface {
	// -------- Clients --------
	CreateClient(ctx context.Context, client *models.Client) error

	GetClient(ctx context.Context, id string) (*models.Client, error)

	// Ordenado por nome e sobrenome ascendente
	ListClients(ctx context.Context) ([]models.Client, error)

	AppendClientAppointment(ctx context.Context, clientID, appointmentID string) error

	// No-op quando o cliente já não existe
	DeleteClient(ctx context.Context, id string) error

	// -------- Appointments --------
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	// Ordenados por data ascendente
	ListAppointments(ctx context.Context) ([]models.Appointment, error)
	ListClientAppointments(ctx context.Context, clientID string) ([]models.Appointment, error)

	UpdateAppointment(ctx context.Context, id string, patch AppointmentPatch) error

	// controlID nil limpa a referência
	SetAppointmentControl(ctx context.Context, id string, controlID *string) error

	DeleteAppointment(ctx context.Context, id string) error
	DeleteClientAppointments(ctx context.Context, clientID string) error

	// -------- Controls --------
	CreateControl(ctx context.Context, ctrl *models.Control) error

	GetControl(ctx context.Context, id string) (*models.Control, error)

	// Ordenados por data ascendente
	ListControls(ctx context.Context) ([]models.Control, error)
	ListClientControls(ctx context.Context, clientID string) ([]models.Control, error)

	UpdateControl(ctx context.Context, id string, patch ControlPatch) error

	DeleteControl(ctx context.Context, id string) error
	DeleteClientControls(ctx context.Context, clientID string) error
	DeleteAppointmentControls(ctx context.Context, appointmentID string) error
}
