package schedule

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinicdesk/agenda-api/internal/audit"
	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
	"github.com/clinicdesk/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type AddAppointmentInput struct {
	ClientID string

	Date       time.Time
	Price      decimal.Decimal
	Technician string
	Treatment  string

	// Data do controle de retorno; nil = sem controle
	Control *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type AddAppointment struct {
	repo   domain.Repository
	linker *LinkControl
	audit  *audit.Dispatcher
}

func NewAddAppointment(
	repo domain.Repository,
	linker *LinkControl,
	auditDispatcher *audit.Dispatcher,
) *AddAppointment {
	return &AddAppointment{
		repo:   repo,
		linker: linker,
		audit:  auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *AddAppointment) Execute(
	ctx context.Context,
	in AddAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ClientID:   client.ID,
		Date:       in.Date,
		Price:      in.Price,
		Technician: in.Technician,
		Treatment:  in.Treatment,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	var payload *ControlPayload
	if in.Control != nil {
		payload = &ControlPayload{
			Date:       *in.Control,
			Price:      in.Price,
			Technician: in.Technician,
			Treatment:  in.Treatment,
		}
	}

	controlID, err := uc.linker.Execute(ctx, ap.ID, payload)
	if err != nil {
		if domain.IsPartialWrite(err) {
			return nil, err
		}
		return nil, &domain.PartialWriteError{Op: "add_appointment", Err: err}
	}
	ap.ControlID = controlID

	if err := uc.repo.AppendClientAppointment(ctx, client.ID, ap.ID); err != nil {
		return nil, &domain.PartialWriteError{Op: "add_appointment", Err: err}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
