package schedule

import (
	"context"

	"github.com/clinicdesk/agenda-api/internal/audit"
	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
	"github.com/clinicdesk/agenda-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type RegisterClientInput struct {
	Name    string
	Surname string
	Phone   string
	Address string

	// Primeiro agendamento opcional, criado na mesma chamada
	Appointment *AddAppointmentInput
}

// ======================================================
// USE CASE
// ======================================================

type RegisterClient struct {
	repo         domain.Repository
	appointments *AddAppointment
	audit        *audit.Dispatcher
}

func NewRegisterClient(
	repo domain.Repository,
	appointments *AddAppointment,
	auditDispatcher *audit.Dispatcher,
) *RegisterClient {
	return &RegisterClient{
		repo:         repo,
		appointments: appointments,
		audit:        auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RegisterClient) Execute(
	ctx context.Context,
	in RegisterClientInput,
) (*models.Client, error) {

	client := &models.Client{
		Name:    in.Name,
		Surname: in.Surname,
		Phone:   in.Phone,
		Address: in.Address,
	}

	if err := uc.repo.CreateClient(ctx, client); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &client.ID,
	})

	if in.Appointment != nil {
		apIn := *in.Appointment
		apIn.ClientID = client.ID

		if _, err := uc.appointments.Execute(ctx, apIn); err != nil {
			// Cliente já persistiu; o agendamento falhou no meio
			return nil, &domain.PartialWriteError{Op: "register_client", Err: err}
		}
	}

	return client, nil
}
