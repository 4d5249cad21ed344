package schedule

import (
	"context"
	"errors"

	"github.com/clinicdesk/agenda-api/internal/audit"
	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
)

// ======================================================
// USE CASE
// ======================================================

// Cascade limpa registros dependentes em passos independentes, sem
// transação entre coleções. Cada passo roda mesmo que o anterior falhe;
// os erros saem agregados num único failure. Re-invocar sobre IDs já
// apagados é um no-op bem-sucedido.
type Cascade struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCascade(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *Cascade {
	return &Cascade{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// ======================================================
// DELETE CLIENT
// ======================================================

// DeleteClient apaga cliente, depois agendamentos, depois controles.
// Controles podem já ter caído via cascade de agendamento; o deleteMany
// por clientId cobre o resto.
func (uc *Cascade) DeleteClient(ctx context.Context, clientID string) error {
	var errs []error

	if err := uc.repo.DeleteClient(ctx, clientID); err != nil {
		errs = append(errs, err)
	}
	if err := uc.repo.DeleteClientAppointments(ctx, clientID); err != nil {
		errs = append(errs, err)
	}
	if err := uc.repo.DeleteClientControls(ctx, clientID); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &clientID,
	})

	return nil
}

// ======================================================
// DELETE APPOINTMENT
// ======================================================

func (uc *Cascade) DeleteAppointment(ctx context.Context, appointmentID string) error {
	var errs []error

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		errs = append(errs, err)
	}
	if err := uc.repo.DeleteAppointmentControls(ctx, appointmentID); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})

	return nil
}

// ======================================================
// DELETE CONTROL
// ======================================================

// DeleteControl apaga só o controle. A referência no agendamento fica
// pendurada de propósito; a leitura resolve ausência como "sem controle".
func (uc *Cascade) DeleteControl(ctx context.Context, controlID string) error {
	if err := uc.repo.DeleteControl(ctx, controlID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "control_deleted",
		Entity:   "control",
		EntityID: &controlID,
	})

	return nil
}
