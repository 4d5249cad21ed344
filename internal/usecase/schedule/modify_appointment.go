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

type ModifyAppointmentInput struct {
	ID string

	Date       *time.Time
	Price      *decimal.Decimal
	Technician *string
	Treatment  *string

	// Nova data de retorno: atualiza o controle vigente em vigor, ou cria
	// um controle novo quando o agendamento não tem nenhum
	FollowUp *time.Time
}

// ======================================================
// USE CASE
// ======================================================

type ModifyAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewModifyAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ModifyAppointment {
	return &ModifyAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ModifyAppointment) Execute(
	ctx context.Context,
	in ModifyAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	mutated := false

	if in.FollowUp != nil {
		current := uc.resolveCurrentControl(ctx, ap)

		if current != nil {
			// Controle vigente: atualiza no lugar, sem ID novo
			patch := domain.ControlPatch{
				Date:       in.FollowUp,
				Price:      in.Price,
				Technician: in.Technician,
				Treatment:  in.Treatment,
			}
			if err := uc.repo.UpdateControl(ctx, current.ID, patch); err != nil {
				return nil, err
			}
		} else {
			// Sem controle vigente (inclusive referência pendurada):
			// cria e re-aponta o agendamento
			ctrl := domain.NewLinkedControl(
				ap,
				*in.FollowUp,
				valueOr(in.Price, ap.Price),
				valueOr(in.Technician, ap.Technician),
				valueOr(in.Treatment, ap.Treatment),
			)

			if err := uc.repo.CreateControl(ctx, ctrl); err != nil {
				return nil, err
			}

			if err := uc.repo.SetAppointmentControl(ctx, ap.ID, &ctrl.ID); err != nil {
				return nil, &domain.PartialWriteError{Op: "modify_appointment", Err: err}
			}
			ap.ControlID = &ctrl.ID
			mutated = true
		}
	}

	patch := domain.AppointmentPatch{
		Date:       in.Date,
		Price:      in.Price,
		Technician: in.Technician,
		Treatment:  in.Treatment,
	}
	if err := uc.repo.UpdateAppointment(ctx, ap.ID, patch); err != nil {
		if mutated || in.FollowUp != nil {
			return nil, &domain.PartialWriteError{Op: "modify_appointment", Err: err}
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_modified",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, ap.ID)
}

// resolveCurrentControl tolera a referência pendurada: controle apagado
// conta como "sem controle vigente".
func (uc *ModifyAppointment) resolveCurrentControl(
	ctx context.Context,
	ap *models.Appointment,
) *models.Control {

	if ap.ControlID == nil {
		return nil
	}

	ctrl, err := uc.repo.GetControl(ctx, *ap.ControlID)
	if err != nil {
		return nil
	}
	return ctrl
}

// --------------------------------------------------

func valueOr[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}
