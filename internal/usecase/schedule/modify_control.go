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

type ModifyControlInput struct {
	ID string

	// Atualização da data do próprio controle, no lugar
	Date *time.Time

	// Data de revisão: bifurca um sucessor em vez de reescrever o
	// histórico; o original ganha o ponteiro da cadeia
	Revision *time.Time

	Price      *decimal.Decimal
	Technician *string
	Treatment  *string
}

// ======================================================
// USE CASE
// ======================================================

// ModifyControl mantém a cadeia de revisões append-only. A referência de
// controle do agendamento NÃO avança para o sucessor; a cadeia é
// percorrida pelo ponteiro gravado no original.
type ModifyControl struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewModifyControl(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *ModifyControl {
	return &ModifyControl{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ModifyControl) Execute(
	ctx context.Context,
	in ModifyControlInput,
) (*models.Control, error) {

	original, err := uc.repo.GetControl(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	var successorID *string

	if in.Revision != nil {
		successor := domain.ForkControl(
			original,
			*in.Revision,
			valueOr(in.Price, original.Price),
			valueOr(in.Technician, original.Technician),
			valueOr(in.Treatment, original.Treatment),
		)

		if err := uc.repo.CreateControl(ctx, successor); err != nil {
			return nil, err
		}
		successorID = &successor.ID
	}

	patch := domain.ControlPatch{
		Date:        in.Date,
		Price:       in.Price,
		Technician:  in.Technician,
		Treatment:   in.Treatment,
		SuccessorID: successorID,
	}
	if err := uc.repo.UpdateControl(ctx, original.ID, patch); err != nil {
		if successorID != nil {
			// Sucessor persistiu, ponteiro não: inconsistência exposta
			return nil, &domain.PartialWriteError{Op: "modify_control", Err: err}
		}
		return nil, err
	}

	action := "control_modified"
	if successorID != nil {
		action = "control_revised"
	}
	uc.audit.Dispatch(audit.Event{
		Action:   action,
		Entity:   "control",
		EntityID: &original.ID,
	})

	return uc.repo.GetControl(ctx, original.ID)
}
