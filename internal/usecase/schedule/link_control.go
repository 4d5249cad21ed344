package schedule

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
)

// ======================================================
// INPUT
// ======================================================

type ControlPayload struct {
	Date       time.Time
	Price      decimal.Decimal
	Technician string
	Treatment  string
}

// ======================================================
// USE CASE
// ======================================================

// LinkControl cria o controle de um agendamento e grava a referência de
// volta. São duas escritas sem transação: se a segunda falhar, o controle
// já persistiu e o erro sai como PartialWriteError.
type LinkControl struct {
	repo domain.Repository
}

func NewLinkControl(repo domain.Repository) *LinkControl {
	return &LinkControl{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute retorna o ID do controle criado, ou nil quando payload é nil
// (o agendamento fica intacto).
func (uc *LinkControl) Execute(
	ctx context.Context,
	appointmentID string,
	payload *ControlPayload,
) (*string, error) {

	if payload == nil {
		return nil, nil
	}

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	ctrl := domain.NewLinkedControl(
		ap,
		payload.Date,
		payload.Price,
		payload.Technician,
		payload.Treatment,
	)

	if err := uc.repo.CreateControl(ctx, ctrl); err != nil {
		return nil, err
	}

	if err := uc.repo.SetAppointmentControl(ctx, ap.ID, &ctrl.ID); err != nil {
		return &ctrl.ID, &domain.PartialWriteError{Op: "link_control", Err: err}
	}

	return &ctrl.ID, nil
}
