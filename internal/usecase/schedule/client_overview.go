package schedule

import (
	"context"
	"time"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
	"github.com/clinicdesk/agenda-api/internal/dto"
	"github.com/clinicdesk/agenda-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// ListClientOverviews devolve os clientes ordenados por nome/sobrenome,
// cada um com agendamentos e controles normalizados: cada lado resolve a
// data do contraparte e o ponteiro de revisão não vaza para a resposta.
type ListClientOverviews struct {
	repo domain.Repository
}

func NewListClientOverviews(repo domain.Repository) *ListClientOverviews {
	return &ListClientOverviews{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ListClientOverviews) Execute(ctx context.Context) ([]dto.ClientOverview, error) {

	clients, err := uc.repo.ListClients(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]dto.ClientOverview, 0, len(clients))
	for i := range clients {
		client := clients[i]

		appointments, err := uc.normalizedAppointments(ctx, &client)
		if err != nil {
			return nil, err
		}

		controls, err := uc.normalizedControls(ctx, &client)
		if err != nil {
			return nil, err
		}

		overviews = append(overviews, dto.ClientOverview{
			ID:           client.ID,
			Name:         client.Name,
			Surname:      client.Surname,
			Phone:        client.Phone,
			Address:      client.Address,
			Appointments: appointments,
			Controls:     controls,
		})
	}

	return overviews, nil
}

// --------------------------------------------------

func (uc *ListClientOverviews) normalizedAppointments(
	ctx context.Context,
	client *models.Client,
) ([]dto.AppointmentRow, error) {

	aps, err := uc.repo.ListClientAppointments(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.AppointmentRow, 0, len(aps))
	for i := range aps {
		ap := aps[i]

		// Referência pendurada resolve como "sem controle"
		var controlDate *time.Time
		if ap.ControlID != nil {
			if ctrl, err := uc.repo.GetControl(ctx, *ap.ControlID); err == nil {
				controlDate = &ctrl.Date
			}
		}

		rows = append(rows, dto.AppointmentRow{
			ID:         ap.ID,
			Date:       ap.Date,
			Control:    controlDate,
			Price:      ap.Price,
			Technician: ap.Technician,
			Treatment:  ap.Treatment,
		})
	}

	return rows, nil
}

func (uc *ListClientOverviews) normalizedControls(
	ctx context.Context,
	client *models.Client,
) ([]dto.ControlRow, error) {

	ctrls, err := uc.repo.ListClientControls(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.ControlRow, 0, len(ctrls))
	for i := range ctrls {
		ctrl := ctrls[i]

		var appointmentDate *time.Time
		if ap, err := uc.repo.GetAppointment(ctx, ctrl.AppointmentID); err == nil {
			appointmentDate = &ap.Date
		}

		// ControlRow não tem campo de sucessor: o ponteiro da cadeia
		// fica fora da resposta por construção
		rows = append(rows, dto.ControlRow{
			ID:          ctrl.ID,
			Date:        ctrl.Date,
			Appointment: appointmentDate,
			Price:       ctrl.Price,
			Technician:  ctrl.Technician,
			Treatment:   ctrl.Treatment,
		})
	}

	return rows, nil
}
