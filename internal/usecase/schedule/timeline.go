package schedule

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
)

// ======================================================
// USE CASE
// ======================================================

// GlobalTimeline mescla todos os agendamentos e controles numa sequência
// única ordenada por data, cada linha denormalizada com nome/sobrenome/
// telefone do cliente. Leitura pura: re-derivada a cada chamada.
type GlobalTimeline struct {
	repo domain.Repository
}

func NewGlobalTimeline(repo domain.Repository) *GlobalTimeline {
	return &GlobalTimeline{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GlobalTimeline) Execute(ctx context.Context) ([]domain.TimelineEntry, error) {

	appointments, err := uc.appointmentEntries(ctx)
	if err != nil {
		return nil, err
	}

	controls, err := uc.controlEntries(ctx)
	if err != nil {
		return nil, err
	}

	return domain.MergeByDate(append(appointments, controls...)), nil
}

// --------------------------------------------------

func (uc *GlobalTimeline) appointmentEntries(
	ctx context.Context,
) ([]domain.TimelineEntry, error) {

	aps, err := uc.repo.ListAppointments(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TimelineEntry, 0, len(aps))
	for i := range aps {
		ap := aps[i]

		client, err := uc.repo.GetClient(ctx, ap.ClientID)
		if err != nil {
			// Cliente sumiu: a linha cai, o lote continua
			log.Warn().
				Err(err).
				Str("appointment_id", ap.ID).
				Str("client_id", ap.ClientID).
				Msg("dropping appointment row, client lookup failed")
			continue
		}

		var controlDate *time.Time
		if ap.ControlID != nil {
			if ctrl, err := uc.repo.GetControl(ctx, *ap.ControlID); err == nil {
				controlDate = &ctrl.Date
			} else if !domain.IsNotFound(err) {
				log.Warn().
					Err(err).
					Str("appointment_id", ap.ID).
					Msg("control lookup failed, rendering without control date")
			}
		}

		date := ap.Date
		entries = append(entries, domain.TimelineEntry{
			Type:        domain.EntryAppointment,
			ID:          ap.ID,
			Appointment: &date,
			Control:     controlDate,
			Price:       ap.Price,
			Technician:  ap.Technician,
			Treatment:   ap.Treatment,
			Name:        client.Name,
			Surname:     client.Surname,
			Phone:       client.Phone,
		})
	}

	return entries, nil
}

func (uc *GlobalTimeline) controlEntries(
	ctx context.Context,
) ([]domain.TimelineEntry, error) {

	ctrls, err := uc.repo.ListControls(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.TimelineEntry, 0, len(ctrls))
	for i := range ctrls {
		ctrl := ctrls[i]

		client, err := uc.repo.GetClient(ctx, ctrl.ClientID)
		if err != nil {
			log.Warn().
				Err(err).
				Str("control_id", ctrl.ID).
				Str("client_id", ctrl.ClientID).
				Msg("dropping control row, client lookup failed")
			continue
		}

		var appointmentDate *time.Time
		if ap, err := uc.repo.GetAppointment(ctx, ctrl.AppointmentID); err == nil {
			appointmentDate = &ap.Date
		} else if !domain.IsNotFound(err) {
			log.Warn().
				Err(err).
				Str("control_id", ctrl.ID).
				Msg("appointment lookup failed, rendering without appointment date")
		}

		date := ctrl.Date
		entries = append(entries, domain.TimelineEntry{
			Type:        domain.EntryControl,
			ID:          ctrl.ID,
			Date:        &date,
			Appointment: appointmentDate,
			Price:       ctrl.Price,
			Technician:  ctrl.Technician,
			Treatment:   ctrl.Treatment,
			Name:        client.Name,
			Surname:     client.Surname,
			Phone:       client.Phone,
		})
	}

	return entries, nil
}
