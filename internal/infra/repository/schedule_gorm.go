package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
	"github.com/clinicdesk/agenda-api/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ScheduleGormRepository) GetClient(
	ctx context.Context,
	id string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&client).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (r *ScheduleGormRepository) ListClients(
	ctx context.Context,
) ([]models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Order("name ASC, surname ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *ScheduleGormRepository) AppendClientAppointment(
	ctx context.Context,
	clientID string,
	appointmentID string,
) error {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE clients
         SET appointments = array_append(COALESCE(appointments, '{}'), ?),
             updated_at = NOW()
         WHERE id = ?`,
		appointmentID,
		clientID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ScheduleGormRepository) DeleteClient(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Client{}).Error
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, translate(err)
	}
	return &ap, nil
}

func (r *ScheduleGormRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) ListClientAppointments(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	id string,
	patch domain.AppointmentPatch,
) error {

	updates := map[string]any{}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Technician != nil {
		updates["technician"] = *patch.Technician
	}
	if patch.Treatment != nil {
		updates["treatment"] = *patch.Treatment
	}
	if len(updates) == 0 {
		return r.exists(ctx, &models.Appointment{}, id)
	}

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(updates)
	return affectedOrNotFound(res)
}

func (r *ScheduleGormRepository) SetAppointmentControl(
	ctx context.Context,
	id string,
	controlID *string,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("control_id", controlID)
	return affectedOrNotFound(res)
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Appointment{}).Error
}

func (r *ScheduleGormRepository) DeleteClientAppointments(
	ctx context.Context,
	clientID string,
) error {
	return r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&models.Appointment{}).Error
}

// --------------------------------------------------
// Controls
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateControl(
	ctx context.Context,
	ctrl *models.Control,
) error {
	return r.db.WithContext(ctx).Create(ctrl).Error
}

func (r *ScheduleGormRepository) GetControl(
	ctx context.Context,
	id string,
) (*models.Control, error) {

	var ctrl models.Control
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ctrl).Error; err != nil {
		return nil, translate(err)
	}
	return &ctrl, nil
}

func (r *ScheduleGormRepository) ListControls(
	ctx context.Context,
) ([]models.Control, error) {

	var ctrls []models.Control
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&ctrls).Error; err != nil {
		return nil, err
	}
	return ctrls, nil
}

func (r *ScheduleGormRepository) ListClientControls(
	ctx context.Context,
	clientID string,
) ([]models.Control, error) {

	var ctrls []models.Control
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date ASC").
		Find(&ctrls).Error; err != nil {
		return nil, err
	}
	return ctrls, nil
}

func (r *ScheduleGormRepository) UpdateControl(
	ctx context.Context,
	id string,
	patch domain.ControlPatch,
) error {

	updates := map[string]any{}
	if patch.Date != nil {
		updates["date"] = *patch.Date
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Technician != nil {
		updates["technician"] = *patch.Technician
	}
	if patch.Treatment != nil {
		updates["treatment"] = *patch.Treatment
	}
	if patch.SuccessorID != nil {
		updates["successor_id"] = *patch.SuccessorID
	}
	if len(updates) == 0 {
		return r.exists(ctx, &models.Control{}, id)
	}

	res := r.db.WithContext(ctx).
		Model(&models.Control{}).
		Where("id = ?", id).
		Updates(updates)
	return affectedOrNotFound(res)
}

func (r *ScheduleGormRepository) DeleteControl(
	ctx context.Context,
	id string,
) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Control{}).Error
}

func (r *ScheduleGormRepository) DeleteClientControls(
	ctx context.Context,
	clientID string,
) error {
	return r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Delete(&models.Control{}).Error
}

func (r *ScheduleGormRepository) DeleteAppointmentControls(
	ctx context.Context,
	appointmentID string,
) error {
	return r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.Control{}).Error
}

// --------------------------------------------------

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// Patch vazio ainda exige que o alvo exista.
func (r *ScheduleGormRepository) exists(ctx context.Context, model any, id string) error {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Updates em alvo inexistente não erram no gorm; o contrato pede NotFound.
func affectedOrNotFound(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
