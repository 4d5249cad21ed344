package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
	"github.com/clinicdesk/agenda-api/internal/models"
)

// ScheduleMemoryRepository guarda as três coleções em mapas protegidos por
// mutex. Usado pelos testes de caso de uso no lugar do Postgres; replica a
// semântica do store: IDs opacos gerados na inserção, filtros por igualdade
// exata e deletes idempotentes.
type ScheduleMemoryRepository struct {
	mu sync.RWMutex

	clients      map[string]models.Client
	appointments map[string]models.Appointment
	controls     map[string]models.Control
}

func NewScheduleMemoryRepository() *ScheduleMemoryRepository {
	return &ScheduleMemoryRepository{
		clients:      make(map[string]models.Client),
		appointments: make(map[string]models.Appointment),
		controls:     make(map[string]models.Control),
	}
}

// --------------------------------------------------
// Clients
// --------------------------------------------------

func (r *ScheduleMemoryRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	r.clients[client.ID] = *client
	return nil
}

func (r *ScheduleMemoryRepository) GetClient(
	ctx context.Context,
	id string,
) (*models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &client, nil
}

func (r *ScheduleMemoryRepository) ListClients(
	ctx context.Context,
) ([]models.Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]models.Client, 0, len(r.clients))
	for _, c := range r.clients {
		clients = append(clients, c)
	}
	sort.Slice(clients, func(i, j int) bool {
		if clients[i].Name != clients[j].Name {
			return clients[i].Name < clients[j].Name
		}
		return clients[i].Surname < clients[j].Surname
	})
	return clients, nil
}

func (r *ScheduleMemoryRepository) AppendClientAppointment(
	ctx context.Context,
	clientID string,
	appointmentID string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client, ok := r.clients[clientID]
	if !ok {
		return domain.ErrNotFound
	}
	client.Appointments = append(client.Appointments, appointmentID)
	r.clients[clientID] = client
	return nil
}

func (r *ScheduleMemoryRepository) DeleteClient(
	ctx context.Context,
	id string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.clients, id)
	return nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *ScheduleMemoryRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func (r *ScheduleMemoryRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (r *ScheduleMemoryRepository) ListAppointments(
	ctx context.Context,
) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aps := make([]models.Appointment, 0, len(r.appointments))
	for _, ap := range r.appointments {
		aps = append(aps, ap)
	}
	sortAppointments(aps)
	return aps, nil
}

func (r *ScheduleMemoryRepository) ListClientAppointments(
	ctx context.Context,
	clientID string,
) ([]models.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var aps []models.Appointment
	for _, ap := range r.appointments {
		if ap.ClientID == clientID {
			aps = append(aps, ap)
		}
	}
	sortAppointments(aps)
	return aps, nil
}

func (r *ScheduleMemoryRepository) UpdateAppointment(
	ctx context.Context,
	id string,
	patch domain.AppointmentPatch,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Date != nil {
		ap.Date = *patch.Date
	}
	if patch.Price != nil {
		ap.Price = *patch.Price
	}
	if patch.Technician != nil {
		ap.Technician = *patch.Technician
	}
	if patch.Treatment != nil {
		ap.Treatment = *patch.Treatment
	}
	r.appointments[id] = ap
	return nil
}

func (r *ScheduleMemoryRepository) SetAppointmentControl(
	ctx context.Context,
	id string,
	controlID *string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return domain.ErrNotFound
	}
	ap.ControlID = controlID
	r.appointments[id] = ap
	return nil
}

func (r *ScheduleMemoryRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.appointments, id)
	return nil
}

func (r *ScheduleMemoryRepository) DeleteClientAppointments(
	ctx context.Context,
	clientID string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ap := range r.appointments {
		if ap.ClientID == clientID {
			delete(r.appointments, id)
		}
	}
	return nil
}

// --------------------------------------------------
// Controls
// --------------------------------------------------

func (r *ScheduleMemoryRepository) CreateControl(
	ctx context.Context,
	ctrl *models.Control,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ctrl.ID == "" {
		ctrl.ID = uuid.NewString()
	}
	r.controls[ctrl.ID] = *ctrl
	return nil
}

func (r *ScheduleMemoryRepository) GetControl(
	ctx context.Context,
	id string,
) (*models.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctrl, ok := r.controls[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ctrl, nil
}

func (r *ScheduleMemoryRepository) ListControls(
	ctx context.Context,
) ([]models.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctrls := make([]models.Control, 0, len(r.controls))
	for _, ctrl := range r.controls {
		ctrls = append(ctrls, ctrl)
	}
	sortControls(ctrls)
	return ctrls, nil
}

func (r *ScheduleMemoryRepository) ListClientControls(
	ctx context.Context,
	clientID string,
) ([]models.Control, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ctrls []models.Control
	for _, ctrl := range r.controls {
		if ctrl.ClientID == clientID {
			ctrls = append(ctrls, ctrl)
		}
	}
	sortControls(ctrls)
	return ctrls, nil
}

func (r *ScheduleMemoryRepository) UpdateControl(
	ctx context.Context,
	id string,
	patch domain.ControlPatch,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctrl, ok := r.controls[id]
	if !ok {
		return domain.ErrNotFound
	}
	if patch.Date != nil {
		ctrl.Date = *patch.Date
	}
	if patch.Price != nil {
		ctrl.Price = *patch.Price
	}
	if patch.Technician != nil {
		ctrl.Technician = *patch.Technician
	}
	if patch.Treatment != nil {
		ctrl.Treatment = *patch.Treatment
	}
	if patch.SuccessorID != nil {
		ctrl.SuccessorID = patch.SuccessorID
	}
	r.controls[id] = ctrl
	return nil
}

func (r *ScheduleMemoryRepository) DeleteControl(
	ctx context.Context,
	id string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.controls, id)
	return nil
}

func (r *ScheduleMemoryRepository) DeleteClientControls(
	ctx context.Context,
	clientID string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ctrl := range r.controls {
		if ctrl.ClientID == clientID {
			delete(r.controls, id)
		}
	}
	return nil
}

func (r *ScheduleMemoryRepository) DeleteAppointmentControls(
	ctx context.Context,
	appointmentID string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ctrl := range r.controls {
		if ctrl.AppointmentID == appointmentID {
			delete(r.controls, id)
		}
	}
	return nil
}

// --------------------------------------------------

func sortAppointments(aps []models.Appointment) {
	sort.Slice(aps, func(i, j int) bool {
		return aps[i].Date.Before(aps[j].Date)
	})
}

func sortControls(ctrls []models.Control) {
	sort.Slice(ctrls, func(i, j int) bool {
		return ctrls[i].Date.Before(ctrls[j].Date)
	})
}

// Compile-time check
var _ domain.Repository = (*ScheduleMemoryRepository)(nil)
