package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clinicdesk/agenda-api/internal/infra/repository"
	"github.com/clinicdesk/agenda-api/internal/models"
)

// Ambiente de teste: store em memória e casos de uso já ligados.
// Auditoria desligada (dispatcher nil é no-op).
type testEnv struct {
	repo *repository.ScheduleMemoryRepository

	linker    *LinkControl
	add       *AddAppointment
	register  *RegisterClient
	modifyAp  *ModifyAppointment
	modifyCt  *ModifyControl
	cascade   *Cascade
	timeline  *GlobalTimeline
	overviews *ListClientOverviews
}

func newTestEnv() *testEnv {
	repo := repository.NewScheduleMemoryRepository()

	linker := NewLinkControl(repo)
	add := NewAddAppointment(repo, linker, nil)

	return &testEnv{
		repo:      repo,
		linker:    linker,
		add:       add,
		register:  NewRegisterClient(repo, add, nil),
		modifyAp:  NewModifyAppointment(repo, nil),
		modifyCt:  NewModifyControl(repo, nil),
		cascade:   NewCascade(repo, nil),
		timeline:  NewGlobalTimeline(repo),
		overviews: NewListClientOverviews(repo),
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (e *testEnv) mustClient(t *testing.T, name, surname string) *models.Client {
	t.Helper()

	client := &models.Client{Name: name, Surname: surname, Phone: "11 99999-0000"}
	if err := e.repo.CreateClient(context.Background(), client); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	return client
}

func (e *testEnv) mustAppointment(
	t *testing.T,
	clientID string,
	day time.Time,
	control *time.Time,
) *models.Appointment {
	t.Helper()

	ap, err := e.add.Execute(context.Background(), AddAppointmentInput{
		ClientID:   clientID,
		Date:       day,
		Price:      decimal.NewFromInt(150),
		Technician: "ana",
		Treatment:  "laser",
		Control:    control,
	})
	if err != nil {
		t.Fatalf("AddAppointment: %v", err)
	}
	return ap
}
