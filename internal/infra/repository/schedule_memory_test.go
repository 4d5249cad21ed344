package repository

import (
	"context"
	"testing"
	"time"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
	"github.com/clinicdesk/agenda-api/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryMintsIDs(t *testing.T) {
	repo := NewScheduleMemoryRepository()
	ctx := context.Background()

	client := &models.Client{Name: "Maria"}
	if err := repo.CreateClient(ctx, client); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if client.ID == "" {
		t.Fatal("client ID must be minted on insert")
	}

	ap := &models.Appointment{ClientID: client.ID, Date: day(2024, 1, 5)}
	if err := repo.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	if ap.ID == "" {
		t.Fatal("appointment ID must be minted on insert")
	}

	ctrl := &models.Control{ClientID: client.ID, AppointmentID: ap.ID, Date: day(2024, 2, 1)}
	if err := repo.CreateControl(ctx, ctrl); err != nil {
		t.Fatalf("CreateControl: %v", err)
	}
	if ctrl.ID == "" {
		t.Fatal("control ID must be minted on insert")
	}
	if ctrl.ID == ap.ID || ap.ID == client.ID {
		t.Error("IDs must be distinct")
	}
}

func TestMemoryRepositoryGetMissingReturnsNotFound(t *testing.T) {
	repo := NewScheduleMemoryRepository()
	ctx := context.Background()

	if _, err := repo.GetClient(ctx, "nope"); !domain.IsNotFound(err) {
		t.Errorf("GetClient = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetAppointment(ctx, "nope"); !domain.IsNotFound(err) {
		t.Errorf("GetAppointment = %v, want ErrNotFound", err)
	}
	if _, err := repo.GetControl(ctx, "nope"); !domain.IsNotFound(err) {
		t.Errorf("GetControl = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepositoryDeletesAreIdempotent(t *testing.T) {
	repo := NewScheduleMemoryRepository()
	ctx := context.Background()

	if err := repo.DeleteClient(ctx, "nope"); err != nil {
		t.Errorf("DeleteClient on missing = %v, want nil", err)
	}
	if err := repo.DeleteAppointment(ctx, "nope"); err != nil {
		t.Errorf("DeleteAppointment on missing = %v, want nil", err)
	}
	if err := repo.DeleteControl(ctx, "nope"); err != nil {
		t.Errorf("DeleteControl on missing = %v, want nil", err)
	}
	if err := repo.DeleteClientAppointments(ctx, "nope"); err != nil {
		t.Errorf("DeleteClientAppointments on missing = %v, want nil", err)
	}
	if err := repo.DeleteClientControls(ctx, "nope"); err != nil {
		t.Errorf("DeleteClientControls on missing = %v, want nil", err)
	}
	if err := repo.DeleteAppointmentControls(ctx, "nope"); err != nil {
		t.Errorf("DeleteAppointmentControls on missing = %v, want nil", err)
	}
}

func TestMemoryRepositoryListsAreSorted(t *testing.T) {
	repo := NewScheduleMemoryRepository()
	ctx := context.Background()

	for _, c := range []models.Client{
		{Name: "Zelia", Surname: "Costa"},
		{Name: "Ana", Surname: "Silva"},
		{Name: "Ana", Surname: "Braga"},
	} {
		c := c
		if err := repo.CreateClient(ctx, &c); err != nil {
			t.Fatalf("CreateClient: %v", err)
		}
	}

	clients, err := repo.ListClients(ctx)
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	want := [][2]string{{"Ana", "Braga"}, {"Ana", "Silva"}, {"Zelia", "Costa"}}
	for i, w := range want {
		if clients[i].Name != w[0] || clients[i].Surname != w[1] {
			t.Fatalf("clients[%d] = %s %s, want %s %s",
				i, clients[i].Name, clients[i].Surname, w[0], w[1])
		}
	}

	for _, d := range []time.Time{day(2024, 3, 1), day(2024, 1, 5), day(2024, 2, 10)} {
		ap := &models.Appointment{ClientID: clients[0].ID, Date: d}
		if err := repo.CreateAppointment(ctx, ap); err != nil {
			t.Fatalf("CreateAppointment: %v", err)
		}
	}

	aps, err := repo.ListAppointments(ctx)
	if err != nil {
		t.Fatalf("ListAppointments: %v", err)
	}
	for i := 1; i < len(aps); i++ {
		if aps[i].Date.Before(aps[i-1].Date) {
			t.Fatalf("appointments out of order at %d: %v after %v",
				i, aps[i].Date, aps[i-1].Date)
		}
	}
}

func TestMemoryRepositoryPatchSemantics(t *testing.T) {
	repo := NewScheduleMemoryRepository()
	ctx := context.Background()

	ap := &models.Appointment{ClientID: "c1", Date: day(2024, 1, 5), Technician: "ana"}
	if err := repo.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}

	tech := "bia"
	if err := repo.UpdateAppointment(ctx, ap.ID, domain.AppointmentPatch{
		Technician: &tech,
	}); err != nil {
		t.Fatalf("UpdateAppointment: %v", err)
	}

	stored, err := repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if stored.Technician != "bia" {
		t.Errorf("technician = %q, want bia", stored.Technician)
	}
	if !stored.Date.Equal(ap.Date) {
		t.Errorf("untouched field changed: date = %v", stored.Date)
	}

	// Patch vazio: o alvo ainda precisa existir
	if err := repo.UpdateAppointment(ctx, ap.ID, domain.AppointmentPatch{}); err != nil {
		t.Errorf("empty patch on existing row = %v, want nil", err)
	}
	if err := repo.UpdateAppointment(ctx, "nope", domain.AppointmentPatch{}); !domain.IsNotFound(err) {
		t.Errorf("UpdateAppointment on missing = %v, want ErrNotFound", err)
	}
	if err := repo.UpdateControl(ctx, "nope", domain.ControlPatch{}); !domain.IsNotFound(err) {
		t.Errorf("UpdateControl on missing = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepositoryAppendClientAppointment(t *testing.T) {
	repo := NewScheduleMemoryRepository()
	ctx := context.Background()

	client := &models.Client{Name: "Maria"}
	if err := repo.CreateClient(ctx, client); err != nil {
		t.Fatalf("CreateClient: %v", err)
	}

	if err := repo.AppendClientAppointment(ctx, client.ID, "ap-1"); err != nil {
		t.Fatalf("AppendClientAppointment: %v", err)
	}
	if err := repo.AppendClientAppointment(ctx, client.ID, "ap-2"); err != nil {
		t.Fatalf("AppendClientAppointment: %v", err)
	}

	stored, err := repo.GetClient(ctx, client.ID)
	if err != nil {
		t.Fatalf("GetClient: %v", err)
	}
	if len(stored.Appointments) != 2 || stored.Appointments[0] != "ap-1" || stored.Appointments[1] != "ap-2" {
		t.Errorf("appointments = %v, want [ap-1 ap-2]", stored.Appointments)
	}

	if err := repo.AppendClientAppointment(ctx, "nope", "ap-3"); !domain.IsNotFound(err) {
		t.Errorf("append on missing client = %v, want ErrNotFound", err)
	}
}

func TestMemoryRepositoryScopedDeletes(t *testing.T) {
	repo := NewScheduleMemoryRepository()
	ctx := context.Background()

	mk := func(clientID, apID string) {
		t.Helper()
		ctrl := &models.Control{ClientID: clientID, AppointmentID: apID, Date: day(2024, 2, 1)}
		if err := repo.CreateControl(ctx, ctrl); err != nil {
			t.Fatalf("CreateControl: %v", err)
		}
	}
	mk("c1", "a1")
	mk("c1", "a2")
	mk("c2", "a3")

	if err := repo.DeleteAppointmentControls(ctx, "a1"); err != nil {
		t.Fatalf("DeleteAppointmentControls: %v", err)
	}
	ctrls, _ := repo.ListControls(ctx)
	if len(ctrls) != 2 {
		t.Fatalf("controls after appointment-scoped delete = %d, want 2", len(ctrls))
	}

	if err := repo.DeleteClientControls(ctx, "c1"); err != nil {
		t.Fatalf("DeleteClientControls: %v", err)
	}
	ctrls, _ = repo.ListControls(ctx)
	if len(ctrls) != 1 || ctrls[0].ClientID != "c2" {
		t.Fatalf("controls after client-scoped delete = %v, want only c2's", ctrls)
	}
}
