package schedule

import (
	"context"
	"testing"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
)

func TestModifyControlRevisionForksSuccessor(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	client := env.mustClient(t, "Maria", "Silva")
	followUp := date(2024, 2, 10)
	ap := env.mustAppointment(t, client.ID, date(2024, 1, 5), &followUp)

	originalID := *ap.ControlID

	revision := date(2024, 3, 20)
	original, err := env.modifyCt.Execute(ctx, ModifyControlInput{
		ID:       originalID,
		Revision: &revision,
	})
	if err != nil {
		t.Fatalf("ModifyControl: %v", err)
	}

	if original.SuccessorID == nil {
		t.Fatal("original must point at its successor")
	}
	if *original.SuccessorID == originalID {
		t.Fatal("successor must be a new record, not the original")
	}

	successor, err := env.repo.GetControl(ctx, *original.SuccessorID)
	if err != nil {
		t.Fatalf("GetControl(successor): %v", err)
	}
	if !successor.Date.Equal(revision) {
		t.Errorf("successor date = %v, want %v", successor.Date, revision)
	}
	if successor.AppointmentID != ap.ID || successor.ClientID != client.ID {
		t.Errorf("successor provenance = (%q, %q), want (%q, %q)",
			successor.AppointmentID, successor.ClientID, ap.ID, client.ID)
	}
	if successor.SuccessorID != nil {
		t.Errorf("fresh successor must not chain further")
	}

	// A referência do agendamento NÃO avança para o sucessor
	stored, err := env.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if stored.ControlID == nil || *stored.ControlID != originalID {
		t.Errorf("appointment reference = %v, want original %q", stored.ControlID, originalID)
	}
}

func TestModifyControlInPlaceWithoutRevision(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	client := env.mustClient(t, "Maria", "Silva")
	followUp := date(2024, 2, 10)
	ap := env.mustAppointment(t, client.ID, date(2024, 1, 5), &followUp)

	newDate := date(2024, 2, 15)
	tech := "bia"
	updated, err := env.modifyCt.Execute(ctx, ModifyControlInput{
		ID:         *ap.ControlID,
		Date:       &newDate,
		Technician: &tech,
	})
	if err != nil {
		t.Fatalf("ModifyControl: %v", err)
	}

	if updated.ID != *ap.ControlID {
		t.Errorf("in-place update must keep the ID")
	}
	if !updated.Date.Equal(newDate) {
		t.Errorf("date = %v, want %v", updated.Date, newDate)
	}
	if updated.SuccessorID != nil {
		t.Errorf("no revision supplied, successor must stay nil")
	}

	ctrls, err := env.repo.ListControls(ctx)
	if err != nil {
		t.Fatalf("ListControls: %v", err)
	}
	if len(ctrls) != 1 {
		t.Errorf("controls = %d, want 1", len(ctrls))
	}
}

func TestModifyControlMissingTarget(t *testing.T) {
	env := newTestEnv()

	_, err := env.modifyCt.Execute(context.Background(), ModifyControlInput{ID: "missing"})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
