package schedule

import (
	"context"
	"testing"

	domain "github.com/clinicdesk/agenda-api/internal/domain/schedule"
)

func TestModifyAppointmentUpdatesControlInPlace(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	client := env.mustClient(t, "Maria", "Silva")
	followUp := date(2024, 2, 10)
	ap := env.mustAppointment(t, client.ID, date(2024, 1, 5), &followUp)

	originalControlID := *ap.ControlID

	newFollowUp := date(2024, 2, 25)
	if _, err := env.modifyAp.Execute(ctx, ModifyAppointmentInput{
		ID:       ap.ID,
		FollowUp: &newFollowUp,
	}); err != nil {
		t.Fatalf("ModifyAppointment: %v", err)
	}

	stored, err := env.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if stored.ControlID == nil || *stored.ControlID != originalControlID {
		t.Errorf("control reference must keep the same ID, got %v", stored.ControlID)
	}

	ctrl, err := env.repo.GetControl(ctx, originalControlID)
	if err != nil {
		t.Fatalf("GetControl: %v", err)
	}
	if !ctrl.Date.Equal(newFollowUp) {
		t.Errorf("control date = %v, want %v (in-place update)", ctrl.Date, newFollowUp)
	}

	ctrls, err := env.repo.ListControls(ctx)
	if err != nil {
		t.Fatalf("ListControls: %v", err)
	}
	if len(ctrls) != 1 {
		t.Errorf("no new control may be minted, got %d", len(ctrls))
	}
}

func TestModifyAppointmentCreatesControlWhenMissing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	client := env.mustClient(t, "Maria", "Silva")
	ap := env.mustAppointment(t, client.ID, date(2024, 1, 5), nil)

	followUp := date(2024, 2, 10)
	if _, err := env.modifyAp.Execute(ctx, ModifyAppointmentInput{
		ID:       ap.ID,
		FollowUp: &followUp,
	}); err != nil {
		t.Fatalf("ModifyAppointment: %v", err)
	}

	stored, err := env.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if stored.ControlID == nil {
		t.Fatal("appointment must be re-pointed at the new control")
	}

	ctrl, err := env.repo.GetControl(ctx, *stored.ControlID)
	if err != nil {
		t.Fatalf("GetControl: %v", err)
	}
	if !ctrl.Date.Equal(followUp) {
		t.Errorf("control date = %v, want %v", ctrl.Date, followUp)
	}
	if ctrl.AppointmentID != ap.ID || ctrl.ClientID != client.ID {
		t.Errorf("control provenance = (%q, %q), want (%q, %q)",
			ctrl.AppointmentID, ctrl.ClientID, ap.ID, client.ID)
	}
}

func TestModifyAppointmentDanglingControlFallsIntoCreateBranch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	client := env.mustClient(t, "Maria", "Silva")
	followUp := date(2024, 2, 10)
	ap := env.mustAppointment(t, client.ID, date(2024, 1, 5), &followUp)

	// Apaga o controle por fora: a referência fica pendurada
	if err := env.repo.DeleteControl(ctx, *ap.ControlID); err != nil {
		t.Fatalf("DeleteControl: %v", err)
	}

	newFollowUp := date(2024, 3, 1)
	if _, err := env.modifyAp.Execute(ctx, ModifyAppointmentInput{
		ID:       ap.ID,
		FollowUp: &newFollowUp,
	}); err != nil {
		t.Fatalf("ModifyAppointment: %v", err)
	}

	stored, err := env.repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("GetAppointment: %v", err)
	}
	if stored.ControlID == nil || *stored.ControlID == *ap.ControlID {
		t.Fatal("dangling reference must be replaced by a fresh control")
	}

	ctrl, err := env.repo.GetControl(ctx, *stored.ControlID)
	if err != nil {
		t.Fatalf("GetControl: %v", err)
	}
	if !ctrl.Date.Equal(newFollowUp) {
		t.Errorf("control date = %v, want %v", ctrl.Date, newFollowUp)
	}
}

func TestModifyAppointmentFieldsOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	client := env.mustClient(t, "Maria", "Silva")
	followUp := date(2024, 2, 10)
	ap := env.mustAppointment(t, client.ID, date(2024, 1, 5), &followUp)

	newDate := date(2024, 1, 12)
	tech := "bia"
	updated, err := env.modifyAp.Execute(ctx, ModifyAppointmentInput{
		ID:         ap.ID,
		Date:       &newDate,
		Technician: &tech,
	})
	if err != nil {
		t.Fatalf("ModifyAppointment: %v", err)
	}

	if !updated.Date.Equal(newDate) {
		t.Errorf("date = %v, want %v", updated.Date, newDate)
	}
	if updated.Technician != tech {
		t.Errorf("technician = %q, want %q", updated.Technician, tech)
	}

	// Sem follow-up na entrada, o controle fica como estava
	ctrl, err := env.repo.GetControl(ctx, *ap.ControlID)
	if err != nil {
		t.Fatalf("GetControl: %v", err)
	}
	if !ctrl.Date.Equal(followUp) {
		t.Errorf("control date changed without a follow-up input: %v", ctrl.Date)
	}
}

func TestModifyAppointmentMissingTarget(t *testing.T) {
	env := newTestEnv()

	_, err := env.modifyAp.Execute(context.Background(), ModifyAppointmentInput{ID: "missing"})
	if !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
