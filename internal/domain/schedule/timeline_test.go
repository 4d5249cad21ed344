package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEffectiveDate(t *testing.T) {
	apDate := date(2024, 1, 5)
	ctrlDate := date(2024, 2, 1)

	cases := []struct {
		name  string
		entry TimelineEntry
		want  time.Time
	}{
		{
			name:  "appointment uses own date",
			entry: TimelineEntry{Type: EntryAppointment, Appointment: &apDate},
			want:  apDate,
		},
		{
			name:  "control uses control date",
			entry: TimelineEntry{Type: EntryControl, Date: &ctrlDate, Appointment: &apDate},
			want:  ctrlDate,
		},
		{
			name:  "appointment without date falls back to zero",
			entry: TimelineEntry{Type: EntryAppointment},
			want:  time.Time{},
		},
		{
			name:  "control without date falls back to zero",
			entry: TimelineEntry{Type: EntryControl},
			want:  time.Time{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.entry.EffectiveDate(); !got.Equal(tc.want) {
				t.Fatalf("EffectiveDate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMergeByDateInterleavesKinds(t *testing.T) {
	jan := date(2024, 1, 5)
	feb := date(2024, 2, 1)
	mar := date(2024, 3, 1)

	entries := []TimelineEntry{
		{Type: EntryAppointment, ID: "ap-jan", Appointment: &jan},
		{Type: EntryAppointment, ID: "ap-mar", Appointment: &mar},
		{Type: EntryControl, ID: "ctrl-feb", Date: &feb},
	}

	merged := MergeByDate(entries)

	wantOrder := []string{"ap-jan", "ctrl-feb", "ap-mar"}
	if len(merged) != len(wantOrder) {
		t.Fatalf("merged %d entries, want %d", len(merged), len(wantOrder))
	}
	for i, want := range wantOrder {
		if merged[i].ID != want {
			t.Errorf("merged[%d].ID = %q, want %q", i, merged[i].ID, want)
		}
	}

	if merged[0].Type != EntryAppointment || merged[1].Type != EntryControl {
		t.Errorf("kinds out of order: %s, %s", merged[0].Type, merged[1].Type)
	}
}

func TestMergeByDateIsStableOnTies(t *testing.T) {
	d := date(2024, 6, 1)

	entries := []TimelineEntry{
		{Type: EntryAppointment, ID: "first", Appointment: &d},
		{Type: EntryControl, ID: "second", Date: &d},
		{Type: EntryAppointment, ID: "third", Appointment: &d},
	}

	merged := MergeByDate(entries)

	for i, want := range []string{"first", "second", "third"} {
		if merged[i].ID != want {
			t.Errorf("merged[%d].ID = %q, want %q (ties must keep arrival order)", i, merged[i].ID, want)
		}
	}
}
