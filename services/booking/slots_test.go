package booking

import (
	"reflect"
	"testing"

	"fabulous/models"
)

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots(9, 19, 30)
	if len(slots) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(slots))
	}
	if slots[0] != "09:00" || slots[len(slots)-1] != "18:30" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestGenerateTimeSlotsClosedDay(t *testing.T) {
	if slots := GenerateTimeSlots(0, 0, 30); len(slots) != 0 {
		t.Fatalf("expected no slots for a closed day, got %v", slots)
	}
}

func TestGenerateTimeSlotsSaturdayHours(t *testing.T) {
	slots := GenerateTimeSlots(10, 17, 30)
	if len(slots) != 14 {
		t.Fatalf("expected 14 slots, got %d", len(slots))
	}
	if slots[0] != "10:00" || slots[len(slots)-1] != "16:30" {
		t.Fatalf("unexpected boundary slots: %v", slots)
	}
}

func TestGenerateTimeSlotsExcludesClosingTime(t *testing.T) {
	for _, slot := range GenerateTimeSlots(9, 19, 30) {
		if slot == "19:00" {
			t.Fatal("slot at exactly closing time must be excluded")
		}
	}
}

func TestFilterAvailableSlotsScenario(t *testing.T) {
	// 10:00–10:45 blocked, 45-minute service, 10-minute buffer:
	// 09:30 ends 10:15, which (plus buffer) collides with the block;
	// 10:00 collides outright; 09:00 and 11:00 clear it.
	blocked := []models.BlockedSlot{{Start: "10:00", Duration: 45, AppointmentID: "a1"}}
	all := []string{"09:00", "09:30", "10:00", "11:00"}

	got := FilterAvailableSlots(all, blocked, 45, 10)
	want := []string{"09:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("FilterAvailableSlots = %v, want %v", got, want)
	}
}

func TestFilterAvailableSlotsNoBlocks(t *testing.T) {
	all := GenerateTimeSlots(9, 19, 30)
	got := FilterAvailableSlots(all, nil, 60, 10)
	if !reflect.DeepEqual(got, all) {
		t.Fatalf("with no blocked slots every candidate should survive, got %v", got)
	}
}

// TestFilterAvailableSlotsSoundAndComplete checks the filter keeps
// exactly the slots that clear every blocked interval under the
// double-sided buffer rule: nothing conflicting slips through, nothing
// conflict-free is dropped.
func TestFilterAvailableSlotsSoundAndComplete(t *testing.T) {
	all := GenerateTimeSlots(9, 19, 30)
	blocked := []models.BlockedSlot{
		{Start: "09:30", Duration: 30, AppointmentID: "a1"},
		{Start: "12:00", Duration: 90, AppointmentID: "a2"},
		{Start: "16:15", Duration: 45, AppointmentID: "a3"},
	}
	const duration, buffer = 45, 10

	available := FilterAvailableSlots(all, blocked, duration, buffer)
	inResult := make(map[string]bool, len(available))
	for _, s := range available {
		inResult[s] = true
	}

	for _, s := range all {
		conflict := false
		for _, b := range blocked {
			if Overlaps(TimeToMinutes(s), duration+buffer, TimeToMinutes(b.Start), b.Duration+buffer) {
				conflict = true
				break
			}
		}
		if conflict && inResult[s] {
			t.Errorf("slot %s conflicts but was returned", s)
		}
		if !conflict && !inResult[s] {
			t.Errorf("slot %s is conflict-free but was dropped", s)
		}
	}
}

func TestFilterAvailableSlotsPreservesOrder(t *testing.T) {
	all := GenerateTimeSlots(9, 19, 30)
	available := FilterAvailableSlots(all, []models.BlockedSlot{
		{Start: "11:00", Duration: 60, AppointmentID: "a1"},
	}, 30, 10)

	prev := -1
	for _, s := range available {
		m := TimeToMinutes(s)
		if m <= prev {
			t.Fatalf("slots out of order: %v", available)
		}
		prev = m
	}
}
