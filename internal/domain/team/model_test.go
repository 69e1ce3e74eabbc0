package team

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoster_AddAndRemove(t *testing.T) {
	var tm Team
	tm.AddToRoster("1")
	tm.AddToRoster("2")
	tm.AddToRoster("1")

	if diff := cmp.Diff([]string{"1", "2"}, tm.Roster); diff != "" {
		t.Fatalf("unexpected roster (-want +got):\n%s", diff)
	}

	tm.RemoveFromRoster("1")
	tm.RemoveFromRoster("9")
	if diff := cmp.Diff([]string{"2"}, tm.Roster); diff != "" {
		t.Fatalf("unexpected roster after removal (-want +got):\n%s", diff)
	}
}

func TestAddToRoster_DoesNotShareBackingArray(t *testing.T) {
	original := Team{Roster: make([]string, 1, 4)}
	original.Roster[0] = "1"

	copied := original
	copied.AddToRoster("2")

	if len(original.Roster) != 1 {
		t.Fatalf("original roster changed: %v", original.Roster)
	}
	if got := original.Roster[:2][1]; got != "" {
		t.Fatalf("original backing array written: %q", got)
	}
}

func TestPatchApply(t *testing.T) {
	tm := Team{Name: "Lions", City: "New York", FoundedYear: 1990, Coach: "John Smith"}
	coach := "Jane Doe"
	year := 1991

	Patch{Coach: &coach, FoundedYear: &year}.Apply(&tm)

	if tm.Coach != coach || tm.FoundedYear != year {
		t.Fatalf("patch not applied: %+v", tm)
	}
	if tm.Name != "Lions" || tm.City != "New York" {
		t.Fatalf("untouched fields changed: %+v", tm)
	}
}
