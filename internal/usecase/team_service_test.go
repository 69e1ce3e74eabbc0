package usecase

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
	"github.com/riskibarqy/sports-league/internal/infrastructure/repository/memory"
	"github.com/shopspring/decimal"
)

func TestTeamService_CreateThenGet(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	input := CreateTeamInput{Name: "Wolves", City: "Denver", FoundedYear: 2001, Coach: "Ana Reyes"}

	created, err := svc.teams.Create(t.Context(), input)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	got, err := svc.teams.Get(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	want := team.Team{ID: created.ID, Name: "Wolves", City: "Denver", FoundedYear: 2001, Coach: "Ana Reyes"}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })); diff != "" {
		t.Fatalf("unexpected team (-want +got):\n%s", diff)
	}

	standings, err := svc.stats.Standings(t.Context())
	if err != nil {
		t.Fatalf("Standings error: %v", err)
	}
	last := standings[len(standings)-1]
	if last != teamstats.Zero(created.ID) {
		t.Fatalf("expected zeroed statistics for %s, got %+v", created.ID, last)
	}
}

func TestTeamService_CreateValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   CreateTeamInput
		message string
	}{
		{
			name:    "short name",
			input:   CreateTeamInput{Name: "Ox", FoundedYear: 1990},
			message: "Team name must be at least 3 characters",
		},
		{
			name:    "founded before 1800",
			input:   CreateTeamInput{Name: "Wolves", FoundedYear: 1799},
			message: "Invalid founded year",
		},
		{
			name:    "founded in the future",
			input:   CreateTeamInput{Name: "Wolves", FoundedYear: testNow.Year() + 1},
			message: "Invalid founded year",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestServices(t)
			_, err := svc.teams.Create(t.Context(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if err.Error() != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, err.Error())
			}

			items, _ := svc.teams.List(t.Context())
			if len(items) != 3 {
				t.Fatalf("expected store untouched, got %d teams", len(items))
			}
		})
	}
}

func TestTeamService_CreateAcceptsCurrentYear(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	if _, err := svc.teams.Create(t.Context(), CreateTeamInput{Name: "Wolves", FoundedYear: testNow.Year()}); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestTeamService_UpdateMergesProvidedFields(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	updated, err := svc.teams.Update(t.Context(), memory.TeamIDLions, UpdateTeamInput{Coach: ptr("Jane Doe")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Coach != "Jane Doe" || updated.Name != "Lions" || updated.FoundedYear != 1990 {
		t.Fatalf("unexpected merge result: %+v", updated)
	}
}

func TestTeamService_UpdateRejectsInvalidFields(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	_, err := svc.teams.Update(t.Context(), memory.TeamIDLions, UpdateTeamInput{Name: ptr("")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	got, _ := svc.teams.Get(t.Context(), memory.TeamIDLions)
	if got.Name != "Lions" {
		t.Fatalf("expected name unchanged, got %q", got.Name)
	}
}

func TestTeamService_UpdateNotFound(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	_, err := svc.teams.Update(t.Context(), "404", UpdateTeamInput{})
	if !errors.Is(err, ErrNotFound) || err.Error() != MsgTeamNotFound {
		t.Fatalf("expected team not found, got %v", err)
	}
}

func TestTeamService_DeleteWithoutPlayersCascadesStatistics(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	created, err := svc.teams.Create(t.Context(), CreateTeamInput{Name: "Wolves", FoundedYear: 2001})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.teams.Delete(t.Context(), created.ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	if _, err := svc.teams.Get(t.Context(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected deleted team to be gone, got %v", err)
	}
	if _, exists, _ := svc.store.TeamStats().GetByTeamID(t.Context(), created.ID); exists {
		t.Fatalf("expected statistics row to be removed")
	}
}

func TestTeamService_DeleteWithPlayersFails(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	before, _ := svc.stats.Standings(t.Context())

	err := svc.teams.Delete(t.Context(), memory.TeamIDLions)
	if !errors.Is(err, ErrInvalidInput) || err.Error() != "Cannot delete team with players" {
		t.Fatalf("expected delete rejection, got %v", err)
	}

	if _, err := svc.teams.Get(t.Context(), memory.TeamIDLions); err != nil {
		t.Fatalf("expected team to remain, got %v", err)
	}
	after, _ := svc.stats.Standings(t.Context())
	if diff := cmp.Diff(before, after); diff != "" {
		t.Fatalf("standings changed (-before +after):\n%s", diff)
	}
}

func TestTeamService_RelatedLists(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)

	players, err := svc.teams.Players(t.Context(), memory.TeamIDLions)
	if err != nil {
		t.Fatalf("Players error: %v", err)
	}
	if ids := playerIDs(players); !cmp.Equal(ids, []string{"1", "2", "6"}) {
		t.Fatalf("unexpected roster %v", ids)
	}

	home, _ := svc.teams.HomeMatches(t.Context(), memory.TeamIDLions)
	away, _ := svc.teams.AwayMatches(t.Context(), memory.TeamIDLions)
	if len(home) != 1 || home[0].ID != "1" {
		t.Fatalf("unexpected home matches %+v", home)
	}
	if len(away) != 1 || away[0].ID != "2" {
		t.Fatalf("unexpected away matches %+v", away)
	}

	none, _ := svc.teams.Players(t.Context(), "404")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}
