package usecase

import (
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
	"github.com/riskibarqy/sports-league/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchIDs(items []match.Match) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func TestMatchService_ListFilters(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)

	tests := []struct {
		name   string
		filter match.Filter
		limit  *int
		want   []string
	}{
		{name: "all", want: []string{"1", "2"}},
		{name: "home or away team", filter: match.Filter{TeamID: memory.TeamIDLions}, want: []string{"1", "2"}},
		{name: "away team only", filter: match.Filter{TeamID: memory.TeamIDBears}, want: []string{"2"}},
		{name: "status", filter: match.Filter{Status: match.StatusCompleted}, want: []string{"1"}},
		{name: "inclusive date from", filter: match.Filter{DateFrom: "2023-05-15"}, want: []string{"2"}},
		{name: "inclusive date to", filter: match.Filter{DateTo: "2023-05-10"}, want: []string{"1"}},
		{name: "limit after filter", filter: match.Filter{TeamID: memory.TeamIDLions}, limit: ptr(1), want: []string{"1"}},
		{name: "zero limit", limit: ptr(0), want: []string{}},
		{name: "limit beyond length", limit: ptr(10), want: []string{"1", "2"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.matches.List(t.Context(), tc.filter, tc.limit)
			require.NoError(t, err)
			assert.Equal(t, tc.want, matchIDs(got))
		})
	}

	_, err := svc.matches.List(t.Context(), match.Filter{}, ptr(-1))
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestMatchService_ScheduleValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   ScheduleMatchInput
		message string
	}{
		{
			name:    "unknown home team",
			input:   ScheduleMatchInput{HomeTeamID: "404", AwayTeamID: memory.TeamIDLions, Date: "2023-06-01"},
			message: "Home team not found",
		},
		{
			name:    "unknown away team",
			input:   ScheduleMatchInput{HomeTeamID: memory.TeamIDLions, AwayTeamID: "404", Date: "2023-06-01"},
			message: "Away team not found",
		},
		{
			name:    "same team",
			input:   ScheduleMatchInput{HomeTeamID: memory.TeamIDLions, AwayTeamID: memory.TeamIDLions, Date: "2023-06-01"},
			message: "A team cannot play against itself",
		},
		{
			name:    "malformed date",
			input:   ScheduleMatchInput{HomeTeamID: memory.TeamIDLions, AwayTeamID: memory.TeamIDBears, Date: "June 1st"},
			message: "Match date must be formatted as YYYY-MM-DD",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newTestServices(t)
			_, err := svc.matches.Schedule(t.Context(), tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.Equal(t, tc.message, err.Error())
		})
	}
}

func TestMatchService_ScheduleStartsScheduled(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	created, err := svc.matches.Schedule(t.Context(), ScheduleMatchInput{
		HomeTeamID: memory.TeamIDTigers,
		AwayTeamID: memory.TeamIDBears,
		Date:       "2023-06-01",
		Location:   "Crypto.com Arena",
	})
	require.NoError(t, err)
	assert.Equal(t, "3", created.ID)
	assert.Equal(t, match.StatusScheduled, created.Status)
	assert.Nil(t, created.Score)
}

func startMatch(t *testing.T, svc testServices, matchID string) {
	t.Helper()
	_, err := svc.matches.UpdateStatus(t.Context(), matchID, match.StatusInProgress)
	require.NoError(t, err)
}

func teamStats(t *testing.T, svc testServices, teamID string) teamstats.Statistics {
	t.Helper()
	stats, err := svc.stats.TeamStatistics(t.Context(), teamID)
	require.NoError(t, err)
	return stats
}

func TestMatchService_UpdateScoreCompletesMatch(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	startMatch(t, svc, "2")
	homeBefore := teamStats(t, svc, memory.TeamIDBears)
	awayBefore := teamStats(t, svc, memory.TeamIDLions)

	updated, err := svc.matches.UpdateScore(t.Context(), "2", UpdateMatchScoreInput{Home: 2, Away: 1})
	require.NoError(t, err)
	assert.Equal(t, match.StatusCompleted, updated.Status)
	require.NotNil(t, updated.Score)
	assert.Equal(t, match.Score{Home: 2, Away: 1, WinnerTeamID: memory.TeamIDBears}, *updated.Score)

	homeWant := homeBefore
	homeWant.MatchesPlayed++
	homeWant.Wins++
	homeWant.GoalsFor += 2
	homeWant.GoalsAgainst++
	assert.Equal(t, homeWant, teamStats(t, svc, memory.TeamIDBears))

	awayWant := awayBefore
	awayWant.MatchesPlayed++
	awayWant.Losses++
	awayWant.GoalsFor++
	awayWant.GoalsAgainst += 2
	assert.Equal(t, awayWant, teamStats(t, svc, memory.TeamIDLions))
}

func TestMatchService_UpdateScoreDrawHasNoWinner(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	startMatch(t, svc, "2")
	before := teamStats(t, svc, memory.TeamIDBears)

	updated, err := svc.matches.UpdateScore(t.Context(), "2", UpdateMatchScoreInput{Home: 1, Away: 1})
	require.NoError(t, err)
	assert.Empty(t, updated.Score.WinnerTeamID)
	assert.Equal(t, before.Draws+1, teamStats(t, svc, memory.TeamIDBears).Draws)
}

func TestMatchService_UpdateScoreResubmissionReplacesResult(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	startMatch(t, svc, "2")
	homeBefore := teamStats(t, svc, memory.TeamIDBears)

	_, err := svc.matches.UpdateScore(t.Context(), "2", UpdateMatchScoreInput{Home: 2, Away: 1})
	require.NoError(t, err)
	_, err = svc.matches.UpdateScore(t.Context(), "2", UpdateMatchScoreInput{Home: 0, Away: 3})
	require.NoError(t, err)

	want := homeBefore
	want.MatchesPlayed++
	want.Losses++
	want.GoalsAgainst += 3
	assert.Equal(t, want, teamStats(t, svc, memory.TeamIDBears))
}

func TestMatchService_UpdateScoreRejectsScheduled(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	before := teamStats(t, svc, memory.TeamIDBears)

	_, err := svc.matches.UpdateScore(t.Context(), "2", UpdateMatchScoreInput{Home: 1, Away: 0})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "Cannot update score for a match that is not in progress", err.Error())
	assert.Equal(t, before, teamStats(t, svc, memory.TeamIDBears))

	_, err = svc.matches.UpdateScore(t.Context(), "404", UpdateMatchScoreInput{})
	assert.True(t, errors.Is(err, ErrNotFound))

	startMatch(t, svc, "2")
	_, err = svc.matches.UpdateScore(t.Context(), "2", UpdateMatchScoreInput{Home: -1})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestMatchService_ConcurrentScoreUpdatesCountOnce(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	startMatch(t, svc, "2")
	before := teamStats(t, svc, memory.TeamIDBears)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.matches.UpdateScore(t.Context(), "2", UpdateMatchScoreInput{Home: 2, Away: 1})
		}()
	}
	wg.Wait()

	after := teamStats(t, svc, memory.TeamIDBears)
	assert.Equal(t, before.MatchesPlayed+1, after.MatchesPlayed)
	assert.Equal(t, before.Wins+1, after.Wins)
}

func TestMatchService_AddEventRequiresInProgress(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	before, _ := svc.matches.Events(t.Context(), "2")

	_, err := svc.matches.AddEvent(t.Context(), "2", AddMatchEventInput{Type: match.EventGoal, Minute: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "Can only add events to matches in progress", err.Error())

	after, _ := svc.matches.Events(t.Context(), "2")
	assert.Equal(t, before, after)

	all, _ := svc.store.Events().List(t.Context())
	assert.Len(t, all, 3)
}

func TestMatchService_AddEventRecordsPlayerStatistics(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	startMatch(t, svc, "2")
	before, _ := svc.stats.PlayerStatistics(t.Context(), "5")

	got, err := svc.matches.AddEvent(t.Context(), "2", AddMatchEventInput{
		Type:        match.EventGoal,
		Minute:      12,
		PlayerID:    ptr("5"),
		Description: ptr("Header"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2", got.ID)

	events, _ := svc.matches.Events(t.Context(), "2")
	require.Len(t, events, 1)
	assert.Equal(t, match.Event{ID: "4", MatchID: "2", Type: match.EventGoal, Minute: 12, PlayerID: "5", Description: "Header"}, events[0])

	after, _ := svc.stats.PlayerStatistics(t.Context(), "5")
	assert.Equal(t, before.Goals+1, after.Goals)

	_, err = svc.matches.AddEvent(t.Context(), "2", AddMatchEventInput{Type: match.EventRedCard, Minute: 80})
	require.NoError(t, err)
	events, _ = svc.matches.Events(t.Context(), "2")
	assert.Len(t, events, 2)
}

func TestMatchService_AddEventUnknownPlayer(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	startMatch(t, svc, "2")

	_, err := svc.matches.AddEvent(t.Context(), "2", AddMatchEventInput{Type: match.EventAssist, Minute: 5, PlayerID: ptr("404")})
	require.Error(t, err)
	assert.Equal(t, MsgPlayerNotFound, err.Error())
	assert.True(t, errors.Is(err, ErrInvalidInput))

	events, _ := svc.matches.Events(t.Context(), "2")
	assert.Empty(t, events)
}

func TestMatchService_UpdateStatusAllowsAnyTransition(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	updated, err := svc.matches.UpdateStatus(t.Context(), "1", match.StatusScheduled)
	require.NoError(t, err)
	assert.Equal(t, match.StatusScheduled, updated.Status)
	assert.NotNil(t, updated.Score)

	_, err = svc.matches.UpdateStatus(t.Context(), "404", match.StatusScheduled)
	assert.True(t, errors.Is(err, ErrNotFound))
}
