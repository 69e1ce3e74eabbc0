package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

type ScheduleMatchInput struct {
	HomeTeamID string
	AwayTeamID string
	Date       string `validate:"datetime=2006-01-02"`
	Location   string
}

type UpdateMatchScoreInput struct {
	Home int `validate:"gte=0"`
	Away int `validate:"gte=0"`
}

type AddMatchEventInput struct {
	Type        match.EventType
	Minute      int `validate:"gte=0"`
	PlayerID    *string
	Description *string
}

var matchInputMessages = map[string]string{
	"Date":   "Match date must be formatted as YYYY-MM-DD",
	"Home":   "Score must not be negative",
	"Away":   "Score must not be negative",
	"Minute": "Event minute must not be negative",
}

type MatchService struct {
	tx              Transactor
	teamRepo        team.Repository
	playerRepo      player.Repository
	matchRepo       match.Repository
	eventRepo       match.EventRepository
	teamStatsRepo   teamstats.Repository
	playerStatsRepo playerstats.Repository
	validate        *validator.Validate
	logger          *logging.Logger
}

func NewMatchService(
	tx Transactor,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	eventRepo match.EventRepository,
	teamStatsRepo teamstats.Repository,
	playerStatsRepo playerstats.Repository,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchService{
		tx:              tx,
		teamRepo:        teamRepo,
		playerRepo:      playerRepo,
		matchRepo:       matchRepo,
		eventRepo:       eventRepo,
		teamStatsRepo:   teamStatsRepo,
		playerStatsRepo: playerStatsRepo,
		validate:        newValidator(nil),
		logger:          logger,
	}
}

// List returns the matches accepted by filter in store order, truncated to
// limit when limit is set.
func (s *MatchService) List(ctx context.Context, filter match.Filter, limit *int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	if limit != nil && *limit < 0 {
		return nil, InvalidInputf("limit must not be negative")
	}

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list matches")
	}
	return truncate(filterSlice(items, filter.Match), limit), nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get", matchIDAttr(matchID))
	defer span.End()

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, internalf(err, "get match")
	}
	if !exists {
		return match.Match{}, NotFoundf(MsgMatchNotFound)
	}
	return item, nil
}

// Events lists the events of a match in insertion order.
func (s *MatchService) Events(ctx context.Context, matchID string) ([]match.Event, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Events", matchIDAttr(matchID))
	defer span.End()

	items, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, internalf(err, "list match events")
	}
	return items, nil
}

func (s *MatchService) Schedule(ctx context.Context, input ScheduleMatchInput) (created match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Schedule")
	defer func() { endUsecaseSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, exists, err := s.teamRepo.GetByID(ctx, input.HomeTeamID); err != nil {
			return internalf(err, "get home team")
		} else if !exists {
			return InvalidInputf("Home team not found")
		}
		if _, exists, err := s.teamRepo.GetByID(ctx, input.AwayTeamID); err != nil {
			return internalf(err, "get away team")
		} else if !exists {
			return InvalidInputf("Away team not found")
		}
		if input.HomeTeamID == input.AwayTeamID {
			return InvalidInputf("A team cannot play against itself")
		}
		if err := validateInput(s.validate, input, matchInputMessages); err != nil {
			return err
		}

		item, err := s.matchRepo.Insert(ctx, match.Match{
			HomeTeamID: input.HomeTeamID,
			AwayTeamID: input.AwayTeamID,
			Date:       input.Date,
			Location:   input.Location,
			Status:     match.StatusScheduled,
		})
		if err != nil {
			return internalf(err, "insert match")
		}
		created = item
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match scheduled",
		"match_id", created.ID,
		"home_team_id", created.HomeTeamID,
		"away_team_id", created.AwayTeamID,
	)
	return created, nil
}

// UpdateScore records the final score, completes the match and updates both
// team statistics rows. A score submitted again replaces the earlier one in
// the statistics instead of being counted twice.
func (s *MatchService) UpdateScore(ctx context.Context, matchID string, input UpdateMatchScoreInput) (updated match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateScore", matchIDAttr(matchID))
	defer func() { endUsecaseSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, exists, err := s.matchRepo.GetByID(ctx, matchID)
		if err != nil {
			return internalf(err, "get match")
		}
		if !exists {
			return NotFoundf(MsgMatchNotFound)
		}
		if !current.Status.AcceptsScore() {
			return InvalidInputf("Cannot update score for a match that is not in progress")
		}
		if err := validateInput(s.validate, input, matchInputMessages); err != nil {
			return err
		}

		score := match.NewScore(current, input.Home, input.Away)
		item, _, err := s.matchRepo.Update(ctx, matchID, func(m *match.Match) {
			m.Score = &score
			m.Status = match.StatusCompleted
		})
		if err != nil {
			return internalf(err, "update match")
		}

		if err := s.applyScore(ctx, current, score); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match score updated",
		"match_id", updated.ID,
		"home", input.Home,
		"away", input.Away,
	)
	return updated, nil
}

// applyScore moves both teams' statistics from the previous score of m, if
// any, to score. Nothing is changed unless both rows exist.
func (s *MatchService) applyScore(ctx context.Context, m match.Match, score match.Score) error {
	_, homeExists, err := s.teamStatsRepo.GetByTeamID(ctx, m.HomeTeamID)
	if err != nil {
		return internalf(err, "get home team statistics")
	}
	_, awayExists, err := s.teamStatsRepo.GetByTeamID(ctx, m.AwayTeamID)
	if err != nil {
		return internalf(err, "get away team statistics")
	}
	if !homeExists || !awayExists {
		return nil
	}

	previous := m.Score
	if _, _, err := s.teamStatsRepo.Update(ctx, m.HomeTeamID, func(st *teamstats.Statistics) {
		if previous != nil {
			st.RevertResult(previous.Home, previous.Away)
		}
		st.ApplyResult(score.Home, score.Away)
	}); err != nil {
		return internalf(err, "update home team statistics")
	}
	if _, _, err := s.teamStatsRepo.Update(ctx, m.AwayTeamID, func(st *teamstats.Statistics) {
		if previous != nil {
			st.RevertResult(previous.Away, previous.Home)
		}
		st.ApplyResult(score.Away, score.Home)
	}); err != nil {
		return internalf(err, "update away team statistics")
	}
	return nil
}

// AddEvent appends an event to a match in progress and bumps the matching
// counter of the referenced player. It returns the match, not the event.
func (s *MatchService) AddEvent(ctx context.Context, matchID string, input AddMatchEventInput) (current match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.AddEvent", matchIDAttr(matchID))
	defer func() { endUsecaseSpan(span, err) }()

	var event match.Event
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, exists, err := s.matchRepo.GetByID(ctx, matchID)
		if err != nil {
			return internalf(err, "get match")
		}
		if !exists {
			return NotFoundf(MsgMatchNotFound)
		}
		if item.Status != match.StatusInProgress {
			return InvalidInputf("Can only add events to matches in progress")
		}
		if !input.Type.Valid() {
			return InvalidInputf("Invalid match event type")
		}
		if err := validateInput(s.validate, input, matchInputMessages); err != nil {
			return err
		}

		playerID := derefString(input.PlayerID)
		if playerID != "" {
			if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
				return internalf(err, "get player")
			} else if !exists {
				return InvalidInputf(MsgPlayerNotFound)
			}
		}

		event, err = s.eventRepo.Insert(ctx, match.Event{
			MatchID:     matchID,
			Type:        input.Type,
			Minute:      input.Minute,
			PlayerID:    playerID,
			Description: derefString(input.Description),
		})
		if err != nil {
			return internalf(err, "insert match event")
		}

		if event.HasPlayer() {
			if _, _, err := s.playerStatsRepo.Update(ctx, playerID, func(st *playerstats.Statistics) {
				st.Record(event.Type)
			}); err != nil {
				return internalf(err, "update player statistics")
			}
		}
		current = item
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}

	s.logger.InfoContext(ctx, "match event added",
		"match_id", matchID,
		"event_id", event.ID,
		"type", string(event.Type),
	)
	return current, nil
}

// UpdateStatus overwrites the match status. Any transition is allowed and the
// score is left as it is.
func (s *MatchService) UpdateStatus(ctx context.Context, matchID string, status match.Status) (updated match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateStatus", matchIDAttr(matchID))
	defer func() { endUsecaseSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, exists, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
			return internalf(err, "get match")
		} else if !exists {
			return NotFoundf(MsgMatchNotFound)
		}
		if !status.Valid() {
			return InvalidInputf("Invalid match status")
		}

		item, _, err := s.matchRepo.Update(ctx, matchID, func(m *match.Match) {
			m.Status = status
		})
		if err != nil {
			return internalf(err, "update match")
		}
		updated = item
		return nil
	})
	if err != nil {
		return match.Match{}, err
	}
	return updated, nil
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// truncate keeps at most *limit items. A nil limit keeps everything.
func truncate[T any](items []T, limit *int) []T {
	if limit == nil || *limit >= len(items) {
		return items
	}
	return items[:*limit]
}
