package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/domain/teamstats"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
)

// CreateTeamInput is the payload of createTeam. Field order is the order in
// which violations are reported.
type CreateTeamInput struct {
	Name        string `validate:"min=3"`
	City        string
	FoundedYear int `validate:"gte=1800,not_future_year"`
	Coach       string
}

// UpdateTeamInput is the payload of updateTeam. Nil fields are kept; provided
// ones follow the create rules.
type UpdateTeamInput struct {
	Name        *string `validate:"omitnil,min=3"`
	City        *string
	FoundedYear *int `validate:"omitnil,gte=1800,not_future_year"`
	Coach       *string
}

func (in UpdateTeamInput) patch() team.Patch {
	return team.Patch{
		Name:        in.Name,
		City:        in.City,
		FoundedYear: in.FoundedYear,
		Coach:       in.Coach,
	}
}

var teamInputMessages = map[string]string{
	"Name":        "Team name must be at least 3 characters",
	"FoundedYear": "Invalid founded year",
}

type TeamService struct {
	tx            Transactor
	teamRepo      team.Repository
	playerRepo    player.Repository
	matchRepo     match.Repository
	teamStatsRepo teamstats.Repository
	validate      *validator.Validate
	logger        *logging.Logger
}

func NewTeamService(
	tx Transactor,
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	teamStatsRepo teamstats.Repository,
	clock clockwork.Clock,
	logger *logging.Logger,
) *TeamService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TeamService{
		tx:            tx,
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		matchRepo:     matchRepo,
		teamStatsRepo: teamStatsRepo,
		validate:      newValidator(clock),
		logger:        logger,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list teams")
	}
	return items, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get", teamIDAttr(teamID))
	defer span.End()

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, internalf(err, "get team")
	}
	if !exists {
		return team.Team{}, NotFoundf(MsgTeamNotFound)
	}
	return item, nil
}

// Create inserts the team together with its zeroed statistics row.
func (s *TeamService) Create(ctx context.Context, input CreateTeamInput) (created team.Team, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer func() { endUsecaseSpan(span, err) }()

	if err := validateInput(s.validate, input, teamInputMessages); err != nil {
		return team.Team{}, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		item, err := s.teamRepo.Insert(ctx, team.Team{
			Name:        input.Name,
			City:        input.City,
			FoundedYear: input.FoundedYear,
			Coach:       input.Coach,
		})
		if err != nil {
			return internalf(err, "insert team")
		}
		if err := s.teamStatsRepo.Insert(ctx, teamstats.Zero(item.ID)); err != nil {
			return internalf(err, "insert team statistics")
		}
		created = item
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}

	s.logger.InfoContext(ctx, "team created", "team_id", created.ID, "name", created.Name)
	return created, nil
}

func (s *TeamService) Update(ctx context.Context, teamID string, input UpdateTeamInput) (updated team.Team, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update", teamIDAttr(teamID))
	defer func() { endUsecaseSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return internalf(err, "get team")
		} else if !exists {
			return NotFoundf(MsgTeamNotFound)
		}
		if err := validateInput(s.validate, input, teamInputMessages); err != nil {
			return err
		}

		item, _, err := s.teamRepo.Update(ctx, teamID, input.patch().Apply)
		if err != nil {
			return internalf(err, "update team")
		}
		updated = item
		return nil
	})
	if err != nil {
		return team.Team{}, err
	}
	return updated, nil
}

// Delete removes a team without players and its statistics row.
func (s *TeamService) Delete(ctx context.Context, teamID string) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete", teamIDAttr(teamID))
	defer func() { endUsecaseSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, exists, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
			return internalf(err, "get team")
		} else if !exists {
			return NotFoundf(MsgTeamNotFound)
		}

		players, err := s.playerRepo.List(ctx)
		if err != nil {
			return internalf(err, "list players")
		}
		for _, p := range players {
			if p.TeamID == teamID {
				return InvalidInputf("Cannot delete team with players")
			}
		}

		if _, _, err := s.teamRepo.Delete(ctx, teamID); err != nil {
			return internalf(err, "delete team")
		}
		if _, err := s.teamStatsRepo.Delete(ctx, teamID); err != nil {
			return internalf(err, "delete team statistics")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "team deleted", "team_id", teamID)
	return nil
}

// Players lists the players whose team is teamID, in store order.
func (s *TeamService) Players(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Players", teamIDAttr(teamID))
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list players")
	}
	return filterSlice(items, player.Filter{TeamID: teamID}.Match), nil
}

func (s *TeamService) HomeMatches(ctx context.Context, teamID string) ([]match.Match, error) {
	return s.matchesWhere(ctx, "usecase.TeamService.HomeMatches", teamID, func(m match.Match) bool {
		return m.HomeTeamID == teamID
	})
}

func (s *TeamService) AwayMatches(ctx context.Context, teamID string) ([]match.Match, error) {
	return s.matchesWhere(ctx, "usecase.TeamService.AwayMatches", teamID, func(m match.Match) bool {
		return m.AwayTeamID == teamID
	})
}

func (s *TeamService) matchesWhere(ctx context.Context, spanName, teamID string, keep func(match.Match) bool) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, spanName, teamIDAttr(teamID))
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list matches")
	}
	return filterSlice(items, keep), nil
}

// filterSlice returns the items accepted by keep, never nil.
func filterSlice[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
