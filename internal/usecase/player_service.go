package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sports-league/internal/domain/match"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/domain/playerstats"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"github.com/shopspring/decimal"
)

// CreatePlayerInput is the payload of createPlayer.
type CreatePlayerInput struct {
	Name         string          `validate:"min=2"`
	Age          int             `validate:"gte=16,lte=50"`
	Position     player.Position `validate:"player_position"`
	Nationality  string
	JerseyNumber int
	TeamID       string
}

// AddPlayerToTeamInput is the payload of addPlayerToTeam. It adds a jersey
// number range and an optional market value to the create rules.
type AddPlayerToTeamInput struct {
	Name         string          `validate:"min=2"`
	Age          int             `validate:"gte=16,lte=50"`
	Position     player.Position `validate:"player_position"`
	JerseyNumber int             `validate:"gte=1,lte=99"`
	Nationality  string
	TeamID       string
	MarketValue  *decimal.Decimal `validate:"omitnil,gte=0"`
}

// UpdatePlayerInput is the payload of updatePlayer. Nil fields are kept.
type UpdatePlayerInput struct {
	Name         *string          `validate:"omitnil,min=2"`
	Age          *int             `validate:"omitnil,gte=16,lte=50"`
	Position     *player.Position `validate:"omitnil,player_position"`
	Nationality  *string
	JerseyNumber *int             `validate:"omitnil,gte=1,lte=99"`
	TeamID       *string
}

func (in UpdatePlayerInput) patch() player.Patch {
	return player.Patch{
		Name:         in.Name,
		Nationality:  in.Nationality,
		Age:          in.Age,
		Position:     in.Position,
		JerseyNumber: in.JerseyNumber,
		TeamID:       in.TeamID,
	}
}

var playerInputMessages = map[string]string{
	"Name":         "Player name must be at least 2 characters",
	"Age":          "Player age must be between 16 and 50",
	"Position":     "Invalid player position",
	"JerseyNumber": "Jersey number must be between 1 and 99",
	"MarketValue":  "Market value must not be negative",
}

type PlayerService struct {
	tx              Transactor
	teamRepo        team.Repository
	playerRepo      player.Repository
	playerStatsRepo playerstats.Repository
	matchRepo       match.Repository
	eventRepo       match.EventRepository
	validate        *validator.Validate
	logger          *logging.Logger
}

func NewPlayerService(
	tx Transactor,
	teamRepo team.Repository,
	playerRepo player.Repository,
	playerStatsRepo playerstats.Repository,
	matchRepo match.Repository,
	eventRepo match.EventRepository,
	logger *logging.Logger,
) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PlayerService{
		tx:              tx,
		teamRepo:        teamRepo,
		playerRepo:      playerRepo,
		playerStatsRepo: playerStatsRepo,
		matchRepo:       matchRepo,
		eventRepo:       eventRepo,
		validate:        newValidator(nil),
		logger:          logger,
	}
}

// List returns the players accepted by filter in store order.
func (s *PlayerService) List(ctx context.Context, filter player.Filter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list players")
	}
	return filterSlice(items, filter.Match), nil
}

func (s *PlayerService) ListAfrican(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListAfrican")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list players")
	}
	return filterSlice(items, func(p player.Player) bool { return p.IsAfricanPlayer }), nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get", playerIDAttr(playerID))
	defer span.End()

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, internalf(err, "get player")
	}
	if !exists {
		return player.Player{}, NotFoundf(MsgPlayerNotFound)
	}
	return item, nil
}

// Create inserts the player together with its zeroed statistics row. An
// unknown team is reported as invalid input.
func (s *PlayerService) Create(ctx context.Context, input CreatePlayerInput) (created player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer func() { endUsecaseSpan(span, err) }()

	if err := validateInput(s.validate, input, playerInputMessages); err != nil {
		return player.Player{}, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, exists, err := s.teamRepo.GetByID(ctx, input.TeamID); err != nil {
			return internalf(err, "get team")
		} else if !exists {
			return InvalidInputf(MsgTeamNotFound)
		}

		item, err := s.insert(ctx, player.Player{
			Name:         input.Name,
			Age:          input.Age,
			Position:     input.Position,
			TeamID:       input.TeamID,
			JerseyNumber: input.JerseyNumber,
			Nationality:  input.Nationality,
		})
		if err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}

	s.logger.InfoContext(ctx, "player created", "player_id", created.ID, "team_id", created.TeamID)
	return created, nil
}

// AddToTeam creates a player and appends it to the team roster. An unknown
// team is reported as not found.
func (s *PlayerService) AddToTeam(ctx context.Context, input AddPlayerToTeamInput) (created player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.AddToTeam")
	defer func() { endUsecaseSpan(span, err) }()

	if err := validateInput(s.validate, input, playerInputMessages); err != nil {
		return player.Player{}, err
	}

	marketValue := decimal.Zero
	if input.MarketValue != nil {
		marketValue = *input.MarketValue
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		teamItem, exists, err := s.teamRepo.GetByID(ctx, input.TeamID)
		if err != nil {
			return internalf(err, "get team")
		}
		if !exists {
			return NotFoundf(MsgTeamNotFound)
		}

		item, err := s.insert(ctx, player.Player{
			Name:         input.Name,
			Age:          input.Age,
			Position:     input.Position,
			TeamID:       input.TeamID,
			JerseyNumber: input.JerseyNumber,
			Nationality:  input.Nationality,
			MarketValue:  marketValue,
		})
		if err != nil {
			return err
		}

		if teamItem.HasRosterEntry(item.ID) {
			return InvalidInputf("Player with this ID already exists in the team")
		}
		if _, _, err := s.teamRepo.Update(ctx, input.TeamID, func(t *team.Team) {
			t.AddToRoster(item.ID)
		}); err != nil {
			return internalf(err, "update team roster")
		}

		created = item
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}

	s.logger.InfoContext(ctx, "player added to team", "player_id", created.ID, "team_id", created.TeamID)
	return created, nil
}

func (s *PlayerService) insert(ctx context.Context, item player.Player) (player.Player, error) {
	item.IsAfricanPlayer = player.IsAfricanNationality(item.Nationality)

	created, err := s.playerRepo.Insert(ctx, item)
	if err != nil {
		return player.Player{}, internalf(err, "insert player")
	}
	if err := s.playerStatsRepo.Insert(ctx, playerstats.Zero(created.ID)); err != nil {
		return player.Player{}, internalf(err, "insert player statistics")
	}
	return created, nil
}

// Update merges the provided fields. IsAfricanPlayer keeps the value derived
// at creation. A team change moves the roster entry along with the player.
func (s *PlayerService) Update(ctx context.Context, playerID string, input UpdatePlayerInput) (updated player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update", playerIDAttr(playerID))
	defer func() { endUsecaseSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, exists, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return internalf(err, "get player")
		}
		if !exists {
			return NotFoundf(MsgPlayerNotFound)
		}
		if input.TeamID != nil {
			if _, exists, err := s.teamRepo.GetByID(ctx, *input.TeamID); err != nil {
				return internalf(err, "get team")
			} else if !exists {
				return InvalidInputf(MsgTeamNotFound)
			}
		}
		if err := validateInput(s.validate, input, playerInputMessages); err != nil {
			return err
		}

		item, _, err := s.playerRepo.Update(ctx, playerID, input.patch().Apply)
		if err != nil {
			return internalf(err, "update player")
		}
		if item.TeamID != current.TeamID {
			if err := moveRosterEntry(ctx, s.teamRepo, item.ID, current.TeamID, item.TeamID); err != nil {
				return err
			}
		}
		updated = item
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}
	return updated, nil
}

// Delete removes the player, its statistics row and its roster entry. Match
// events keep the player id.
func (s *PlayerService) Delete(ctx context.Context, playerID string) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete", playerIDAttr(playerID))
	defer func() { endUsecaseSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		removed, exists, err := s.playerRepo.Delete(ctx, playerID)
		if err != nil {
			return internalf(err, "delete player")
		}
		if !exists {
			return NotFoundf(MsgPlayerNotFound)
		}
		if _, err := s.playerStatsRepo.Delete(ctx, playerID); err != nil {
			return internalf(err, "delete player statistics")
		}
		if _, _, err := s.teamRepo.Update(ctx, removed.TeamID, func(t *team.Team) {
			t.RemoveFromRoster(playerID)
		}); err != nil {
			return internalf(err, "update team roster")
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "player deleted", "player_id", playerID)
	return nil
}

// Matches lists the matches with at least one event by the player, in store
// order.
func (s *PlayerService) Matches(ctx context.Context, playerID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Matches", playerIDAttr(playerID))
	defer span.End()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list match events")
	}
	involved := make(map[string]struct{})
	for _, e := range events {
		if e.PlayerID == playerID {
			involved[e.MatchID] = struct{}{}
		}
	}
	if len(involved) == 0 {
		return []match.Match{}, nil
	}

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, internalf(err, "list matches")
	}
	return filterSlice(items, func(m match.Match) bool {
		_, ok := involved[m.ID]
		return ok
	}), nil
}

// moveRosterEntry keeps team rosters in step with a player's team. Only a
// player that was on the source roster is added to the destination roster.
func moveRosterEntry(ctx context.Context, teams team.Repository, playerID, fromTeamID, toTeamID string) error {
	from, _, err := teams.GetByID(ctx, fromTeamID)
	if err != nil {
		return internalf(err, "get team")
	}
	if !from.HasRosterEntry(playerID) {
		return nil
	}

	if _, _, err := teams.Update(ctx, fromTeamID, func(t *team.Team) { t.RemoveFromRoster(playerID) }); err != nil {
		return internalf(err, "update team roster")
	}
	if _, _, err := teams.Update(ctx, toTeamID, func(t *team.Team) { t.AddToRoster(playerID) }); err != nil {
		return internalf(err, "update team roster")
	}
	return nil
}
