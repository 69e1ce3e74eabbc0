package usecase

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/sports-league/internal/domain/player"
	"github.com/riskibarqy/sports-league/internal/domain/team"
	"github.com/riskibarqy/sports-league/internal/platform/logging"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

type TransferPlayerInput struct {
	PlayerID    string
	FromTeamID  string
	ToTeamID    string
	TransferFee decimal.Decimal `validate:"gte=0"`
}

// TransferReceipt describes a completed transfer. The teams carry their
// market values after the fee was moved.
type TransferReceipt struct {
	Player       player.Player
	FromTeam     team.Team
	ToTeam       team.Team
	TransferFee  decimal.Decimal
	TransferDate time.Time
}

var transferInputMessages = map[string]string{
	"TransferFee": "Transfer fee must not be negative",
}

type TransferService struct {
	tx         Transactor
	teamRepo   team.Repository
	playerRepo player.Repository
	clock      clockwork.Clock
	validate   *validator.Validate
	logger     *logging.Logger
}

func NewTransferService(
	tx Transactor,
	teamRepo team.Repository,
	playerRepo player.Repository,
	clock clockwork.Clock,
	logger *logging.Logger,
) *TransferService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &TransferService{
		tx:         tx,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		clock:      clock,
		validate:   newValidator(clock),
		logger:     logger,
	}
}

// Transfer moves a player from one team to another and moves the fee between
// the teams' market values.
func (s *TransferService) Transfer(ctx context.Context, input TransferPlayerInput) (receipt TransferReceipt, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Transfer",
		playerIDAttr(input.PlayerID),
		attribute.String("transfer.from_team_id", input.FromTeamID),
		attribute.String("transfer.to_team_id", input.ToTeamID),
	)
	defer func() { endUsecaseSpan(span, err) }()

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID)
		if err != nil {
			return internalf(err, "get player")
		}
		if !exists {
			return NotFoundf(MsgPlayerNotFound)
		}

		_, fromExists, err := s.teamRepo.GetByID(ctx, input.FromTeamID)
		if err != nil {
			return internalf(err, "get source team")
		}
		_, toExists, err := s.teamRepo.GetByID(ctx, input.ToTeamID)
		if err != nil {
			return internalf(err, "get destination team")
		}
		if !fromExists || !toExists {
			return NotFoundf(MsgTeamNotFound)
		}

		if current.TeamID != input.FromTeamID {
			return InvalidInputf("Player is not part of the source team")
		}
		if err := validateInput(s.validate, input, transferInputMessages); err != nil {
			return err
		}

		moved, _, err := s.playerRepo.Update(ctx, input.PlayerID, func(p *player.Player) {
			p.TeamID = input.ToTeamID
		})
		if err != nil {
			return internalf(err, "update player")
		}
		if err := moveRosterEntry(ctx, s.teamRepo, moved.ID, input.FromTeamID, input.ToTeamID); err != nil {
			return err
		}

		fromTeam, _, err := s.teamRepo.Update(ctx, input.FromTeamID, func(t *team.Team) {
			t.MarketValue = t.MarketValue.Sub(input.TransferFee)
		})
		if err != nil {
			return internalf(err, "update source team")
		}
		toTeam, _, err := s.teamRepo.Update(ctx, input.ToTeamID, func(t *team.Team) {
			t.MarketValue = t.MarketValue.Add(input.TransferFee)
		})
		if err != nil {
			return internalf(err, "update destination team")
		}

		receipt = TransferReceipt{
			Player:       moved,
			FromTeam:     fromTeam,
			ToTeam:       toTeam,
			TransferFee:  input.TransferFee,
			TransferDate: s.clock.Now().UTC(),
		}
		return nil
	})
	if err != nil {
		return TransferReceipt{}, err
	}

	s.logger.InfoContext(ctx, "player transferred",
		"player_id", receipt.Player.ID,
		"from_team_id", receipt.FromTeam.ID,
		"to_team_id", receipt.ToTeam.ID,
		"transfer_fee", receipt.TransferFee.String(),
	)
	return receipt, nil
}
