package usecase

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/sports-league/internal/infrastructure/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferService_TransferMovesPlayerAndFee(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)
	svc.clock.Advance(90 * time.Second)
	fee := decimal.RequireFromString("2500000.75")

	receipt, err := svc.transfers.Transfer(t.Context(), TransferPlayerInput{
		PlayerID:    "1",
		FromTeamID:  memory.TeamIDLions,
		ToTeamID:    memory.TeamIDTigers,
		TransferFee: fee,
	})
	require.NoError(t, err)

	assert.Equal(t, memory.TeamIDTigers, receipt.Player.TeamID)
	assert.True(t, receipt.FromTeam.MarketValue.Equal(fee.Neg()), "from market value %s", receipt.FromTeam.MarketValue)
	assert.True(t, receipt.ToTeam.MarketValue.Equal(fee), "to market value %s", receipt.ToTeam.MarketValue)
	assert.True(t, receipt.TransferFee.Equal(fee))
	assert.Equal(t, testNow.Add(90*time.Second), receipt.TransferDate)

	moved, err := svc.players.Get(t.Context(), "1")
	require.NoError(t, err)
	assert.Equal(t, memory.TeamIDTigers, moved.TeamID)
}

func TestTransferService_RejectsWrongSourceTeam(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)

	_, err := svc.transfers.Transfer(t.Context(), TransferPlayerInput{
		PlayerID:    "1",
		FromTeamID:  memory.TeamIDTigers,
		ToTeamID:    memory.TeamIDBears,
		TransferFee: decimal.NewFromInt(1000),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Equal(t, "Player is not part of the source team", err.Error())

	current, _ := svc.players.Get(t.Context(), "1")
	assert.Equal(t, memory.TeamIDLions, current.TeamID)
	for _, id := range []string{memory.TeamIDTigers, memory.TeamIDBears} {
		item, _ := svc.teams.Get(t.Context(), id)
		assert.True(t, item.MarketValue.IsZero(), "team %s market value %s", id, item.MarketValue)
	}
}

func TestTransferService_NotFound(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)

	_, err := svc.transfers.Transfer(t.Context(), TransferPlayerInput{PlayerID: "404", FromTeamID: memory.TeamIDLions, ToTeamID: memory.TeamIDTigers})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, MsgPlayerNotFound, err.Error())

	_, err = svc.transfers.Transfer(t.Context(), TransferPlayerInput{PlayerID: "1", FromTeamID: memory.TeamIDLions, ToTeamID: "404"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, MsgTeamNotFound, err.Error())
}

func TestTransferService_RejectsNegativeFee(t *testing.T) {
	t.Parallel()

	svc := newTestServices(t)

	_, err := svc.transfers.Transfer(t.Context(), TransferPlayerInput{
		PlayerID:    "1",
		FromTeamID:  memory.TeamIDLions,
		ToTeamID:    memory.TeamIDTigers,
		TransferFee: decimal.NewFromInt(-5),
	})
	require.Error(t, err)
	assert.Equal(t, "Transfer fee must not be negative", err.Error())

	current, _ := svc.players.Get(t.Context(), "1")
	assert.Equal(t, memory.TeamIDLions, current.TeamID)
}
