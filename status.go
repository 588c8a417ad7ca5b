package lottery

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/lottery/sdk"
	"github.com/smartcontractkit/lottery/types"
)

// GetStatus reads the manager, players and pot of the lottery at address.
func GetStatus(ctx context.Context, inspector sdk.Inspector, address common.Address) (types.Status, error) {
	manager, err := inspector.GetManager(ctx, address)
	if err != nil {
		return types.Status{}, fmt.Errorf("failed to get manager: %w", err)
	}

	players, err := inspector.GetPlayers(ctx, address)
	if err != nil {
		return types.Status{}, fmt.Errorf("failed to get players: %w", err)
	}

	pot, err := inspector.GetPot(ctx, address)
	if err != nil {
		return types.Status{}, fmt.Errorf("failed to get pot: %w", err)
	}

	return types.Status{
		Address: address,
		Manager: manager,
		Players: players,
		Pot:     pot,
	}, nil
}
