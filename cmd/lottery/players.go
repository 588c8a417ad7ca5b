package lottery

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/lottery/sdk/evm"
	"github.com/smartcontractkit/lottery/types"
)

func buildPlayersCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Lists the players in entry order",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			defer s.Close()

			address, err := s.loadDeployment(root.deploymentPath)
			if err != nil {
				return err
			}

			players, err := evm.NewInspector(s.client).GetPlayers(s.ctx, address)
			if err != nil {
				return err
			}

			printPlayers(s, players)

			return nil
		},
	}
}

func printPlayers(s *session, players []types.Player) {
	if len(players) == 0 {
		fmt.Fprintln(s.out, "No players")
		return
	}

	for i, p := range players {
		fmt.Fprintf(s.out, "%d: %s (balance %s ether)\n", i, p.Address.Hex(), types.FormatEther(p.Balance))
	}
}
