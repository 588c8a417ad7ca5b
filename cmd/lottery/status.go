package lottery

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/lottery"
	"github.com/smartcontractkit/lottery/sdk/evm"
	"github.com/smartcontractkit/lottery/types"
)

func buildStatusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Shows the manager, pot and players of the deployed lottery",
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

			status, err := lottery.GetStatus(s.ctx, evm.NewInspector(s.client), address)
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Lottery %s\n", status.Address.Hex())
			fmt.Fprintf(s.out, "Manager %s\n", status.Manager.Hex())
			fmt.Fprintf(s.out, "Pot %s ether\n", types.FormatEther(status.Pot))
			printPlayers(s, status.Players)

			return nil
		},
	}
}
