package lottery

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/lottery/sdk/evm"
	"github.com/smartcontractkit/lottery/types"
)

func buildPickWinnerCmd(root *rootOptions) *cobra.Command {
	var signerOpts signerOptions

	cmd := &cobra.Command{
		Use:   "pick-winner",
		Short: "Draws a winner and pays out the pot, only the manager may draw",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			defer s.Close()

			address, err := s.loadDeployment(root.deploymentPath)
			if err != nil {
				return err
			}

			auth, closer, err := s.transactOpts(&signerOpts)
			if err != nil {
				return err
			}
			defer closeWith(closer, &err)

			result, err := evm.NewExecutor(s.client, auth, s.cfg.ConfirmTimeout).PickWinner(s.ctx, address)
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Transaction %s confirmed\n", result.Hash.Hex())
			fmt.Fprintf(s.out, "Winner %s received %s ether\n", result.Winner.Hex(), types.FormatEther(result.Prize))

			return nil
		},
	}

	addSignerFlags(cmd, &signerOpts)

	return cmd
}
