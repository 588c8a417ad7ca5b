package lottery

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/lottery/sdk/evm"
	"github.com/smartcontractkit/lottery/types"
)

func buildEnterCmd(root *rootOptions) *cobra.Command {
	var (
		value      string
		signerOpts signerOptions
	)

	cmd := &cobra.Command{
		Use:   "enter",
		Short: "Enters the lottery, staking --value ether",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if value == "" {
				return errMissingValue
			}
			wei, err := types.ParseEther(value)
			if err != nil {
				return err
			}

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

			result, err := evm.NewExecutor(s.client, auth, s.cfg.ConfirmTimeout).EnterLottery(s.ctx, address, wei)
			if err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Transaction %s confirmed\n", result.Hash.Hex())
			fmt.Fprintf(s.out, "%s entered with %s ether\n", auth.From.Hex(), types.FormatEther(wei))

			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Stake in ether, must be more than 0.01")
	addSignerFlags(cmd, &signerOpts)

	return cmd
}
