package lottery

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/lottery/sdk/evm"
)

const defaultDeploymentPath = "deployment.json"

// dialFunc opens a client to the chain at rpcURL.
type dialFunc func(ctx context.Context, rpcURL string) (evm.ContractDeployBackend, error)

func dialEthClient(ctx context.Context, rpcURL string) (evm.ContractDeployBackend, error) {
	return ethclient.DialContext(ctx, rpcURL)
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	envFile        string
	deploymentPath string
	logLevel       string

	dial dialFunc
}

// signerOptions holds the flags of commands that send transactions.
type signerOptions struct {
	ledger         bool
	derivationPath string
}

func BuildLotteryCmd() *cobra.Command {
	return newRootCmd(dialEthClient)
}

func newRootCmd(dial dialFunc) *cobra.Command {
	opts := &rootOptions{dial: dial}

	cmd := cobra.Command{
		Use:           "lottery",
		Short:         "Deploy and play the lottery contract",
		Long:          `Configure the RPC endpoint and wallet in a .env file (RPC_URL with PRIVATE_KEY, MNEMONIC or USE_LEDGER) or the environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "Path to the env file, an empty value only reads the environment")
	cmd.PersistentFlags().StringVar(&opts.deploymentPath, "deployment", defaultDeploymentPath, "Path of the deployment record")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level, overrides LOG_LEVEL")

	cmd.AddCommand(buildDeployCmd(opts))
	cmd.AddCommand(buildEnterCmd(opts))
	cmd.AddCommand(buildPlayersCmd(opts))
	cmd.AddCommand(buildPickWinnerCmd(opts))
	cmd.AddCommand(buildStatusCmd(opts))

	return &cmd
}

func addSignerFlags(cmd *cobra.Command, opts *signerOptions) {
	cmd.Flags().BoolVar(&opts.ledger, "ledger", false, "Sign with the first connected ledger")
	cmd.Flags().StringVar(&opts.derivationPath, "derivation-path", "", "Derivation path of the signing account, defaults to DERIVATION_PATH with ACCOUNT_INDEX")
}
