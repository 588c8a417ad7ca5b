package lottery

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/lottery"
	"github.com/smartcontractkit/lottery/pkg/artifact"
	"github.com/smartcontractkit/lottery/sdk/evm"
)

func buildDeployCmd(root *rootOptions) *cobra.Command {
	var (
		artifactPath string
		outPath      string
		signerOpts   signerOptions
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the lottery contract from the first account of the wallet",
		Long:  `Deploys the compiled artifact at --artifact, or the bundled lottery contract, and writes the deployment record.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			a, err := loadArtifact(artifactPath)
			if err != nil {
				return err
			}

			s, err := newSession(cmd, root)
			if err != nil {
				return err
			}
			defer s.Close()

			auth, closer, err := s.transactOpts(&signerOpts)
			if err != nil {
				return err
			}
			defer closeWith(closer, &err)

			result, err := evm.NewDeployer(s.client, auth, s.cfg.ConfirmTimeout).Deploy(s.ctx, a)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = root.deploymentPath
			}
			if err = lottery.DeploymentFromResult(result, time.Now()).WriteFile(outPath); err != nil {
				return err
			}

			fmt.Fprintf(s.out, "Transaction %s confirmed\n", result.Hash.Hex())
			fmt.Fprintf(s.out, "Contract deployed to %s\n", result.Address.Hex())

			return nil
		},
	}

	cmd.Flags().StringVar(&artifactPath, "artifact", "", "Path to the compiled contract artifact, defaults to the bundled lottery contract")
	cmd.Flags().StringVar(&outPath, "out", "", "Path to write the deployment record to, defaults to --deployment")
	addSignerFlags(cmd, &signerOpts)

	return cmd
}

func loadArtifact(path string) (*artifact.Artifact, error) {
	if path == "" {
		return artifact.Lottery()
	}

	return artifact.Load(path)
}
