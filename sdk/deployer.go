package sdk

import (
	"context"

	"github.com/smartcontractkit/lottery/pkg/artifact"
	"github.com/smartcontractkit/lottery/types"
)

// Deployer deploys compiled lottery artifacts.
type Deployer interface {
	Deploy(ctx context.Context, a *artifact.Artifact) (types.DeployResult, error)
}
