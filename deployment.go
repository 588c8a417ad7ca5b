package lottery

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/smartcontractkit/lottery/types"
)

// DeploymentVersion is the current version of the deployment record format.
const DeploymentVersion = "v1"

// Deployment records where a lottery contract was deployed, so later commands can find it.
type Deployment struct {
	Version       string              `json:"version" validate:"required"`
	ChainSelector types.ChainSelector `json:"chainSelector,omitempty"`
	ChainID       uint64              `json:"chainId" validate:"required"`
	Address       common.Address      `json:"address"`
	Manager       common.Address      `json:"manager"`
	TxHash        common.Hash         `json:"txHash"`
	BlockNumber   uint64              `json:"blockNumber"`
	DeployedAt    time.Time           `json:"deployedAt"`
}

// DeploymentFromResult builds a deployment record from a mined deployment.
func DeploymentFromResult(result types.DeployResult, deployedAt time.Time) *Deployment {
	d := &Deployment{
		Version:       DeploymentVersion,
		ChainSelector: result.ChainSelector,
		ChainID:       result.ChainID,
		Address:       result.Address,
		Manager:       result.Deployer,
		TxHash:        result.Hash,
		DeployedAt:    deployedAt.UTC(),
	}
	if result.Receipt != nil && result.Receipt.BlockNumber != nil {
		d.BlockNumber = result.Receipt.BlockNumber.Uint64()
	}

	return d
}

// NewDeployment decodes and validates a deployment record.
func NewDeployment(reader io.Reader) (*Deployment, error) {
	var out Deployment
	if err := json.NewDecoder(reader).Decode(&out); err != nil {
		return nil, err
	}

	if err := out.Validate(); err != nil {
		return nil, err
	}

	return &out, nil
}

// LoadDeployment reads a deployment record from a file.
func LoadDeployment(path string) (*Deployment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open deployment file: %w", err)
	}
	defer f.Close()

	return NewDeployment(f)
}

// Write validates the record and writes it as indented JSON.
func (d *Deployment) Write(w io.Writer) error {
	if err := d.Validate(); err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(d)
}

// WriteFile writes the record to path, replacing any existing file.
func (d *Deployment) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create deployment file: %w", err)
	}

	if err = d.Write(f); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func (d *Deployment) Validate() error {
	// Run tag-based validation
	validate := validator.New()
	if err := validate.Struct(d); err != nil {
		return err
	}

	if d.Version != DeploymentVersion {
		return NewUnsupportedVersionError(d.Version)
	}

	if d.Address == (common.Address{}) {
		return ErrMissingAddress
	}

	// A zero selector is recorded for chains missing from the selector registry.
	if d.ChainSelector == 0 {
		return nil
	}

	chainID, err := d.ChainSelector.EVMChainID()
	if err != nil {
		return err
	}
	if chainID != d.ChainID {
		return NewChainIDMismatchError(d.ChainSelector, d.ChainID, chainID)
	}

	return nil
}
