package lottery

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/lottery"
	"github.com/smartcontractkit/lottery/pkg/config"
	"github.com/smartcontractkit/lottery/sdk"
	sdkerrors "github.com/smartcontractkit/lottery/sdk/errors"
	"github.com/smartcontractkit/lottery/sdk/evm"
)

// session is the loaded configuration and chain connection of a single command run.
type session struct {
	ctx     context.Context
	cfg     *config.Config
	client  evm.ContractDeployBackend
	chainID *big.Int
	out     io.Writer
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.LogLevel = strings.ToLower(opts.logLevel)
		if err = cfg.Validate(); err != nil {
			return nil, err
		}
	}

	lggr, err := sdk.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = sdk.WithLogger(ctx, lggr)

	client, err := opts.dial(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.RPCURL, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain ID: %w", err)
	}
	if !chainID.IsUint64() {
		return nil, sdkerrors.NewInvalidChainIDError(0)
	}

	return &session{ctx: ctx, cfg: cfg, client: client, chainID: chainID, out: cmd.OutOrStdout()}, nil
}

// transactOpts builds transaction options from the configured or flagged signer. The returned
// closer releases hardware wallets.
func (s *session) transactOpts(opts *signerOptions) (*bind.TransactOpts, func() error, error) {
	if opts.ledger {
		s.cfg.UseLedger = true
		s.cfg.PrivateKey, s.cfg.Mnemonic = "", ""
	}
	if err := s.cfg.ValidateSigner(); err != nil {
		return nil, nil, err
	}

	path := opts.derivationPath
	if path == "" {
		path = s.cfg.AccountPath()
	}

	var (
		signer lottery.Signer
		closer = func() error { return nil }
	)
	switch {
	case s.cfg.UseLedger:
		dpath, err := accounts.ParseDerivationPath(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse derivation path: %w", err)
		}
		ledger := lottery.NewLedgerSigner(dpath)
		signer, closer = ledger, ledger.Close
	case s.cfg.Mnemonic != "":
		mnemonicSigner, err := lottery.NewMnemonicSigner(s.cfg.Mnemonic, path)
		if err != nil {
			return nil, nil, err
		}
		signer = mnemonicSigner
	default:
		pkSigner, err := lottery.NewPrivateKeySignerFromHex(s.cfg.PrivateKey)
		if err != nil {
			return nil, nil, err
		}
		signer = pkSigner
	}

	auth, err := signer.TransactOpts(s.ctx, s.chainID)
	if err != nil {
		_ = closer()
		return nil, nil, err
	}
	auth.GasLimit = s.cfg.GasLimit

	return auth, closer, nil
}

// loadDeployment reads the deployment record and checks it belongs to the connected chain.
func (s *session) loadDeployment(path string) (common.Address, error) {
	d, err := lottery.LoadDeployment(path)
	if err != nil {
		return common.Address{}, err
	}

	if d.ChainID != s.chainID.Uint64() {
		return common.Address{}, lottery.NewChainIDMismatchError(d.ChainSelector, d.ChainID, s.chainID.Uint64())
	}

	return d.Address, nil
}

func closeWith(closer func() error, err *error) {
	if cerr := closer(); cerr != nil && *err == nil {
		*err = cerr
	}
}

var errMissingValue = errors.New("--value is required")

func (s *session) Close() {
	if c, ok := s.client.(interface{ Close() }); ok {
		c.Close()
	}
}
