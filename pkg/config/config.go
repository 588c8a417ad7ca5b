// Package config loads the lottery tooling configuration from the environment and an optional
// .env file. Secrets such as the wallet mnemonic never live in source.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Environment variable names.
const (
	EnvRPCURL         = "RPC_URL"
	EnvPrivateKey     = "PRIVATE_KEY"
	EnvMnemonic       = "MNEMONIC"
	EnvAccountIndex   = "ACCOUNT_INDEX"
	EnvDerivationPath = "DERIVATION_PATH"
	EnvUseLedger      = "USE_LEDGER"
	EnvGasLimit       = "GAS_LIMIT"
	EnvConfirmTimeout = "CONFIRM_TIMEOUT"
	EnvLogLevel       = "LOG_LEVEL"
)

const (
	// DefaultGasLimit is the gas limit attached to every transaction.
	DefaultGasLimit = uint64(1000000)

	// DefaultConfirmTimeout bounds how long a command waits for a transaction to be mined.
	DefaultConfirmTimeout = 2 * time.Minute

	// DefaultDerivationPath is the BIP-44 ethereum path, %d is replaced by the account index.
	DefaultDerivationPath = "m/44'/60'/0'/0/%d"

	// DefaultLogLevel is used when LOG_LEVEL is unset.
	DefaultLogLevel = "info"
)

// InvalidConfigError is returned when the loaded configuration is unusable.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "invalid config: " + e.Reason
}

// Config is the runtime configuration of the CLI.
type Config struct {
	RPCURL         string        `validate:"required,url"`
	PrivateKey     string        `validate:"omitempty,hexadecimal"`
	Mnemonic       string        `validate:"omitempty"`
	AccountIndex   uint32        `validate:"gte=0"`
	DerivationPath string        `validate:"required,startswith=m/"`
	UseLedger      bool          `validate:"-"`
	GasLimit       uint64        `validate:"gte=21000"`
	ConfirmTimeout time.Duration `validate:"gt=0"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
}

// LookupFunc resolves a configuration key, reporting whether it is set.
type LookupFunc func(key string) (string, bool)

// Load builds the configuration from the process environment, falling back to the values in
// envFile. An empty envFile only consults the environment.
func Load(envFile string) (*Config, error) {
	fileValues := map[string]string{}
	if envFile != "" {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		}
		fileValues = values
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileValues[key]

		return v, ok
	})
}

// FromLookup builds and validates the configuration from the given lookup.
func FromLookup(lookup LookupFunc) (*Config, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}

		return fallback
	}

	accountIndex, err := cast.ToUint32E(get(EnvAccountIndex, "0"))
	if err != nil {
		return nil, &InvalidConfigError{Reason: fmt.Sprintf("%s: %v", EnvAccountIndex, err)}
	}

	gasLimit, err := cast.ToUint64E(get(EnvGasLimit, cast.ToString(DefaultGasLimit)))
	if err != nil {
		return nil, &InvalidConfigError{Reason: fmt.Sprintf("%s: %v", EnvGasLimit, err)}
	}

	timeout, err := cast.ToDurationE(get(EnvConfirmTimeout, DefaultConfirmTimeout.String()))
	if err != nil {
		return nil, &InvalidConfigError{Reason: fmt.Sprintf("%s: %v", EnvConfirmTimeout, err)}
	}

	useLedger, err := cast.ToBoolE(get(EnvUseLedger, "false"))
	if err != nil {
		return nil, &InvalidConfigError{Reason: fmt.Sprintf("%s: %v", EnvUseLedger, err)}
	}

	cfg := &Config{
		RPCURL:         get(EnvRPCURL, ""),
		PrivateKey:     strings.TrimPrefix(get(EnvPrivateKey, ""), "0x"),
		Mnemonic:       get(EnvMnemonic, ""),
		AccountIndex:   accountIndex,
		DerivationPath: get(EnvDerivationPath, DefaultDerivationPath),
		UseLedger:      useLedger,
		GasLimit:       gasLimit,
		ConfirmTimeout: timeout,
		LogLevel:       strings.ToLower(get(EnvLogLevel, DefaultLogLevel)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks field formats and that at most one signing source is configured. Read only
// commands run without a signer.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &InvalidConfigError{Reason: err.Error()}
	}

	if c.signerSources() > 1 {
		return &InvalidConfigError{
			Reason: fmt.Sprintf("only one of %s, %s or %s may be set", EnvPrivateKey, EnvMnemonic, EnvUseLedger),
		}
	}

	return nil
}

// ValidateSigner checks that exactly one signing source is configured.
func (c *Config) ValidateSigner() error {
	if err := c.Validate(); err != nil {
		return err
	}

	if c.signerSources() == 0 {
		return &InvalidConfigError{
			Reason: fmt.Sprintf("one of %s, %s or %s must be set", EnvPrivateKey, EnvMnemonic, EnvUseLedger),
		}
	}

	return nil
}

func (c *Config) signerSources() int {
	sources := 0
	for _, set := range []bool{c.PrivateKey != "", c.Mnemonic != "", c.UseLedger} {
		if set {
			sources++
		}
	}

	return sources
}

// AccountPath returns the derivation path of the configured account.
func (c *Config) AccountPath() string {
	if strings.Contains(c.DerivationPath, "%d") {
		return fmt.Sprintf(c.DerivationPath, c.AccountIndex)
	}

	return c.DerivationPath
}
