// Package artifact loads compiled contract artifacts, the pair of ABI and creation bytecode
// produced by the solidity compiler.
package artifact

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/smartcontractkit/lottery/sdk/evm/bindings"
)

var (
	// ErrMissingABI is returned when an artifact carries no ABI.
	ErrMissingABI = errors.New("artifact has no abi")

	// ErrMissingBytecode is returned when an artifact carries no creation bytecode.
	ErrMissingBytecode = errors.New("artifact has no bytecode")
)

// RequiredMethods are the contract methods the lottery tooling calls.
var RequiredMethods = []string{"manager", "enterLottery", "getPlayers", "pickWinner"}

// MissingMethodError is returned when the artifact ABI does not expose a required method.
type MissingMethodError struct {
	Method string
}

func (e *MissingMethodError) Error() string {
	return fmt.Sprintf("artifact abi is missing method %s", e.Method)
}

// InvalidOutputsError is returned when a required method does not return what the lottery
// tooling decodes.
type InvalidOutputsError struct {
	Method string
	Want   string
}

func (e *InvalidOutputsError) Error() string {
	return fmt.Sprintf("artifact abi method %s must return %s first", e.Method, e.Want)
}

// Artifact is a compiled contract.
type Artifact struct {
	Name     string
	RawABI   string
	ABI      abi.ABI
	Bytecode []byte
}

// rawArtifact covers the JSON layouts emitted by common toolchains:
//
//	solc-js:          {"interface": "<abi as string>", "bytecode": "6080..."}
//	truffle, hardhat: {"contractName": "...", "abi": [...], "bytecode": "0x6080..."}
//	foundry:          {"abi": [...], "bytecode": {"object": "0x6080..."}}
type rawArtifact struct {
	ContractName string          `json:"contractName"`
	Interface    string          `json:"interface"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     json.RawMessage `json:"bytecode"`
}

// Load reads and validates an artifact from a JSON file.
func Load(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads and validates an artifact from JSON.
func Parse(reader io.Reader) (*Artifact, error) {
	var raw rawArtifact
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	rawABI := raw.Interface
	if rawABI == "" && len(raw.ABI) > 0 && !bytes.Equal(raw.ABI, []byte("null")) {
		rawABI = string(raw.ABI)
	}
	if rawABI == "" {
		return nil, ErrMissingABI
	}

	bin, err := decodeBytecode(raw.Bytecode)
	if err != nil {
		return nil, err
	}

	return New(raw.ContractName, rawABI, bin)
}

// New builds an artifact from an ABI JSON document and creation bytecode.
func New(name, rawABI string, bytecode []byte) (*Artifact, error) {
	parsed, err := abi.JSON(strings.NewReader(rawABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse artifact abi: %w", err)
	}

	a := &Artifact{
		Name:     name,
		RawABI:   rawABI,
		ABI:      parsed,
		Bytecode: bytecode,
	}

	if err := a.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Lottery returns the compiled lottery contract bundled with the bindings.
func Lottery() (*Artifact, error) {
	bin, err := decodeHex(bindings.LotteryBin)
	if err != nil {
		return nil, err
	}

	return New("Lottery", bindings.LotteryABI, bin)
}

// Validate checks the artifact can be deployed and driven by the lottery tooling.
func (a *Artifact) Validate() error {
	if len(a.Bytecode) == 0 {
		return ErrMissingBytecode
	}

	for _, m := range RequiredMethods {
		if _, ok := a.ABI.Methods[m]; !ok {
			return &MissingMethodError{Method: m}
		}
	}

	// Players are decoded from the first output only. Extra outputs are ignored.
	players := a.ABI.Methods["getPlayers"]
	if len(players.Outputs) == 0 || !isAddressSlice(players.Outputs[0].Type) {
		return &InvalidOutputsError{Method: "getPlayers", Want: "address[]"}
	}

	return nil
}

func isAddressSlice(t abi.Type) bool {
	return t.T == abi.SliceTy && t.Elem != nil && t.Elem.T == abi.AddressTy
}

func decodeBytecode(msg json.RawMessage) ([]byte, error) {
	if len(msg) == 0 || bytes.Equal(msg, []byte("null")) {
		return nil, ErrMissingBytecode
	}

	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		var obj struct {
			Object string `json:"object"`
		}
		if err = json.Unmarshal(msg, &obj); err != nil {
			return nil, fmt.Errorf("failed to decode artifact bytecode: %w", err)
		}
		s = obj.Object
	}

	return decodeHex(s)
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if s == "" {
		return nil, ErrMissingBytecode
	}

	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid artifact bytecode: %w", err)
	}

	return b, nil
}
