package evm

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Kind identifies a contract type: a name (matching the compiled artifact
// name) and the parsed ABI the fixtures use to talk to it.
type Kind struct {
	Name string
	ABI  abi.ABI
}

// NewKind parses abiJSON into a Kind.
func NewKind(name, abiJSON string) (Kind, error) {
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return Kind{}, fmt.Errorf("parse %s ABI: %w", name, err)
	}
	return Kind{Name: name, ABI: parsed}, nil
}

// MustKind is NewKind for package-level kind declarations.
func MustKind(name, abiJSON string) Kind {
	k, err := NewKind(name, abiJSON)
	if err != nil {
		panic(err)
	}
	return k
}
