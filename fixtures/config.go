// Package fixtures stands up Shares protocol test environments. Callers hand
// in a partially specified MarketConfig; the resolver deploys every missing
// dependency, deploys the market once with fully resolved arguments, and
// patches in the cross-links the contracts cannot establish at construction
// time.
package fixtures

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hodlium/shares-go/evm"
	"github.com/hodlium/shares-go/wad"
)

// Defaults used when the corresponding MarketConfig field is left unset.
var (
	DefaultProtocolFeePercent = wad.Percent(4)
	DefaultHoldersFeePercent  = wad.Percent(3)
	DefaultSubjectFeePercent  = wad.Percent(3)

	// DefaultSubjectTokenID is minted to the issuer when no subject is given.
	DefaultSubjectTokenID = big.NewInt(1086432204)

	// DefaultPurchaseAmount is one whole payment unit.
	DefaultPurchaseAmount = new(big.Int).Set(wad.One)
)

// Subject identifies the non-fungible item a share market is based on.
type Subject struct {
	Collection common.Address
	TokenID    *big.Int
}

type refKind int

const (
	refUnset refKind = iota
	refAddress
	refHandle
)

// ActorRef names an optional contract collaborator three ways: unset (the
// resolver deploys a fresh one), a bare address (the resolver wraps it), or a
// ready handle. The zero value is unset; a zero-address ActorRef is a valid
// explicit value, not an omission.
type ActorRef struct {
	kind    refKind
	address common.Address
	handle  *evm.Contract
}

// RefAddress points the ref at an existing contract by address.
func RefAddress(address common.Address) ActorRef {
	return ActorRef{kind: refAddress, address: address}
}

// RefHandle points the ref at an already attached or deployed handle.
func RefHandle(h *evm.Contract) ActorRef {
	return ActorRef{kind: refHandle, handle: h}
}

// IsUnset reports whether the ref was left at its zero value.
func (r ActorRef) IsUnset() bool { return r.kind == refUnset }

// resolve maps the ref to a concrete handle. An explicit zero address
// resolves to nil: the caller asked for no collaborator at all.
func (r ActorRef) resolve(be evm.Backend, kind evm.Kind) (*evm.Contract, error) {
	switch r.kind {
	case refHandle:
		return r.handle, nil
	case refAddress:
		if r.address == evm.ZeroAddress {
			return nil, nil
		}
		return be.Attach(kind, r.address)
	default:
		return nil, nil
	}
}

// MarketConfig is a partially specified market environment. Every field is
// optional; nil pointers and zero-value refs mean "resolve a default". An
// explicit zero address is never treated as unset.
type MarketConfig struct {
	// Subject the market is based on. Unset: a TestERC721 is deployed and
	// DefaultSubjectTokenID is minted to the issuer.
	Subject *Subject

	// Issuer receives the freshly minted subject. Unset: the deployer.
	Issuer *common.Address

	// FeeDestination receives the protocol fee cut. Unset: a FeeDistributor
	// is deployed and its address used.
	FeeDestination *common.Address

	// HoldersFeeDistributor receives the holders fee cut. Unset: a fresh one
	// is deployed. The explicit zero address disables it.
	HoldersFeeDistributor ActorRef

	// PaymentToken is the ERC20 the market trades against. Only consulted by
	// the ERC20 variant. Unset or the zero address: a TestERC20 is deployed;
	// an ERC20 market cannot trade against no token.
	PaymentToken ActorRef

	// Fee fractions of 1e18. Unset: 4%, 3%, 3%.
	ProtocolFeePercent *big.Int
	HoldersFeePercent  *big.Int
	SubjectFeePercent  *big.Int

	// PurchaseAmount for the initial buy helpers. Unset: one payment unit.
	PurchaseAmount *big.Int

	// Beneficiary and Owner of the market. Unset: the deployer.
	Beneficiary *common.Address
	Owner       *common.Address
}

func addrOr(a *common.Address, fallback common.Address) common.Address {
	if a != nil {
		return *a
	}
	return fallback
}

// bigOr copies the fallback so callers mutating the resolved value cannot
// reach the shared package-level defaults.
func bigOr(v, fallback *big.Int) *big.Int {
	if v != nil {
		return v
	}
	return new(big.Int).Set(fallback)
}
