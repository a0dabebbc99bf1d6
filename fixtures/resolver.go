package fixtures

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hodlium/shares-go/contracts"
	"github.com/hodlium/shares-go/evm"
)

// Default constructor arguments for the fixture payment token.
const (
	testTokenName   = "Shares Test Token"
	testTokenSymbol = "SHRT"
)

// MarketEnv is the fully resolved result of a market deployment: every
// defaulted or deployed-on-demand actor, plus the live market handle.
// Immutable once returned.
type MarketEnv struct {
	Market *evm.Contract

	Subject Subject
	// SubjectCollection is the freshly deployed TestERC721, or nil when the
	// subject was supplied by the caller.
	SubjectCollection *evm.Contract
	Issuer            common.Address

	FeeDestination common.Address
	// FeeDistributor is the freshly deployed distributor behind
	// FeeDestination, or nil when the destination was supplied.
	FeeDistributor *evm.Contract

	// HoldersFeeDistributor is nil when the caller disabled it with an
	// explicit zero address.
	HoldersFeeDistributor *evm.Contract

	// PaymentToken is set by the ERC20 variant only.
	PaymentToken *evm.Contract

	ProtocolFeePercent *big.Int
	HoldersFeePercent  *big.Int
	SubjectFeePercent  *big.Int
	PurchaseAmount     *big.Int

	Beneficiary common.Address
	Owner       common.Address
}

// DeployMarket resolves cfg against be and deploys a native-coin SharesMarket.
// Missing dependencies are deployed on demand; any failure propagates as is,
// leaving already deployed contracts in place.
func DeployMarket(ctx context.Context, be evm.Backend, deployer common.Address, cfg MarketConfig) (*MarketEnv, error) {
	return deployMarket(ctx, be, deployer, cfg, contracts.SharesMarket, false)
}

// DeployERC20Market is DeployMarket for the ERC20 payment-token variant. The
// payment token is resolved first so on-demand distributors can bind to it.
func DeployERC20Market(ctx context.Context, be evm.Backend, deployer common.Address, cfg MarketConfig) (*MarketEnv, error) {
	return deployMarket(ctx, be, deployer, cfg, contracts.ERC20SharesMarket, true)
}

func deployMarket(ctx context.Context, be evm.Backend, deployer common.Address, cfg MarketConfig, marketKind evm.Kind, erc20 bool) (*MarketEnv, error) {
	env := &MarketEnv{
		Issuer:             addrOr(cfg.Issuer, deployer),
		ProtocolFeePercent: bigOr(cfg.ProtocolFeePercent, DefaultProtocolFeePercent),
		HoldersFeePercent:  bigOr(cfg.HoldersFeePercent, DefaultHoldersFeePercent),
		SubjectFeePercent:  bigOr(cfg.SubjectFeePercent, DefaultSubjectFeePercent),
		PurchaseAmount:     bigOr(cfg.PurchaseAmount, DefaultPurchaseAmount),
		Beneficiary:        addrOr(cfg.Beneficiary, deployer),
		Owner:              addrOr(cfg.Owner, deployer),
	}

	// Payment token first: the distributors below bind to it. The native
	// variant binds them to the zero address instead.
	tokenAddr := evm.ZeroAddress
	if erc20 {
		token, err := cfg.PaymentToken.resolve(be, contracts.TestERC20)
		if err != nil {
			return nil, err
		}
		if token == nil {
			if token, err = be.Deploy(ctx, contracts.TestERC20, testTokenName, testTokenSymbol); err != nil {
				return nil, err
			}
		}
		env.PaymentToken = token
		tokenAddr = token.Address()
	}

	if cfg.Subject != nil {
		env.Subject = *cfg.Subject
	} else {
		collection, err := be.Deploy(ctx, contracts.TestERC721)
		if err != nil {
			return nil, err
		}
		tokenID := new(big.Int).Set(DefaultSubjectTokenID)
		if err = collection.Transact(ctx, "mint", env.Issuer, tokenID); err != nil {
			return nil, err
		}
		env.SubjectCollection = collection
		env.Subject = Subject{Collection: collection.Address(), TokenID: tokenID}
	}

	if cfg.FeeDestination != nil {
		env.FeeDestination = *cfg.FeeDestination
	} else {
		distributor, err := be.Deploy(ctx, contracts.FeeDistributor, tokenAddr)
		if err != nil {
			return nil, err
		}
		env.FeeDistributor = distributor
		env.FeeDestination = distributor.Address()
	}

	holders, err := cfg.HoldersFeeDistributor.resolve(be, contracts.HoldersFeeDistributor)
	if err != nil {
		return nil, err
	}
	if holders == nil && cfg.HoldersFeeDistributor.IsUnset() {
		if holders, err = be.Deploy(ctx, contracts.HoldersFeeDistributor, tokenAddr); err != nil {
			return nil, err
		}
	}
	env.HoldersFeeDistributor = holders

	holdersAddr := evm.ZeroAddress
	if holders != nil {
		holdersAddr = holders.Address()
	}

	args := []interface{}{
		env.Subject.Collection,
		env.Subject.TokenID,
		env.FeeDestination,
		holdersAddr,
		env.ProtocolFeePercent,
		env.HoldersFeePercent,
		env.SubjectFeePercent,
		env.Beneficiary,
		env.Owner,
	}
	if erc20 {
		args = append([]interface{}{tokenAddr}, args...)
	}

	market, err := be.Deploy(ctx, marketKind, args...)
	if err != nil {
		return nil, err
	}
	env.Market = market

	// Second leg of the diamond: the distributor needs the market address,
	// but the market had to deploy first. setMarket is a no-op on the
	// contract side once a market is bound.
	if holders != nil {
		if err = holders.Transact(ctx, "setMarket", market.Address()); err != nil {
			return nil, err
		}
	}

	return env, nil
}
