package fixtures

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hodlium/shares-go/contracts"
	"github.com/hodlium/shares-go/evm"
)

// DeployRegistry deploys an empty SharesRegistry.
func DeployRegistry(ctx context.Context, be evm.Backend) (*evm.Contract, error) {
	return be.Deploy(ctx, contracts.SharesRegistry)
}

// RegisterMarket records env's market in the registry under its subject.
func RegisterMarket(ctx context.Context, registry *evm.Contract, env *MarketEnv) error {
	return registry.Transact(ctx, "register", env.Subject.Collection, env.Subject.TokenID, env.Market.Address())
}

// MarketOf looks a market address up by subject.
func MarketOf(ctx context.Context, registry *evm.Contract, subject Subject) (common.Address, error) {
	var out []interface{}
	if err := registry.Call(ctx, &out, "marketOf", subject.Collection, subject.TokenID); err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}
