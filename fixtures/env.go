package fixtures

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hodlium/shares-go/evm"
)

// Environment is the full fixture suite: an ERC20 market with every actor
// resolved, registered in a fresh registry, plus a proxied reward pool bound
// to the market's payment token.
type Environment struct {
	Market     *MarketEnv
	Registry   *evm.Contract
	RewardPool *evm.Contract
}

// DeployAll stands up a complete ERC20-variant environment. Deployment order
// follows the dependency chain: market (with its on-demand collaborators),
// then registry, then reward pool.
func DeployAll(ctx context.Context, be evm.Backend, deployer common.Address, cfg MarketConfig) (*Environment, error) {
	market, err := DeployERC20Market(ctx, be, deployer, cfg)
	if err != nil {
		return nil, err
	}

	registry, err := DeployRegistry(ctx, be)
	if err != nil {
		return nil, err
	}
	if err = RegisterMarket(ctx, registry, market); err != nil {
		return nil, err
	}

	pool, err := DeployRewardPool(ctx, be, market.Owner, market.PaymentToken.Address())
	if err != nil {
		return nil, err
	}

	return &Environment{Market: market, Registry: registry, RewardPool: pool}, nil
}
