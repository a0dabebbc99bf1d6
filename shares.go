package shares

import (
	"github.com/hodlium/shares-go/fixtures"
)

// DeployMarket stands up a native-coin share market with on-demand defaults.
//
// Example:
//
// env, _ := DeployMarket(ctx, backend, deployer, fixtures.MarketConfig{})
//
// env.Market.Transact(ctx, "buyShares", env.PurchaseAmount)
var DeployMarket = fixtures.DeployMarket

// DeployERC20Market is DeployMarket for the ERC20 payment-token variant.
var DeployERC20Market = fixtures.DeployERC20Market

// DeployAll stands up the full suite: ERC20 market, registry, reward pool.
var DeployAll = fixtures.DeployAll
