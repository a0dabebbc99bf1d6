package fixtures_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/hodlium/shares-go/contracts"
	"github.com/hodlium/shares-go/evm"
	"github.com/hodlium/shares-go/evm/evmtest"
	"github.com/hodlium/shares-go/fixtures"
)

var (
	deployer = common.HexToAddress("0x00000000000000000000000000000000000000d1")
	someone  = common.HexToAddress("0x00000000000000000000000000000000000000e2")
)

func setMarketTxs(be *evmtest.Backend) []evmtest.Tx {
	var out []evmtest.Tx
	for _, tx := range be.Txs {
		if tx.Method == "setMarket" {
			out = append(out, tx)
		}
	}
	return out
}

func TestDeployMarketAllDefaults(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	env, err := fixtures.DeployMarket(ctx, be, deployer, fixtures.MarketConfig{})
	require.NoError(t, err)

	// fresh subject collection, minted to the issuer exactly once
	collections := be.DeploymentsOf("TestERC721")
	require.Len(t, collections, 1)
	require.Equal(t, collections[0].Address, env.Subject.Collection)
	require.Equal(t, fixtures.DefaultSubjectTokenID, env.Subject.TokenID)
	require.Equal(t, "1086432204", env.Subject.TokenID.String())

	mints := be.TxsTo(collections[0].Address)
	require.Len(t, mints, 1)
	require.Equal(t, "mint", mints[0].Method)
	require.Equal(t, deployer, mints[0].Args[0])
	require.Equal(t, fixtures.DefaultSubjectTokenID, mints[0].Args[1])

	// fresh fee destination
	feeDists := be.DeploymentsOf("FeeDistributor")
	require.Len(t, feeDists, 1)
	require.Equal(t, feeDists[0].Address, env.FeeDestination)
	require.Equal(t, evm.ZeroAddress, feeDists[0].Args[0], "native variant binds the distributor to the zero token")

	// fresh holders distributor, linked to the market after deployment
	holders := be.DeploymentsOf("HoldersFeeDistributor")
	require.Len(t, holders, 1)
	require.NotNil(t, env.HoldersFeeDistributor)
	require.Equal(t, holders[0].Address, env.HoldersFeeDistributor.Address())

	links := setMarketTxs(be)
	require.Len(t, links, 1)
	require.Equal(t, holders[0].Address, links[0].To)
	require.Equal(t, env.Market.Address(), links[0].Args[0])

	// default percentages and amounts
	require.Equal(t, "40000000000000000", env.ProtocolFeePercent.String())
	require.Equal(t, "30000000000000000", env.HoldersFeePercent.String())
	require.Equal(t, "30000000000000000", env.SubjectFeePercent.String())
	require.Equal(t, fixtures.DefaultPurchaseAmount, env.PurchaseAmount)
	require.Equal(t, deployer, env.Beneficiary)
	require.Equal(t, deployer, env.Owner)

	// native variant never deploys a payment token
	require.Empty(t, be.DeploymentsOf("TestERC20"))
	require.Nil(t, env.PaymentToken)

	// single market deployment with fully resolved arguments
	markets := be.DeploymentsOf("SharesMarket")
	require.Len(t, markets, 1)
	require.Equal(t, []interface{}{
		env.Subject.Collection,
		env.Subject.TokenID,
		env.FeeDestination,
		env.HoldersFeeDistributor.Address(),
		env.ProtocolFeePercent,
		env.HoldersFeePercent,
		env.SubjectFeePercent,
		deployer,
		deployer,
	}, markets[0].Args)
}

func TestDeployERC20MarketDefaults(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	env, err := fixtures.DeployERC20Market(ctx, be, deployer, fixtures.MarketConfig{})
	require.NoError(t, err)

	tokens := be.DeploymentsOf("TestERC20")
	require.Len(t, tokens, 1)
	require.NotNil(t, env.PaymentToken)
	require.Equal(t, tokens[0].Address, env.PaymentToken.Address())

	// the token resolves before the distributors so they can bind to it
	require.Equal(t, tokens[0].Address, be.DeploymentsOf("FeeDistributor")[0].Args[0])
	require.Equal(t, tokens[0].Address, be.DeploymentsOf("HoldersFeeDistributor")[0].Args[0])

	markets := be.DeploymentsOf("ERC20SharesMarket")
	require.Len(t, markets, 1)
	require.Equal(t, tokens[0].Address, markets[0].Args[0])
}

func TestSuppliedSubjectSkipsDeployment(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	subject := fixtures.Subject{Collection: someone, TokenID: big.NewInt(7)}
	env, err := fixtures.DeployMarket(ctx, be, deployer, fixtures.MarketConfig{Subject: &subject})
	require.NoError(t, err)

	require.Empty(t, be.DeploymentsOf("TestERC721"))
	require.Nil(t, env.SubjectCollection)
	require.Equal(t, subject, env.Subject)
}

func TestHoldersDistributorBareAddress(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	cfg := fixtures.MarketConfig{HoldersFeeDistributor: fixtures.RefAddress(someone)}
	env, err := fixtures.DeployMarket(ctx, be, deployer, cfg)
	require.NoError(t, err)

	// wrapped, never deployed
	require.Empty(t, be.DeploymentsOf("HoldersFeeDistributor"))
	require.NotNil(t, env.HoldersFeeDistributor)
	require.Equal(t, someone, env.HoldersFeeDistributor.Address())

	links := setMarketTxs(be)
	require.Len(t, links, 1)
	require.Equal(t, someone, links[0].To)
}

func TestHoldersDistributorZeroAddress(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	cfg := fixtures.MarketConfig{HoldersFeeDistributor: fixtures.RefAddress(evm.ZeroAddress)}
	env, err := fixtures.DeployMarket(ctx, be, deployer, cfg)
	require.NoError(t, err)

	require.Nil(t, env.HoldersFeeDistributor)
	require.Empty(t, be.DeploymentsOf("HoldersFeeDistributor"))
	require.Empty(t, setMarketTxs(be), "no link call without a real distributor")

	// the market still receives an explicit zero address
	markets := be.DeploymentsOf("SharesMarket")
	require.Len(t, markets, 1)
	require.Equal(t, evm.ZeroAddress, markets[0].Args[3])
}

func TestHoldersDistributorHandle(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	pre, err := be.Deploy(ctx, contracts.HoldersFeeDistributor, evm.ZeroAddress)
	require.NoError(t, err)

	cfg := fixtures.MarketConfig{HoldersFeeDistributor: fixtures.RefHandle(pre)}
	env, err := fixtures.DeployMarket(ctx, be, deployer, cfg)
	require.NoError(t, err)

	// the pre-deployed one is the only one
	require.Len(t, be.DeploymentsOf("HoldersFeeDistributor"), 1)
	require.Equal(t, pre.Address(), env.HoldersFeeDistributor.Address())

	links := setMarketTxs(be)
	require.Len(t, links, 1)
	require.Equal(t, pre.Address(), links[0].To)
}

func TestSetMarketBindOnceGuard(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	// model the contract-side guard: first bind wins, later calls no-op
	bound := make(map[common.Address]common.Address)
	be.OnTransact("HoldersFeeDistributor", "setMarket", func(to common.Address, args []interface{}) error {
		if _, ok := bound[to]; !ok {
			bound[to] = args[0].(common.Address)
		}
		return nil
	})

	env, err := fixtures.DeployMarket(ctx, be, deployer, fixtures.MarketConfig{})
	require.NoError(t, err)

	dist := env.HoldersFeeDistributor
	require.Equal(t, env.Market.Address(), bound[dist.Address()])

	// a second bind attempt leaves the first in place
	require.NoError(t, dist.Transact(ctx, "setMarket", someone))
	require.Equal(t, env.Market.Address(), bound[dist.Address()])
}

func TestExplicitParametersRespected(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	protocol := big.NewInt(50_000_000_000_000_000) // 5%
	amount := big.NewInt(42)
	cfg := fixtures.MarketConfig{
		Issuer:             &someone,
		FeeDestination:     &someone,
		ProtocolFeePercent: protocol,
		PurchaseAmount:     amount,
		Beneficiary:        &someone,
		Owner:              &someone,
	}

	env, err := fixtures.DeployMarket(ctx, be, deployer, cfg)
	require.NoError(t, err)

	require.Empty(t, be.DeploymentsOf("FeeDistributor"))
	require.Equal(t, someone, env.FeeDestination)
	require.Equal(t, protocol, env.ProtocolFeePercent)
	require.Equal(t, "30000000000000000", env.HoldersFeePercent.String(), "unset fees still default")
	require.Equal(t, amount, env.PurchaseAmount)
	require.Equal(t, someone, env.Beneficiary)
	require.Equal(t, someone, env.Owner)

	// the fresh subject goes to the explicit issuer
	mints := be.TxsTo(env.Subject.Collection)
	require.Len(t, mints, 1)
	require.Equal(t, someone, mints[0].Args[0])
}

func TestResolvedDefaultsAreCopies(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	env, err := fixtures.DeployMarket(ctx, be, deployer, fixtures.MarketConfig{})
	require.NoError(t, err)

	// mutating one environment's resolved values must not leak into the
	// package defaults or later resolutions
	env.ProtocolFeePercent.SetInt64(1)
	env.HoldersFeePercent.SetInt64(2)
	env.SubjectFeePercent.SetInt64(3)
	env.PurchaseAmount.SetInt64(4)
	env.Subject.TokenID.SetInt64(5)

	require.Equal(t, "40000000000000000", fixtures.DefaultProtocolFeePercent.String())
	require.Equal(t, "30000000000000000", fixtures.DefaultHoldersFeePercent.String())
	require.Equal(t, "30000000000000000", fixtures.DefaultSubjectFeePercent.String())
	require.Equal(t, "1000000000000000000", fixtures.DefaultPurchaseAmount.String())
	require.Equal(t, "1086432204", fixtures.DefaultSubjectTokenID.String())

	next, err := fixtures.DeployMarket(ctx, be, deployer, fixtures.MarketConfig{})
	require.NoError(t, err)
	require.Equal(t, "40000000000000000", next.ProtocolFeePercent.String())
	require.Equal(t, "1086432204", next.Subject.TokenID.String())
}

func TestRegistryRoundTrip(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	type key struct {
		collection common.Address
		tokenID    string
	}
	state := make(map[key]common.Address)
	be.OnTransact("SharesRegistry", "register", func(_ common.Address, args []interface{}) error {
		state[key{args[0].(common.Address), args[1].(*big.Int).String()}] = args[2].(common.Address)
		return nil
	})
	be.OnCall("SharesRegistry", "marketOf", func(_ common.Address, args []interface{}) ([]interface{}, error) {
		return []interface{}{state[key{args[0].(common.Address), args[1].(*big.Int).String()}]}, nil
	})

	env, err := fixtures.DeployMarket(ctx, be, deployer, fixtures.MarketConfig{})
	require.NoError(t, err)

	registry, err := fixtures.DeployRegistry(ctx, be)
	require.NoError(t, err)
	require.NoError(t, fixtures.RegisterMarket(ctx, registry, env))

	got, err := fixtures.MarketOf(ctx, registry, env.Subject)
	require.NoError(t, err)
	require.Equal(t, env.Market.Address(), got)
}

func TestDeployAll(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	suite, err := fixtures.DeployAll(ctx, be, deployer, fixtures.MarketConfig{})
	require.NoError(t, err)

	require.NotNil(t, suite.Market.Market)
	require.Len(t, be.DeploymentsOf("SharesRegistry"), 1)

	// reward pool sits behind a proxy, bound to the market's payment token
	proxies := be.DeploymentsOf("ERC1967Proxy")
	require.Len(t, proxies, 1)
	require.Equal(t, proxies[0].Address, suite.RewardPool.Address())
	require.Equal(t, "RewardPool", suite.RewardPool.Kind().Name)

	wantInit, err := contracts.RewardPool.ABI.Pack("initialize", suite.Market.Owner, suite.Market.PaymentToken.Address())
	require.NoError(t, err)
	require.Equal(t, wantInit, proxies[0].Args[1])

	// registry holds the market under its subject
	var registered []evmtest.Tx
	for _, tx := range be.Txs {
		if tx.Method == "register" {
			registered = append(registered, tx)
		}
	}
	require.Len(t, registered, 1)
	require.Equal(t, suite.Market.Market.Address(), registered[0].Args[2])
}
