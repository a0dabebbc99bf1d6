package evm_test

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/hodlium/shares-go/contracts"
	"github.com/hodlium/shares-go/evm"
	"github.com/hodlium/shares-go/evm/evmtest"
)

func TestDeployProxied(t *testing.T) {
	be := evmtest.New()
	ctx := context.Background()

	owner := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	token := common.HexToAddress("0x00000000000000000000000000000000000000bb")

	pool, err := evm.DeployProxied(ctx, be,
		contracts.ERC1967Proxy, contracts.RewardPool,
		nil,
		"initialize", owner, token,
	)
	require.NoError(t, err)

	// implementation first, then the proxy
	require.Len(t, be.Deployments, 2)
	impl, proxy := be.Deployments[0], be.Deployments[1]
	require.Equal(t, "RewardPool", impl.Kind)
	require.Equal(t, "ERC1967Proxy", proxy.Kind)

	// proxy constructor gets the implementation address and the packed init call
	require.Equal(t, impl.Address, proxy.Args[0])
	wantInit, err := contracts.RewardPool.ABI.Pack("initialize", owner, token)
	require.NoError(t, err)
	require.Equal(t, wantInit, proxy.Args[1])

	// returned handle: proxy address under the implementation's ABI
	require.Equal(t, proxy.Address, pool.Address())
	require.Equal(t, "RewardPool", pool.Kind().Name)
}
