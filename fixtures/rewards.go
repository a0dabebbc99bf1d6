package fixtures

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hodlium/shares-go/contracts"
	"github.com/hodlium/shares-go/evm"
)

// DeployRewardPool deploys the upgradeable RewardPool behind an ERC1967 proxy
// and initializes it in the same step. The returned handle is the proxy
// address under the RewardPool ABI.
func DeployRewardPool(ctx context.Context, be evm.Backend, owner, rewardToken common.Address) (*evm.Contract, error) {
	return evm.DeployProxied(ctx, be,
		contracts.ERC1967Proxy,
		contracts.RewardPool,
		nil,
		"initialize", owner, rewardToken,
	)
}
