package evm

import (
	"context"
	"fmt"
)

// DeployProxied deploys an upgradeable contract behind a proxy: deploy the
// implementation, pack the initializer call, deploy the proxy pointing at the
// implementation with that payload, then re-attach the proxy address under the
// implementation's ABI kind so callers talk to the proxy as if it were the
// implementation.
func DeployProxied(
	ctx context.Context,
	be Backend,
	proxyKind Kind,
	implKind Kind,
	implArgs []interface{},
	initMethod string,
	initArgs ...interface{},
) (*Contract, error) {
	impl, err := be.Deploy(ctx, implKind, implArgs...)
	if err != nil {
		return nil, err
	}

	initData, err := implKind.ABI.Pack(initMethod, initArgs...)
	if err != nil {
		return nil, fmt.Errorf("pack %s.%s: %w", implKind.Name, initMethod, err)
	}

	proxy, err := be.Deploy(ctx, proxyKind, impl.Address(), initData)
	if err != nil {
		return nil, err
	}

	return be.Attach(implKind, proxy.Address())
}
