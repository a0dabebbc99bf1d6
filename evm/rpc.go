package evm

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

var ErrTxReverted = errors.New("transaction reverted")

// RPCBackend implements Backend against a live JSON-RPC node. Deployments
// need compiled bytecode, so an artifact directory is required; attach and
// call work from the kind's ABI alone.
type RPCBackend struct {
	client    *ethclient.Client
	auth      *bind.TransactOpts
	sender    common.Address
	artifacts *ArtifactDir
	log       *zap.Logger
}

// DialBackend connects to rpcURL and prepares a transactor for key on the
// node's chain ID.
func DialBackend(ctx context.Context, rpcURL string, key *ecdsa.PrivateKey, artifacts *ArtifactDir, log *zap.Logger) (*RPCBackend, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", rpcURL, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, err
	}

	return &RPCBackend{
		client:    client,
		auth:      auth,
		sender:    auth.From,
		artifacts: artifacts,
		log:       log,
	}, nil
}

// Sender is the address deployments and transactions are signed with.
func (b *RPCBackend) Sender() common.Address { return b.sender }

func (b *RPCBackend) Deploy(ctx context.Context, kind Kind, args ...interface{}) (*Contract, error) {
	art, err := b.artifacts.Load(kind.Name)
	if err != nil {
		return nil, err
	}

	opts := *b.auth
	opts.Context = ctx

	addr, tx, _, err := bind.DeployContract(&opts, kind.ABI, art.Bytecode, b.client, args...)
	if err != nil {
		return nil, fmt.Errorf("deploy %s: %w", kind.Name, err)
	}

	if _, err = bind.WaitDeployed(ctx, b.client, tx); err != nil {
		return nil, fmt.Errorf("deploy %s: %w", kind.Name, err)
	}

	b.log.Info("contract deployed",
		zap.String("kind", kind.Name),
		zap.String("address", addr.Hex()),
		zap.String("tx", tx.Hash().Hex()),
	)
	return NewContract(b, kind, addr), nil
}

func (b *RPCBackend) Attach(kind Kind, address common.Address) (*Contract, error) {
	return NewContract(b, kind, address), nil
}

func (b *RPCBackend) Call(ctx context.Context, c *Contract, results *[]interface{}, method string, args ...interface{}) error {
	bound := bind.NewBoundContract(c.Address(), c.Kind().ABI, b.client, b.client, b.client)
	return bound.Call(&bind.CallOpts{Context: ctx}, results, method, args...)
}

func (b *RPCBackend) Transact(ctx context.Context, c *Contract, method string, args ...interface{}) error {
	bound := bind.NewBoundContract(c.Address(), c.Kind().ABI, b.client, b.client, b.client)

	opts := *b.auth
	opts.Context = ctx

	tx, err := bound.Transact(&opts, method, args...)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", c.Kind().Name, method, err)
	}

	receipt, err := bind.WaitMined(ctx, b.client, tx)
	if err != nil {
		return fmt.Errorf("%s.%s: %w", c.Kind().Name, method, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%s.%s: %w", c.Kind().Name, method, ErrTxReverted)
	}

	b.log.Info("transaction mined",
		zap.String("kind", c.Kind().Name),
		zap.String("method", method),
		zap.String("tx", tx.Hash().Hex()),
	)
	return nil
}
