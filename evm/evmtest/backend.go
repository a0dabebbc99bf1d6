// Package evmtest provides an in-memory evm.Backend for fixture tests. It
// records every deployment, attachment and transaction, assigns deterministic
// addresses, and lets tests script per-method behavior with OnCall/OnTransact.
package evmtest

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hodlium/shares-go/evm"
)

// Deployment records one Deploy call.
type Deployment struct {
	Kind    string
	Address common.Address
	Args    []interface{}
}

// Attachment records one Attach call.
type Attachment struct {
	Kind    string
	Address common.Address
}

// Tx records one Transact call.
type Tx struct {
	Kind   string
	To     common.Address
	Method string
	Args   []interface{}
}

// CallFunc answers a scripted view call.
type CallFunc func(to common.Address, args []interface{}) ([]interface{}, error)

// TransactFunc applies a scripted transaction. Returning an error makes the
// transaction fail after it has been recorded.
type TransactFunc func(to common.Address, args []interface{}) error

// Backend is an in-memory evm.Backend. Not safe for concurrent use; fixture
// resolution is strictly sequential, and so are the tests driving it.
type Backend struct {
	nonce uint64

	Deployments []Deployment
	Attachments []Attachment
	Txs         []Tx

	callFns     map[string]CallFunc
	transactFns map[string]TransactFunc
}

func New() *Backend {
	return &Backend{
		callFns:     make(map[string]CallFunc),
		transactFns: make(map[string]TransactFunc),
	}
}

func methodKey(kind, method string) string { return kind + "." + method }

// OnCall scripts the result of a view method on every contract of a kind.
func (b *Backend) OnCall(kind, method string, fn CallFunc) {
	b.callFns[methodKey(kind, method)] = fn
}

// OnTransact scripts the effect of a state-changing method on every contract
// of a kind. Unscripted methods succeed as no-ops.
func (b *Backend) OnTransact(kind, method string, fn TransactFunc) {
	b.transactFns[methodKey(kind, method)] = fn
}

func (b *Backend) nextAddress() common.Address {
	b.nonce++
	return common.BigToAddress(new(big.Int).SetUint64(0xf1c0_0000 + b.nonce))
}

func (b *Backend) Deploy(_ context.Context, kind evm.Kind, args ...interface{}) (*evm.Contract, error) {
	addr := b.nextAddress()
	b.Deployments = append(b.Deployments, Deployment{Kind: kind.Name, Address: addr, Args: args})
	return evm.NewContract(b, kind, addr), nil
}

func (b *Backend) Attach(kind evm.Kind, address common.Address) (*evm.Contract, error) {
	b.Attachments = append(b.Attachments, Attachment{Kind: kind.Name, Address: address})
	return evm.NewContract(b, kind, address), nil
}

func (b *Backend) Call(_ context.Context, c *evm.Contract, results *[]interface{}, method string, args ...interface{}) error {
	fn, ok := b.callFns[methodKey(c.Kind().Name, method)]
	if !ok {
		return fmt.Errorf("evmtest: no call handler for %s.%s", c.Kind().Name, method)
	}
	out, err := fn(c.Address(), args)
	if err != nil {
		return err
	}
	*results = out
	return nil
}

func (b *Backend) Transact(_ context.Context, c *evm.Contract, method string, args ...interface{}) error {
	b.Txs = append(b.Txs, Tx{Kind: c.Kind().Name, To: c.Address(), Method: method, Args: args})
	if fn, ok := b.transactFns[methodKey(c.Kind().Name, method)]; ok {
		return fn(c.Address(), args)
	}
	return nil
}

// DeploymentsOf returns every recorded deployment of a kind, in order.
func (b *Backend) DeploymentsOf(kind string) []Deployment {
	var out []Deployment
	for _, d := range b.Deployments {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// TxsTo returns every recorded transaction sent to an address, in order.
func (b *Backend) TxsTo(to common.Address) []Tx {
	var out []Tx
	for _, tx := range b.Txs {
		if tx.To == to {
			out = append(out, tx)
		}
	}
	return out
}
