package evm

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
)

// ZeroAddress is the EVM zero address. Passing it where a contract address is
// expected is an explicit "nobody" value, distinct from an unset parameter.
var ZeroAddress = common.Address{}

// Backend is the deployment primitive the fixture resolver runs against.
// RPCBackend implements it over a live node; evmtest.Backend implements it
// in memory for tests.
type Backend interface {
	// Deploy deploys a contract of the given kind with the given constructor
	// arguments and returns a handle to the new instance.
	Deploy(ctx context.Context, kind Kind, args ...interface{}) (*Contract, error)

	// Attach wraps an existing address as a callable handle of the given kind
	// without deploying anything.
	Attach(kind Kind, address common.Address) (*Contract, error)

	// Call invokes a view method on c and unpacks the return values into results.
	Call(ctx context.Context, c *Contract, results *[]interface{}, method string, args ...interface{}) error

	// Transact sends a state-changing method call to c and waits for it to be
	// mined (or applied, for in-memory backends).
	Transact(ctx context.Context, c *Contract, method string, args ...interface{}) error
}

// Contract is a deployed-instance handle: a contract kind bound to an address
// on a particular backend.
type Contract struct {
	kind    Kind
	address common.Address
	backend Backend
}

// NewContract binds kind and address on b. Backends use it from Deploy and
// Attach; callers normally obtain handles from a Backend instead.
func NewContract(b Backend, kind Kind, address common.Address) *Contract {
	return &Contract{kind: kind, address: address, backend: b}
}

func (c *Contract) Kind() Kind              { return c.kind }
func (c *Contract) Address() common.Address { return c.address }

func (c *Contract) Call(ctx context.Context, results *[]interface{}, method string, args ...interface{}) error {
	return c.backend.Call(ctx, c, results, method, args...)
}

func (c *Contract) Transact(ctx context.Context, method string, args ...interface{}) error {
	return c.backend.Transact(ctx, c, method, args...)
}
