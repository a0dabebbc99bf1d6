// Package contracts declares the contract kinds of the Shares protocol suite.
// ABI fragments cover the constructors and methods the fixtures exercise; the
// full ABIs live in the compiled artifacts.
package contracts

import "github.com/hodlium/shares-go/evm"

// SharesMarket is the bonding-curve share market paying out in the chain's
// native coin.
var SharesMarket = evm.MustKind("SharesMarket", `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"subjectCollection","type":"address"},
		{"name":"subjectId","type":"uint256"},
		{"name":"feeDestination","type":"address"},
		{"name":"holdersFeeDistributor","type":"address"},
		{"name":"protocolFeePercent","type":"uint256"},
		{"name":"holdersFeePercent","type":"uint256"},
		{"name":"subjectFeePercent","type":"uint256"},
		{"name":"beneficiary","type":"address"},
		{"name":"owner","type":"address"}]},
	{"type":"function","name":"buyShares","stateMutability":"payable","inputs":[
		{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"sellShares","stateMutability":"nonpayable","inputs":[
		{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getBuyPriceAfterFee","stateMutability":"view","inputs":[
		{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"sharesSupply","stateMutability":"view","inputs":[],
		"outputs":[{"name":"","type":"uint256"}]}
]`)

// ERC20SharesMarket is the share market variant trading against an ERC20
// payment token instead of the native coin.
var ERC20SharesMarket = evm.MustKind("ERC20SharesMarket", `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"paymentToken","type":"address"},
		{"name":"subjectCollection","type":"address"},
		{"name":"subjectId","type":"uint256"},
		{"name":"feeDestination","type":"address"},
		{"name":"holdersFeeDistributor","type":"address"},
		{"name":"protocolFeePercent","type":"uint256"},
		{"name":"holdersFeePercent","type":"uint256"},
		{"name":"subjectFeePercent","type":"uint256"},
		{"name":"beneficiary","type":"address"},
		{"name":"owner","type":"address"}]},
	{"type":"function","name":"buyShares","stateMutability":"nonpayable","inputs":[
		{"name":"amount","type":"uint256"},
		{"name":"maxPrice","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"sellShares","stateMutability":"nonpayable","inputs":[
		{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getBuyPriceAfterFee","stateMutability":"view","inputs":[
		{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"paymentToken","stateMutability":"view","inputs":[],
		"outputs":[{"name":"","type":"address"}]}
]`)

// FeeDistributor receives the protocol fee cut. Constructed against the
// payment token; the zero address means the native coin.
var FeeDistributor = evm.MustKind("FeeDistributor", `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"token","type":"address"}]},
	{"type":"function","name":"token","stateMutability":"view","inputs":[],
		"outputs":[{"name":"","type":"address"}]}
]`)

// HoldersFeeDistributor accumulates the holders fee cut and distributes it
// among current share holders. setMarket is guarded on-chain: once a market
// is bound, further calls are no-ops.
var HoldersFeeDistributor = evm.MustKind("HoldersFeeDistributor", `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"token","type":"address"}]},
	{"type":"function","name":"setMarket","stateMutability":"nonpayable","inputs":[
		{"name":"market","type":"address"}],"outputs":[]},
	{"type":"function","name":"market","stateMutability":"view","inputs":[],
		"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"claimable","stateMutability":"view","inputs":[
		{"name":"holder","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`)

// RewardPool is upgradeable and deployed behind an ERC1967 proxy; state is
// set through initialize rather than a constructor.
var RewardPool = evm.MustKind("RewardPool", `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[]},
	{"type":"function","name":"initialize","stateMutability":"nonpayable","inputs":[
		{"name":"owner","type":"address"},
		{"name":"rewardToken","type":"address"}],"outputs":[]},
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],
		"outputs":[{"name":"","type":"address"}]},
	{"type":"function","name":"notifyReward","stateMutability":"nonpayable","inputs":[
		{"name":"amount","type":"uint256"}],"outputs":[]}
]`)

// SharesRegistry maps a subject (collection, id) to its market.
var SharesRegistry = evm.MustKind("SharesRegistry", `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[]},
	{"type":"function","name":"register","stateMutability":"nonpayable","inputs":[
		{"name":"collection","type":"address"},
		{"name":"tokenId","type":"uint256"},
		{"name":"market","type":"address"}],"outputs":[]},
	{"type":"function","name":"marketOf","stateMutability":"view","inputs":[
		{"name":"collection","type":"address"},
		{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]}
]`)

// TestERC20 is the default payment token for fixture environments.
var TestERC20 = evm.MustKind("TestERC20", `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[
		{"name":"name","type":"string"},
		{"name":"symbol","type":"string"}]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[
		{"name":"to","type":"address"},
		{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[
		{"name":"spender","type":"address"},
		{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"balanceOf","stateMutability":"view","inputs":[
		{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]}
]`)

// TestERC721 is the default subject collection for fixture environments.
var TestERC721 = evm.MustKind("TestERC721", `[
	{"type":"constructor","stateMutability":"nonpayable","inputs":[]},
	{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[
		{"name":"to","type":"address"},
		{"name":"tokenId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[
		{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]}
]`)

// ERC1967Proxy delegates to an implementation and forwards the init payload
// on construction.
var ERC1967Proxy = evm.MustKind("ERC1967Proxy", `[
	{"type":"constructor","stateMutability":"payable","inputs":[
		{"name":"implementation","type":"address"},
		{"name":"data","type":"bytes"}]}
]`)
