package fixtures

import (
	"fmt"
	"math/big"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/hodlium/shares-go/wad"
)

// EnvFile is the YAML shape of a fixture environment description. Every field
// is optional; addresses are hex strings, fee percentages plain percent
// values ("4", "2.5"), amounts base-10 integers in the token's smallest unit.
// An explicit zero address in holders_fee_distributor disables it, same as in
// MarketConfig.
type EnvFile struct {
	Subject *struct {
		Collection string `yaml:"collection"`
		TokenID    string `yaml:"token_id"`
	} `yaml:"subject"`
	Issuer                string `yaml:"issuer"`
	FeeDestination        string `yaml:"fee_destination"`
	HoldersFeeDistributor string `yaml:"holders_fee_distributor"`
	PaymentToken          string `yaml:"payment_token"`
	ProtocolFeePercent    string `yaml:"protocol_fee_percent"`
	HoldersFeePercent     string `yaml:"holders_fee_percent"`
	SubjectFeePercent     string `yaml:"subject_fee_percent"`
	PurchaseAmount        string `yaml:"purchase_amount"`
	Beneficiary           string `yaml:"beneficiary"`
	Owner                 string `yaml:"owner"`
}

// LoadEnvFile reads a YAML environment file into a MarketConfig.
func LoadEnvFile(path string) (MarketConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return MarketConfig{}, err
	}
	return ParseEnvFile(data)
}

// ParseEnvFile converts YAML data into a MarketConfig.
func ParseEnvFile(data []byte) (MarketConfig, error) {
	var f EnvFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return MarketConfig{}, fmt.Errorf("parse env file: %w", err)
	}

	var cfg MarketConfig

	if f.Subject != nil {
		collection, err := parseAddr(f.Subject.Collection)
		if err != nil {
			return MarketConfig{}, err
		}
		tokenID, err := parseBig(f.Subject.TokenID)
		if err != nil {
			return MarketConfig{}, err
		}
		cfg.Subject = &Subject{Collection: *collection, TokenID: tokenID}
	}

	var err error
	if cfg.Issuer, err = parseOptAddr(f.Issuer); err != nil {
		return MarketConfig{}, err
	}
	if cfg.FeeDestination, err = parseOptAddr(f.FeeDestination); err != nil {
		return MarketConfig{}, err
	}
	if cfg.Beneficiary, err = parseOptAddr(f.Beneficiary); err != nil {
		return MarketConfig{}, err
	}
	if cfg.Owner, err = parseOptAddr(f.Owner); err != nil {
		return MarketConfig{}, err
	}

	if f.HoldersFeeDistributor != "" {
		addr, err := parseAddr(f.HoldersFeeDistributor)
		if err != nil {
			return MarketConfig{}, err
		}
		cfg.HoldersFeeDistributor = RefAddress(*addr)
	}
	if f.PaymentToken != "" {
		addr, err := parseAddr(f.PaymentToken)
		if err != nil {
			return MarketConfig{}, err
		}
		cfg.PaymentToken = RefAddress(*addr)
	}

	if cfg.ProtocolFeePercent, err = parseOptPercent(f.ProtocolFeePercent); err != nil {
		return MarketConfig{}, err
	}
	if cfg.HoldersFeePercent, err = parseOptPercent(f.HoldersFeePercent); err != nil {
		return MarketConfig{}, err
	}
	if cfg.SubjectFeePercent, err = parseOptPercent(f.SubjectFeePercent); err != nil {
		return MarketConfig{}, err
	}

	if f.PurchaseAmount != "" {
		if cfg.PurchaseAmount, err = parseBig(f.PurchaseAmount); err != nil {
			return MarketConfig{}, err
		}
	}

	return cfg, nil
}

func parseAddr(s string) (*common.Address, error) {
	if !common.IsHexAddress(s) {
		return nil, fmt.Errorf("invalid address %q", s)
	}
	addr := common.HexToAddress(s)
	return &addr, nil
}

func parseOptAddr(s string) (*common.Address, error) {
	if s == "" {
		return nil, nil
	}
	return parseAddr(s)
}

func parseBig(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	return v, nil
}

func parseOptPercent(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	p, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid percent %q: %w", s, err)
	}
	return wad.FromPercent(p), nil
}
