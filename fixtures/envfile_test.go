package fixtures

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestParseEnvFile(t *testing.T) {
	cfg, err := ParseEnvFile([]byte(`
subject:
  collection: "0x1111111111111111111111111111111111111111"
  token_id: "99"
issuer: "0x2222222222222222222222222222222222222222"
holders_fee_distributor: "0x3333333333333333333333333333333333333333"
payment_token: "0x4444444444444444444444444444444444444444"
protocol_fee_percent: "5"
holders_fee_percent: "2.5"
purchase_amount: "1000000000000000000"
`))
	require.NoError(t, err)

	require.NotNil(t, cfg.Subject)
	require.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), cfg.Subject.Collection)
	require.Equal(t, "99", cfg.Subject.TokenID.String())

	require.NotNil(t, cfg.Issuer)
	require.Equal(t, common.HexToAddress("0x2222222222222222222222222222222222222222"), *cfg.Issuer)
	require.Nil(t, cfg.FeeDestination)

	require.Equal(t, refAddress, cfg.HoldersFeeDistributor.kind)
	require.Equal(t, common.HexToAddress("0x3333333333333333333333333333333333333333"), cfg.HoldersFeeDistributor.address)
	require.Equal(t, refAddress, cfg.PaymentToken.kind)

	require.Equal(t, "50000000000000000", cfg.ProtocolFeePercent.String())
	require.Equal(t, "25000000000000000", cfg.HoldersFeePercent.String())
	require.Nil(t, cfg.SubjectFeePercent)
	require.Equal(t, "1000000000000000000", cfg.PurchaseAmount.String())
}

func TestParseEnvFileZeroAddressIsExplicit(t *testing.T) {
	cfg, err := ParseEnvFile([]byte(`
holders_fee_distributor: "0x0000000000000000000000000000000000000000"
`))
	require.NoError(t, err)

	require.False(t, cfg.HoldersFeeDistributor.IsUnset())
	require.Equal(t, common.Address{}, cfg.HoldersFeeDistributor.address)
}

func TestParseEnvFileRejectsBadValues(t *testing.T) {
	_, err := ParseEnvFile([]byte(`issuer: "not-an-address"`))
	require.Error(t, err)

	_, err = ParseEnvFile([]byte(`protocol_fee_percent: "four"`))
	require.Error(t, err)

	_, err = ParseEnvFile([]byte(`purchase_amount: "1.5"`))
	require.Error(t, err)
}

func TestEmptyEnvFile(t *testing.T) {
	cfg, err := ParseEnvFile([]byte(""))
	require.NoError(t, err)
	require.True(t, cfg.HoldersFeeDistributor.IsUnset())
	require.True(t, cfg.PaymentToken.IsUnset())
	require.Nil(t, cfg.Subject)
}
