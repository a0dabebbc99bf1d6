// sharesdev stands up Shares protocol fixture environments against a live
// JSON-RPC node. Meant for integration testing, not production deployments.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hodlium/shares-go/evm"
	"github.com/hodlium/shares-go/fixtures"
)

var (
	flagRPC       string
	flagKeyHex    string
	flagArtifacts string
	flagEnvFile   string
	flagNative    bool
)

func main() {
	root := &cobra.Command{
		Use:           "sharesdev",
		Short:         "Shares protocol fixture deployer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	deploy := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a fully wired fixture environment",
		RunE:  runDeploy,
	}
	deploy.Flags().StringVar(&flagRPC, "rpc", "http://127.0.0.1:8545", "JSON-RPC endpoint")
	deploy.Flags().StringVar(&flagKeyHex, "private-key", "", "hex deployer key (no 0x prefix)")
	deploy.Flags().StringVar(&flagArtifacts, "artifacts", "artifacts", "compiled artifact directory")
	deploy.Flags().StringVar(&flagEnvFile, "env", "", "YAML file naming pre-existing actors")
	deploy.Flags().BoolVar(&flagNative, "native", false, "deploy the native-coin market only")
	_ = deploy.MarkFlagRequired("private-key")
	root.AddCommand(deploy)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sharesdev:", err)
		os.Exit(1)
	}
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer log.Sync()

	key, err := crypto.HexToECDSA(flagKeyHex)
	if err != nil {
		return fmt.Errorf("private key: %w", err)
	}

	cfg := fixtures.MarketConfig{}
	if flagEnvFile != "" {
		if cfg, err = fixtures.LoadEnvFile(flagEnvFile); err != nil {
			return err
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	be, err := evm.DialBackend(ctx, flagRPC, key, evm.NewArtifactDir(flagArtifacts), log)
	if err != nil {
		return err
	}
	log.Info("connected", zap.String("rpc", flagRPC), zap.String("deployer", be.Sender().Hex()))

	if flagNative {
		env, err := fixtures.DeployMarket(ctx, be, be.Sender(), cfg)
		if err != nil {
			return err
		}
		logMarket(log, env)
		return nil
	}

	suite, err := fixtures.DeployAll(ctx, be, be.Sender(), cfg)
	if err != nil {
		return err
	}
	logMarket(log, suite.Market)
	log.Info("environment ready",
		zap.String("registry", suite.Registry.Address().Hex()),
		zap.String("reward_pool", suite.RewardPool.Address().Hex()),
	)
	return nil
}

func logMarket(log *zap.Logger, env *fixtures.MarketEnv) {
	fields := []zap.Field{
		zap.String("market", env.Market.Address().Hex()),
		zap.String("subject_collection", env.Subject.Collection.Hex()),
		zap.String("subject_id", env.Subject.TokenID.String()),
		zap.String("fee_destination", env.FeeDestination.Hex()),
		zap.String("owner", env.Owner.Hex()),
	}
	if env.HoldersFeeDistributor != nil {
		fields = append(fields, zap.String("holders_fee_distributor", env.HoldersFeeDistributor.Address().Hex()))
	}
	if env.PaymentToken != nil {
		fields = append(fields, zap.String("payment_token", env.PaymentToken.Address().Hex()))
	}
	log.Info("market deployed", fields...)
}
