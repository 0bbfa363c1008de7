package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/pqledger/internal/crypto"
	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/internal/wallet/keystore/badger"
)

type config struct {
	EnvFile     string `long:"env-file" env:"KEYGEN_ENV_FILE" description:"optional .env file loaded before the other options"`
	KeystoreDir string `long:"keystore-dir" env:"PQLEDGER_KEYSTORE_DIR" description:"keystore directory" default:"data/keystore"`
	Alias       string `long:"alias" env:"KEYGEN_ALIAS" description:"name to store the key under" required:"true"`
	Password    string `long:"password" env:"KEYGEN_PASSWORD" description:"password protecting the private key" required:"true"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := loadEnvFile(os.Args); err != nil {
		logger.Fatal("failed to load env file", zap.Error(err))
	}

	cfg := config{}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	address, err := run(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("keygen failed", zap.Error(err))
	}
	fmt.Println(address)
}

func loadEnvFile(args []string) error {
	var pre struct {
		EnvFile string `long:"env-file" env:"KEYGEN_ENV_FILE"`
	}
	if _, err := flags.NewParser(&pre, flags.IgnoreUnknown).ParseArgs(args); err != nil {
		return err
	}
	if pre.EnvFile == "" {
		return nil
	}
	return godotenv.Load(pre.EnvFile)
}

func run(ctx context.Context, cfg config, logger *zap.Logger) (model.Address, error) {
	store, err := badger.New(badger.Config{Dir: cfg.KeystoreDir}, logger)
	if err != nil {
		return "", fmt.Errorf("open keystore: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("close keystore", zap.Error(err))
		}
	}()

	keyPair, err := crypto.GenerateKeyPair()
	if err != nil {
		return "", err
	}
	if err := store.WritePrivateKey(ctx, keyPair, cfg.Alias, []byte(cfg.Password)); err != nil {
		return "", err
	}

	address := model.AddressFromPublicKey(keyPair.PublicKey)
	logger.Info("key pair generated", zap.String("alias", cfg.Alias), zap.String("address", address.String()))
	return address, nil
}
