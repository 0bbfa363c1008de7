package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/goodnatureofminers/pqledger/internal/ledger/broadcast"
	"github.com/goodnatureofminers/pqledger/internal/ledger/mempool"
	"github.com/goodnatureofminers/pqledger/internal/ledger/model"
	"github.com/goodnatureofminers/pqledger/internal/ledger/repository/clickhouse"
	"github.com/goodnatureofminers/pqledger/internal/ledger/service/coordinator"
	"github.com/goodnatureofminers/pqledger/internal/ledger/service/miner"
	"github.com/goodnatureofminers/pqledger/internal/ledger/validation"
	"github.com/goodnatureofminers/pqledger/internal/metrics"
	"github.com/goodnatureofminers/pqledger/internal/transport"
	"github.com/goodnatureofminers/pqledger/internal/wallet"
	"github.com/goodnatureofminers/pqledger/internal/wallet/keystore/badger"
)

type config struct {
	EnvFile             string        `long:"env-file" env:"PQLEDGER_ENV_FILE" description:"optional .env file loaded before the other options"`
	ClickhouseDSN       string        `long:"clickhouse-dsn" env:"PQLEDGER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	KeystoreDir         string        `long:"keystore-dir" env:"PQLEDGER_KEYSTORE_DIR" description:"keystore directory" default:"data/keystore"`
	HTTPAddr            string        `long:"http-addr" env:"PQLEDGER_HTTP_ADDR" description:"control API address" default:":8080"`
	GRPCAddr            string        `long:"grpc-addr" env:"PQLEDGER_GRPC_ADDR" description:"gRPC health address" default:":8081"`
	MetricsAddr         string        `long:"metrics-addr" env:"PQLEDGER_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	PulseInterval       time.Duration `long:"pulse-interval" env:"PQLEDGER_PULSE_INTERVAL" description:"mining pulse interval" default:"10s"`
	Difficulty          int           `long:"difficulty" env:"PQLEDGER_DIFFICULTY" description:"leading zero hex characters required in a block hash" default:"4"`
	Reward              string        `long:"reward" env:"PQLEDGER_REWARD" description:"block reward" default:"50"`
	GossipQuorum        int           `long:"gossip-quorum" env:"PQLEDGER_GOSSIP_QUORUM" description:"votes needed to promote or fail a transaction" default:"1"`
	MinFee              string        `long:"min-fee" env:"PQLEDGER_MIN_FEE" description:"minimum transfer fee" default:"0.00000001"`
	MaxFee              string        `long:"max-fee" env:"PQLEDGER_MAX_FEE" description:"maximum transfer fee" default:"999999999.99999999"`
	ReservationTTL      time.Duration `long:"reservation-ttl" env:"PQLEDGER_RESERVATION_TTL" description:"how long an in-flight transaction holds its inputs, 0 for ever" default:"10m"`
	KnownTxCapacity     int           `long:"known-tx-capacity" env:"PQLEDGER_KNOWN_TX_CAPACITY" description:"in-flight transactions remembered" default:"10000"`
	GossipFlushSize     int           `long:"gossip-flush-size" env:"PQLEDGER_GOSSIP_FLUSH_SIZE" description:"transaction messages per gossip batch" default:"100"`
	GossipFlushInterval time.Duration `long:"gossip-flush-interval" env:"PQLEDGER_GOSSIP_FLUSH_INTERVAL" description:"max delay before a gossip batch is sent" default:"1s"`
	GossipRPS           int           `long:"gossip-rps" env:"PQLEDGER_GOSSIP_RPS" description:"gossip batches per second, 0 for unlimited" default:"0"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("node failed", zap.Error(err))
	}
}

// loadEnvFile applies --env-file before the real parse so the file can satisfy required options.
func loadEnvFile(args []string) error {
	var pre struct {
		EnvFile string `long:"env-file" env:"PQLEDGER_ENV_FILE"`
	}
	if _, err := flags.NewParser(&pre, flags.IgnoreUnknown).ParseArgs(args); err != nil {
		return err
	}
	if pre.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(pre.EnvFile); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	reward, err := model.NewCoin(cfg.Reward)
	if err != nil {
		return fmt.Errorf("reward: %w", err)
	}
	minFee, err := model.NewCoin(cfg.MinFee)
	if err != nil {
		return fmt.Errorf("min fee: %w", err)
	}
	maxFee, err := model.NewCoin(cfg.MaxFee)
	if err != nil {
		return fmt.Errorf("max fee: %w", err)
	}

	policy, err := miner.NewFixedPolicy(cfg.Difficulty, reward)
	if err != nil {
		return err
	}

	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	keys, err := badger.New(badger.Config{Dir: cfg.KeystoreDir}, logger)
	if err != nil {
		return fmt.Errorf("init keystore: %w", err)
	}
	defer func() {
		if err := keys.Close(); err != nil {
			logger.Error("close keystore", zap.Error(err))
		}
	}()

	pool := mempool.NewPool()
	reservations := mempool.NewReservations(cfg.ReservationTTL)

	validator, err := validation.New(repo, reservations, validation.Config{MinimumFee: minFee, MaximumFee: maxFee})
	if err != nil {
		return fmt.Errorf("init validator: %w", err)
	}

	local, err := broadcast.NewLocal(repo, metrics.NewBroadcaster(), broadcast.GossipConfig{
		FlushSize:     cfg.GossipFlushSize,
		FlushInterval: cfg.GossipFlushInterval,
		RPS:           cfg.GossipRPS,
	}, logger)
	if err != nil {
		return fmt.Errorf("init broadcaster: %w", err)
	}

	coord, err := coordinator.New(validator, local, pool, reservations, metrics.NewCoordinator(), coordinator.Config{
		Quorum:        cfg.GossipQuorum,
		KnownCapacity: cfg.KnownTxCapacity,
	}, logger)
	if err != nil {
		return fmt.Errorf("init coordinator: %w", err)
	}
	local.SetForgetter(coord)

	scheduler, err := miner.New(
		repo,
		pool,
		reservations,
		validator,
		local,
		policy,
		metrics.NewMiner(),
		miner.Config{PulseInterval: cfg.PulseInterval},
		logger,
	)
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}

	wlt, err := wallet.New(keys, repo, reservations, logger)
	if err != nil {
		return fmt.Errorf("init wallet: %w", err)
	}

	handler, err := transport.NewLedgerHandler(scheduler, coord, wlt, repo, logger)
	if err != nil {
		return fmt.Errorf("init handler: %w", err)
	}
	gw := gwruntime.NewServeMux()
	if err := handler.Register(gw); err != nil {
		return err
	}

	grpcZap.ReplaceGrpcLoggerV2(logger)
	grpcServer, healthServer := transport.NewHealthServer(logger)
	socket, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}
	go func() {
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("grpc server failed", zap.Error(serveErr))
		}
	}()

	local.Start(ctx)
	go scheduler.Run(ctx)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           cors.Default().Handler(gw),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		healthServer.Shutdown()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
		grpcServer.GracefulStop()
	}()

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	logger.Info("starting HTTP server", zap.String("addr", cfg.HTTPAddr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen and serve: %w", err)
	}

	scheduler.Wait()
	local.Stop()
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
