package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/QuangTung97/campaign-ledger/config"
	"github.com/QuangTung97/campaign-ledger/pkg/grpclib"
	"github.com/QuangTung97/campaign-ledger/pkg/otellib"
	"github.com/QuangTung97/campaign-ledger/pkg/pubsubclient"
	"github.com/QuangTung97/campaign-ledger/repository"
	"github.com/QuangTung97/campaign-ledger/service/ledger"
	"github.com/QuangTung97/campaign-ledger/service/relay"
	"github.com/QuangTung97/campaign-ledger/service/wallet"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/zap"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

const serviceName = "campaign-ledger"

func newLedger(conf config.Config, provider repository.Provider) ledger.ILedger {
	s := ledger.NewService(provider, ledger.NewRepositories(),
		ledger.WithConfig(conf.Ledger),
		ledger.WithMetrics(ledger.NewMetrics(prometheus.DefaultRegisterer)),
	)
	return ledger.NewILedgerWrapper(s, otel.GetTracerProvider().Tracer("ledger"), "ledger::")
}

func initTracing(conf config.Config) func() {
	tracerProvider, shutdown := otellib.InitOtel(serviceName, "local", conf.Jaeger)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return shutdown
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	shutdown := initTracing(conf)
	defer shutdown()

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(otel.GetTracerProvider()),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
			grpc_zap.PayloadUnaryServerInterceptor(logger, payloadLogDecider),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	ledgerServer := ledger.NewServer(
		newLedger(conf, provider),
		wallet.NewService(provider, repository.NewSubmission()),
		ledger.NewClock(),
	)
	ledger.RegisterLedgerServiceServer(grpcServer, ledgerServer)

	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	mux := ledger.NewGatewayMux()
	err := ledger.RegisterGateway(mux, ledgerServer)
	if err != nil {
		panic(err)
	}

	startHTTPAndGRPCServers(conf, grpcServer, mux, logger)
}

func startWorker() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)

	shutdown := initTracing(conf)
	defer shutdown()

	db := conf.MySQL.MustConnect()
	provider := repository.NewProvider(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var publisher relay.Publisher = relay.NewLogPublisher(logger)
	if conf.PubSub.Enabled {
		p, err := pubsubclient.New(ctx, conf.PubSub.ProjectID, conf.PubSub.TopicID)
		if err != nil {
			panic(err)
		}
		defer func() { _ = p.Close() }()
		publisher = p
	}

	sweeper := ledger.NewSweeper(newLedger(conf, provider), conf.Ledger.SweepInterval, logger)
	eventRelay := relay.New(
		provider, repository.NewEvent(), publisher,
		conf.Ledger.RelayBatchSize, conf.Ledger.RelayInterval, logger,
	)

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: httpMux,
	}

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		sweeper.Run(ctx)
		logger.Info("sweeper stopped")
	}()

	go func() {
		defer wg.Done()
		eventRelay.Run(ctx)
		logger.Info("relay stopped")
	}()

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	waitForSignal()
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	err := httpServer.Shutdown(shutdownCtx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		startWorkerCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
	}
}

func payloadLogDecider(_ context.Context, _ string, _ interface{}) bool {
	return true
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the gRPC and HTTP servers",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startWorkerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "run the expiry sweeper and the outbox relay",
		Run: func(cmd *cobra.Command, args []string) {
			startWorker()
		},
	}
}

func waitForSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, os.Kill)
	<-stop
}

func startHTTPAndGRPCServers(conf config.Config, grpcServer *grpc.Server, gateway *runtime.ServeMux, logger *zap.Logger) {
	logger.Info("listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", otellib.HTTPMiddleware(otel.GetTracerProvider(), logger, gateway))

	httpServer := &http.Server{
		Addr:    conf.Server.HTTP.ListenString(),
		Handler: httpMux,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		logger.Info("shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	waitForSignal()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
