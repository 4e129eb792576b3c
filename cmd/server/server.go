package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/handlers/discord"
)

const (
	serviceName     = "pokerole.bot"
	shutdownTimeout = 30 * time.Second
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the Discord bot",
	Long:  `Connect to the Discord gateway and serve the gRPC health endpoint until interrupted.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC health port (overrides GRPC_PORT)")
}

func runServer(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.ValidateDiscord(); err != nil {
		return errors.Wrap(err, "invalid discord settings")
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	handler, err := discord.NewHandler(&discord.HandlerConfig{
		Chat:     a.chat,
		GMRoleID: cfg.Discord.GMRoleID,
	})
	if err != nil {
		return err
	}

	session, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return errors.Wrap(err, "failed to create discord session")
	}
	handler.Bind(ctx, session)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return errors.Wrap(err, "failed to listen")
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
			errors.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	reflection.Register(srv)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("gRPC health server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return errors.Wrap(err, "failed to serve")
		}
		return nil
	})

	g.Go(func() error {
		if err := session.Open(); err != nil {
			return errors.Wrap(err, "failed to open discord session")
		}
		if err := handler.RegisterCommands(session, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
			return err
		}

		healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
		healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)
		slog.Info("Bot is running", "guild_id", cfg.Discord.GuildID)
		return nil
	})

	g.Go(func() error {
		// Stop when interrupted or when either side failed
		<-ctx.Done()
		slog.Info("Shutting down")

		healthServer.Shutdown()
		if err := session.Close(); err != nil {
			slog.Warn("Failed to close discord session", "error", err.Error())
		}
		gracefulStop(srv)
		return nil
	})

	return g.Wait()
}

func gracefulStop(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-time.After(shutdownTimeout):
		slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
		srv.Stop()
	case <-stopped:
		slog.Info("Server stopped gracefully")
	}
}

// logFunc bridges the gRPC logging interceptor onto slog. The interceptor
// levels share slog's values.
func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
