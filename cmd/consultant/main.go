package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/micro"
	"github.com/rs/cors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/flarexio/consultant"
	"github.com/flarexio/consultant/knowledge"
	"github.com/flarexio/consultant/persistence/chromem"

	llmP "github.com/flarexio/consultant/llm/openai"
	mcpE "github.com/flarexio/consultant/mcp"
	httpT "github.com/flarexio/consultant/transport/http"
	natsT "github.com/flarexio/consultant/transport/nats"
)

func main() {
	cmd := &cli.Command{
		Name:  "consultant",
		Usage: "Marketing consultant QA service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "Path to the consultant configuration directory",
			},
			&cli.StringFlag{
				Name:  "http-addr",
				Usage: "HTTP server address",
				Value: ":8080",
			},
			&cli.StringFlag{
				Name:    "nats",
				Usage:   "NATS server URL (empty disables the NATS transport)",
				Sources: cli.EnvVars("NATS_URL"),
			},
			&cli.StringFlag{
				Name:    "nats-creds",
				Usage:   "NATS user credentials file",
				Sources: cli.EnvVars("NATS_CREDS"),
			},
		},
		Action: run,
	}

	err := cmd.Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err.Error())
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		path = filepath.Join(homeDir, ".flarex", "consultant")
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	var cfg consultant.Config

	f, err := os.Open(filepath.Join(path, "config.yaml"))
	switch {
	case err == nil:
		defer f.Close()

		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return err
		}

	case os.IsNotExist(err):
		// Defaults apply.

	default:
		return err
	}

	cfg.Vector.Path = filepath.Join(path, "vectors")
	if cfg.Vector.Collection == "" {
		cfg.Vector.Collection = "knowledge"
	}

	vectorDB, err := chromem.NewChromemVectorDB(cfg.Vector)
	if err != nil {
		return err
	}

	generator := llmP.NewGenerator(cfg.LLM)

	// Fail fast: no index, no service.
	svc, err := consultant.NewService(ctx, cfg, knowledge.Builtin(), vectorDB, generator)
	if err != nil {
		return err
	}
	defer svc.Close()

	svc = consultant.LoggingMiddleware(logger)(svc)

	endpoints := consultant.EndpointSet{
		Ask: consultant.AskEndpoint(svc),
	}

	// Add NATS Transport
	natsURL := cmd.String("nats")
	if natsURL != "" {
		opts := []nats.Option{
			nats.Name("Consultant Server"),
		}

		natsCreds := cmd.String("nats-creds")
		if natsCreds != "" {
			opts = append(opts, nats.UserCredentials(natsCreds))
		}

		nc, err := nats.Connect(natsURL, opts...)
		if err != nil {
			return err
		}
		defer nc.Drain()

		srv, err := micro.AddService(nc, micro.Config{
			Name:    "consultant",
			Version: "1.0.0",
		})

		if err != nil {
			return err
		}
		defer srv.Stop()

		root := srv.AddGroup("consultant")
		natsT.AddEndpoints(root, endpoints)
	}

	r := gin.Default()
	httpT.AddRouters(r, endpoints)

	mcpEndpoints := make(map[mcp.MCPMethod]mcpE.MCPEndpoint)
	mcpEndpoints[mcp.MethodInitialize] = mcpE.InitializeEndpoint(svc)
	mcpEndpoints[mcp.MethodPing] = mcpE.PingEndpoint(svc)
	mcpEndpoints[mcp.MethodToolsList] = mcpE.ListToolsEndpoint(svc)
	mcpEndpoints[mcp.MethodToolsCall] = mcpE.CallToolEndpoint(svc)
	httpT.AddStreamableRouters(r, mcpEndpoints)

	httpSrv := &http.Server{
		Addr:    cmd.String("http-addr"),
		Handler: cors.AllowAll().Handler(r),
	}

	go httpSrv.ListenAndServe()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sign := <-quit

	logger.Info("graceful shutdown", zap.String("signal", sign.String()))
	return httpSrv.Shutdown(ctx)
}
