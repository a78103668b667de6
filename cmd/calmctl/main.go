package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/chat"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/cli"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := zap.NewNop()
	if os.Getenv("CALMCTL_DEBUG") != "" {
		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		logger = l
	}
	defer logger.Sync()

	catalog, err := exercise.DefaultCatalog()
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	app := &cli.App{
		Assessments: service.NewAssessmentService(logger),
		Chat:        service.NewChatService(chat.Default(), logger),
		Catalog:     catalog,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
