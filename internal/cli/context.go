package cli

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forge/internal/config"
	"github.com/katalvlaran/forge/prototype"
)

type ctxKey string

const key ctxKey = "github.com/katalvlaran/forge/internal/cli"

// session holds what the root pre-run prepares for every subcommand.
type session struct {
	logger   *slog.Logger
	config   *config.Config
	registry *prototype.Registry
	color    bool
	profiler interface{ Stop() }
}

func withSession(ctx context.Context, s *session) context.Context {
	return context.WithValue(ctx, key, s)
}

// sessionFrom returns the command's session, or a default one when the
// command runs without the root pre-run.
func sessionFrom(cmd *cobra.Command) *session {
	if ctx := cmd.Context(); ctx != nil {
		if s, ok := ctx.Value(key).(*session); ok {
			return s
		}
	}
	cfg := config.Default()

	return &session{
		logger:   slog.New(slog.DiscardHandler),
		config:   cfg,
		registry: prototype.NewCharacterRegistry(),
	}
}
