package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/forge/singleton"
)

// Guard command flag names.
const (
	FlagContenders = "contenders"
	FlagLazy       = "lazy"
)

func newGuardCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guard [dsn]",
		Short: "Race constructions against a single-instance guard",
		Long: `Start --contenders goroutines that all try to construct the same connection
guard at once, then report which one won. Exactly one construction succeeds and
every other contender is rejected as already initialized.

With --lazy the contenders instead call Get on a lazily built connection and the
command reports how many distinct instances they received.

The dsn defaults to guard.dsn of the configuration.`,
		Example: `forge guard conn1 --contenders 16`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runGuard,
	}
	cmd.Flags().Int(FlagContenders, 8, "number of concurrent contenders")
	cmd.Flags().Bool(FlagLazy, false, "race Get on a lazy instance instead of Construct")

	return cmd
}

func runGuard(cmd *cobra.Command, args []string) error {
	s := sessionFrom(cmd)
	dsn := s.config.Guard.DSN
	if len(args) == 1 {
		dsn = args[0]
	}
	n, err := cmd.Flags().GetInt(FlagContenders)
	if err != nil {
		return err
	}
	if n < 1 {
		return fmt.Errorf("--%s must be at least 1, got %d", FlagContenders, n)
	}
	lazy, err := cmd.Flags().GetBool(FlagLazy)
	if err != nil {
		return err
	}
	if lazy {
		return raceLazy(cmd, s, dsn, n)
	}

	return raceConstruct(cmd, s, dsn, n)
}

func raceConstruct(cmd *cobra.Command, s *session, dsn string, n int) error {
	g := singleton.NewConnectionGuard(singleton.WithLogger(s.logger))

	var (
		mu       sync.Mutex
		winner   = -1
		rejected int
	)
	var eg errgroup.Group
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			_, err := g.Construct(dsn)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				winner = i
			case errors.Is(err, singleton.ErrAlreadyInitialized):
				rejected++
			default:
				return err
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	conn, err := g.Instance()
	if err != nil {
		return err
	}
	s.logger.Info("guard race finished", slog.Int("winner", winner), slog.Int("rejected", rejected))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dsn: %s\n", conn.DSN)
	fmt.Fprintf(out, "contenders: %d\n", n)
	fmt.Fprintf(out, "winner: %d\n", winner)
	fmt.Fprintf(out, "rejected: %d\n", rejected)

	return nil
}

func raceLazy(cmd *cobra.Command, s *session, dsn string, n int) error {
	l := singleton.NewLazy(func() (*singleton.Connection, error) {
		return singleton.NewConnectionGuard().Construct(dsn)
	}, singleton.WithName("connection"), singleton.WithLogger(s.logger))

	seen := make([]*singleton.Connection, n)
	var eg errgroup.Group
	for i := 0; i < n; i++ {
		eg.Go(func() error {
			conn, err := l.Get()
			seen[i] = conn
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	distinct := make(map[*singleton.Connection]struct{}, 1)
	for _, conn := range seen {
		distinct[conn] = struct{}{}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "dsn: %s\n", seen[0].DSN)
	fmt.Fprintf(out, "contenders: %d\n", n)
	fmt.Fprintf(out, "instances: %d\n", len(distinct))

	return nil
}
