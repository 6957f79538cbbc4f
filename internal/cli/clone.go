package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forge/entity"
	"github.com/katalvlaran/forge/internal/flags/enum"
	"github.com/katalvlaran/forge/internal/render"
)

// Clone command flag names.
const (
	FlagCount  = "count"
	FlagNaming = "naming"
)

func newCloneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clone <tag>",
		Short: "Clone a registered prototype",
		Long: `Clone the prototype registered under tag. With --count above 1 the clones are
renamed "<name>-<suffix>" using the --naming scheme.`,
		Example: `forge clone Orc --count 3 --naming excel`,
		Args:    cobra.ExactArgs(1),
		RunE:    runClone,
	}
	cmd.Flags().Int(FlagCount, 1, "number of clones")
	enum.Var(cmd.Flags(), FlagNaming, []string{
		entity.SchemeDecimal,
		entity.SchemeExcel,
		entity.SchemeHex,
		entity.SchemeAlphanumeric,
	}, "suffix scheme for multiple clones")
	addOutputFlag(cmd)

	return cmd
}

func runClone(cmd *cobra.Command, args []string) error {
	s := sessionFrom(cmd)
	tag := args[0]

	n, err := cmd.Flags().GetInt(FlagCount)
	if err != nil {
		return err
	}
	if n == 1 {
		e, err := s.registry.Create(tag)
		if err != nil {
			return fmt.Errorf("%w (known: %v)", err, s.registry.Tags())
		}
		return printEntities(cmd, e)
	}

	scheme, err := enum.Get(cmd.Flags(), FlagNaming)
	if err != nil {
		return err
	}
	naming, _ := entity.NamingScheme(scheme)
	clones, err := s.registry.Spawn(tag, n, naming)
	if err != nil {
		return err
	}
	s.logger.Info("prototypes cloned", slog.String("tag", tag), slog.Int("count", n), slog.String("naming", scheme))

	return printEntities(cmd, clones...)
}

func newCatalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List registered prototypes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := enum.Get(cmd.Flags(), FlagOutput)
			if err != nil {
				return err
			}
			s := sessionFrom(cmd)

			return render.Catalog(cmd.OutOrStdout(), format, s.registry, render.Options{Color: s.color})
		},
	}
	addOutputFlag(cmd)

	return cmd
}
