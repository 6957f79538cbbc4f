package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forge/entity"
	"github.com/katalvlaran/forge/family"
)

func newFamilyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "family <Good|Evil> <primary-name> [secondary-name]",
		Short: "Create characters through a factory family",
		Long: `Create a primary character (Warrior) and optionally a secondary one (Mage)
through the factory of the given family. Every character carries the family tag.`,
		Example: `forge family Good Aragorn Gandalf -o yaml`,
		Args:    cobra.RangeArgs(2, 3),
		RunE:    runFamily,
	}
	addOutputFlag(cmd)

	return cmd
}

func runFamily(cmd *cobra.Command, args []string) error {
	s := sessionFrom(cmd)
	f, err := family.ForFamily(args[0])
	if err != nil {
		return fmt.Errorf("%w (known: %v)", err, family.Families())
	}

	primary, err := f.CreatePrimary(args[1])
	if err != nil {
		return err
	}
	out := []entity.Entity{primary}
	if len(args) == 3 {
		secondary, err := f.CreateSecondary(args[2])
		if err != nil {
			return err
		}
		out = append(out, secondary)
	}
	s.logger.Debug("family products created", slog.String("family", f.Family()), slog.Int("count", len(out)))

	return printEntities(cmd, out...)
}

func newCarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "car <brand>",
		Short:   "Order a car through the brand selector",
		Example: `forge car BMW`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := family.NewCarSelector()
			car, err := s.Create(args[0])
			if err != nil {
				return fmt.Errorf("%w (known: %v)", err, s.Tags())
			}
			sessionFrom(cmd).logger.Debug("car ordered", slog.String("brand", car.Family()), slog.String("model", car.Name()))

			return printEntities(cmd, car)
		},
	}
	addOutputFlag(cmd)

	return cmd
}
