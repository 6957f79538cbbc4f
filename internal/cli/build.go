package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/forge/builder"
)

// Build command flag names.
const (
	FlagFamily     = "family"
	FlagAccessoryA = "accessory-a"
	FlagAccessoryB = "accessory-b"
	FlagTrait      = "trait"
)

func newBuildCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <name> <category>",
		Short: "Assemble an entity step by step",
		Long: `Start a builder with the mandatory name and category, apply every optional
field given by flags in order, and finalize it once.`,
		Example: `forge build Arthur Warrior --family Good --accessory-a Sword --trait hp=50`,
		Args:    cobra.ExactArgs(2),
		RunE:    runBuild,
	}
	cmd.Flags().String(FlagFamily, "", "family tag")
	cmd.Flags().String(FlagAccessoryA, "", "first accessory")
	cmd.Flags().String(FlagAccessoryB, "", "second accessory")
	cmd.Flags().StringArray(FlagTrait, nil, "trait as key=value, repeatable")
	addOutputFlag(cmd)

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	b := builder.New(args[0], args[1])

	for _, field := range []struct {
		flag string
		set  func(string) *builder.Builder
	}{
		{FlagFamily, b.SetFamily},
		{FlagAccessoryA, b.SetAccessoryA},
		{FlagAccessoryB, b.SetAccessoryB},
	} {
		if !flags.Changed(field.flag) {
			continue
		}
		v, err := flags.GetString(field.flag)
		if err != nil {
			return err
		}
		field.set(v)
	}

	traits, err := flags.GetStringArray(FlagTrait)
	if err != nil {
		return err
	}
	for _, kv := range traits {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --%s %q: want key=value", FlagTrait, kv)
		}
		b.SetTrait(k, v)
	}

	e, err := b.Build()
	if err != nil {
		return err
	}
	sessionFrom(cmd).logger.Debug("entity built", slog.String("name", e.Name()), slog.Int("traits", e.TraitCount()))

	return printEntities(cmd, e)
}
