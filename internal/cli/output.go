package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/forge/entity"
	"github.com/katalvlaran/forge/internal/flags/enum"
	"github.com/katalvlaran/forge/internal/render"
)

// FlagOutput selects the output format of entity-printing commands.
const FlagOutput = "output"

func addOutputFlag(cmd *cobra.Command) {
	enum.VarP(cmd.Flags(), FlagOutput, "o", render.Formats(), "output format (table or yaml)")
}

func printEntities(cmd *cobra.Command, entities ...entity.Entity) error {
	format, err := enum.Get(cmd.Flags(), FlagOutput)
	if err != nil {
		return err
	}
	s := sessionFrom(cmd)

	return render.Entities(cmd.OutOrStdout(), format, entities, render.Options{Color: s.color})
}
