package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-bot/internal/engine"
	"github.com/KirkDiggler/pokerole-bot/internal/engine/pool"
	"github.com/KirkDiggler/pokerole-bot/internal/entities"
)

var (
	rollAttrs map[string]int
	rollPain  int
)

var rollCmd = &cobra.Command{
	Use:   "roll <expression>",
	Short: "Roll a success check offline",
	Long: `Roll a dice pool expression against values given on the command line, e.g.

  pokerole-bot roll dexterity + alert --attr dexterity=3 --attr alert=2`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().StringToIntVar(&rollAttrs, "attr", nil, "attribute or skill value, name=value")
	rollCmd.Flags().IntVar(&rollPain, "pain", 0, "pain penalty to apply")
}

func runRoll(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	adapter, err := newEngine(cfg)
	if err != nil {
		return err
	}

	values := make(pool.MapLookup, len(rollAttrs))
	for name, value := range rollAttrs {
		values[strings.ToLower(name)] = value
	}

	output, err := adapter.ResolvePool(cmd.Context(), &engine.ResolvePoolInput{
		Expression: strings.Join(args, " "),
		Lookup:     values,
		Penalties:  &entities.PenaltyContext{PainPenalty: rollPain},
	})
	if err != nil {
		return err
	}

	result := output.Result
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d dice %v -> %d successes\n",
		result.Expression, result.DiceRolled, result.RawFaces, result.Successes)
	return nil
}
