package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/errors"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/actor"
)

var (
	actorFile    string
	repairDryRun bool
)

var actorCmd = &cobra.Command{
	Use:   "actor",
	Short: "Manage actors",
}

var actorCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an actor from a JSON sheet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := os.ReadFile(actorFile)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", actorFile)
		}
		var sheet entities.Actor
		if err := json.Unmarshal(data, &sheet); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid actor sheet")
		}

		return withApp(cmd, func(a *app) error {
			output, err := a.actor.CreateActor(cmd.Context(), &actor.CreateActorInput{User: gmUser, Actor: &sheet})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", output.Actor.Name, output.Actor.ID)
			return nil
		})
	},
}

var actorAssignCmd = &cobra.Command{
	Use:   "assign <user-id> <actor-id>",
	Short: "Assign a Discord user to an actor",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			output, err := a.actor.AssignActor(cmd.Context(), &actor.AssignActorInput{
				User:    gmUser,
				UserID:  args[0],
				ActorID: args[1],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now plays %s\n", args[0], output.Actor.Name)
			return nil
		})
	},
}

var actorRepairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Clamp out of range values on every stored actor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withApp(cmd, func(a *app) error {
			output, err := a.actor.RepairActors(cmd.Context(), &actor.RepairActorsInput{User: gmUser, DryRun: repairDryRun})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Checked %d actors, %d need repair\n", output.Checked, len(output.Repaired))
			for _, id := range output.Repaired {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", id)
			}
			return nil
		})
	},
}

func init() {
	actorCreateCmd.Flags().StringVar(&actorFile, "file", "", "actor sheet JSON")
	_ = actorCreateCmd.MarkFlagRequired("file")
	actorRepairCmd.Flags().BoolVar(&repairDryRun, "dry-run", false, "report without writing")

	actorCmd.AddCommand(actorCreateCmd, actorAssignCmd, actorRepairCmd)
}

// withApp runs fn against a connected app
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}
