package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokerole-bot/internal/entities"
	"github.com/KirkDiggler/pokerole-bot/internal/orchestrators/item"
)

var (
	itemName     string
	itemKind     string
	itemCategory string
	itemAccuracy string
	itemDamage   string
	itemPower    int
	itemRecoil   bool
	ruleOperator string

	ruleAttribute  string
	ruleValue      int
	updateOperator string
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage moves and gear",
}

var itemCreateCmd = &cobra.Command{
	Use:   "create <actor-id>",
	Short: "Give an actor a move or piece of gear",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			output, err := a.item.CreateItem(cmd.Context(), &item.CreateItemInput{
				User: gmUser,
				Item: &entities.Item{
					ActorID:         args[0],
					Name:            itemName,
					Kind:            entities.ItemKind(itemKind),
					Category:        entities.MoveCategory(itemCategory),
					Accuracy:        itemAccuracy,
					DamageAttribute: itemDamage,
					Power:           itemPower,
					Recoil:          itemRecoil,
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", output.Item.Name, output.Item.ID)
			return nil
		})
	},
}

var itemListCmd = &cobra.Command{
	Use:   "list <actor-id>",
	Short: "List an actor's items",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(a *app) error {
			output, err := a.item.ListItems(cmd.Context(), &item.ListItemsInput{ActorID: args[0]})
			if err != nil {
				return err
			}
			for _, it := range output.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d rules\n", it.ID, it.Kind, it.Name, len(it.Rules))
			}
			return nil
		})
	},
}

var itemAddRuleCmd = &cobra.Command{
	Use:   "add-rule <item-id> <attribute> <value>",
	Short: "Add a rule to an item",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value int
		if _, err := fmt.Sscan(args[2], &value); err != nil {
			return fmt.Errorf("value must be a number: %w", err)
		}

		return withApp(cmd, func(a *app) error {
			output, err := a.item.AddRule(cmd.Context(), &item.AddRuleInput{
				User:   gmUser,
				ItemID: args[0],
				Rule: entities.Rule{
					Attribute: args[1],
					Operator:  entities.RuleOperator(ruleOperator),
					Value:     value,
				},
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s has %d rules\n", output.Item.Name, len(output.Item.Rules))
			return nil
		})
	},
}

var itemRemoveRuleCmd = &cobra.Command{
	Use:   "remove-rule <item-id> <index>",
	Short: "Remove a rule from an item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var index int
		if _, err := fmt.Sscan(args[1], &index); err != nil {
			return fmt.Errorf("index must be a number: %w", err)
		}

		return withApp(cmd, func(a *app) error {
			output, err := a.item.RemoveRule(cmd.Context(), &item.RemoveRuleInput{
				User:   gmUser,
				ItemID: args[0],
				Index:  index,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s has %d rules\n", output.Item.Name, len(output.Item.Rules))
			return nil
		})
	},
}

var itemUpdateRuleCmd = &cobra.Command{
	Use:   "update-rule <item-id> <index>",
	Short: "Change the flagged fields of one of an item's rules",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var index int
		if _, err := fmt.Sscan(args[1], &index); err != nil {
			return fmt.Errorf("index must be a number: %w", err)
		}

		input := &item.UpdateRuleInput{User: gmUser, ItemID: args[0], Index: index}
		flags := cmd.Flags()
		if flags.Changed("attribute") {
			input.Attribute = &ruleAttribute
		}
		if flags.Changed("operator") {
			operator := entities.RuleOperator(updateOperator)
			input.Operator = &operator
		}
		if flags.Changed("value") {
			input.Value = &ruleValue
		}

		return withApp(cmd, func(a *app) error {
			output, err := a.item.UpdateRule(cmd.Context(), input)
			if err != nil {
				return err
			}
			rule := output.Item.Rules[index]
			fmt.Fprintf(cmd.OutOrStdout(), "%s rule %d: %s %s %d\n", output.Item.Name, index, rule.Attribute, rule.Operator, rule.Value)
			return nil
		})
	},
}

func init() {
	itemCreateCmd.Flags().StringVar(&itemName, "name", "", "item name")
	itemCreateCmd.Flags().StringVar(&itemKind, "kind", string(entities.ItemKindMove), "move or gear")
	itemCreateCmd.Flags().StringVar(&itemCategory, "category", "", "physical, special or support")
	itemCreateCmd.Flags().StringVar(&itemAccuracy, "accuracy", "", "accuracy pool, e.g. dexterity + brawl")
	itemCreateCmd.Flags().StringVar(&itemDamage, "damage", "", "damage attribute")
	itemCreateCmd.Flags().IntVar(&itemPower, "power", 0, "move power")
	itemCreateCmd.Flags().BoolVar(&itemRecoil, "recoil", false, "the move deals recoil")
	itemAddRuleCmd.Flags().StringVar(&ruleOperator, "operator", string(entities.RuleOperatorAdd), "add or replace")

	itemUpdateRuleCmd.Flags().StringVar(&ruleAttribute, "attribute", "", "attribute the rule changes")
	itemUpdateRuleCmd.Flags().StringVar(&updateOperator, "operator", "", "add or replace")
	itemUpdateRuleCmd.Flags().IntVar(&ruleValue, "value", 0, "rule value")

	itemCmd.AddCommand(itemCreateCmd, itemListCmd, itemAddRuleCmd, itemUpdateRuleCmd, itemRemoveRuleCmd)
}
