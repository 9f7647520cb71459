package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/makan/internal/ledger"
	"github.com/faizmokh/makan/internal/nutrition"
	"github.com/faizmokh/makan/internal/tracker"
)

type macroFlags struct {
	carbs, protein, fat, fiber float64
}

func (m *macroFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&m.carbs, "carbs", 0, "Carbohydrate grams")
	cmd.Flags().Float64Var(&m.protein, "protein", 0, "Protein grams")
	cmd.Flags().Float64Var(&m.fat, "fat", 0, "Fat grams")
	cmd.Flags().Float64Var(&m.fiber, "fiber", 0, "Fiber grams")
}

func (m *macroFlags) macros() nutrition.Macros {
	return nutrition.Macros{Carbs: m.carbs, Protein: m.protein, Fat: m.fat, Fiber: m.fiber}
}

// apply overrides only the macro fields whose flags were set.
func (m *macroFlags) apply(cmd *cobra.Command, base nutrition.Macros) nutrition.Macros {
	if cmd.Flags().Changed("carbs") {
		base.Carbs = m.carbs
	}
	if cmd.Flags().Changed("protein") {
		base.Protein = m.protein
	}
	if cmd.Flags().Changed("fat") {
		base.Fat = m.fat
	}
	if cmd.Flags().Changed("fiber") {
		base.Fiber = m.fiber
	}
	return base
}

func newEatCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		dateFlag string
		fromFlag string
		qtyFlag  float64
		unitFlag string
		macros   macroFlags
	)

	cmd := &cobra.Command{
		Use:   "eat [name ...]",
		Short: "Log a food entry, either manually or scaled from the library.",
		Long: "eat records a food entry on the target date. With --from the macros are scaled from a\n" +
			"library item (by id or name); otherwise the name and macro flags describe the entry.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			date, err := resolveDate(tr, dateFlag)
			if err != nil {
				return err
			}

			var entry ledger.FoodEntry
			if fromFlag != "" {
				entry, err = eatFromLibrary(ctx, cmd, tr, date, fromFlag, qtyFlag)
			} else {
				entry, err = eatManual(ctx, cmd, tr, date, args, qtyFlag, unitFlag, macros)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s\n", formatEntry(entry))
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().StringVar(&fromFlag, "from", "", "Library item id or name to scale from")
	cmd.Flags().Float64Var(&qtyFlag, "qty", 0, "Quantity in grams or units (default: 100 g, or 1 unit for per-unit items)")
	cmd.Flags().StringVar(&unitFlag, "unit", "g", "Quantity unit for manual entries: g|unit")
	macros.register(cmd)

	return cmd
}

func eatFromLibrary(ctx context.Context, cmd *cobra.Command, tr *tracker.Tracker, date ledger.Date, ref string, qty float64) (ledger.FoodEntry, error) {
	var qtyPtr *float64
	if cmd.Flags().Changed("qty") {
		qtyPtr = &qty
	}
	return tr.LogFromLibrary(ctx, date, ref, qtyPtr)
}

func eatManual(ctx context.Context, cmd *cobra.Command, tr *tracker.Tracker, date ledger.Date, args []string, qty float64, unitFlag string, macros macroFlags) (ledger.FoodEntry, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return ledger.FoodEntry{}, fmt.Errorf("name is required (or use --from)")
	}
	unit, err := nutrition.ParseUnit(unitFlag)
	if err != nil {
		return ledger.FoodEntry{}, err
	}

	portion := nutrition.Blank().WithUnit(unit).WithMacros(macros.macros())
	portion.Name = name
	if cmd.Flags().Changed("qty") {
		portion = portion.WithQuantity(qty)
	} else if unit == nutrition.UnitCount {
		portion = portion.WithQuantity(1)
	}
	return tr.LogFood(ctx, date, portion)
}

func newRemoveCommand(ctx context.Context, a *app) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "remove <entry id>",
		Short: "Delete a food entry by id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			date, err := resolveDate(tr, dateFlag)
			if err != nil {
				return err
			}
			removed, err := tr.RemoveFood(ctx, date, args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no food entry %s on %s", args[0], date)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed entry %s\n", args[0])
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)

	return cmd
}

func newWeightCommand(ctx context.Context, a *app) *cobra.Command {
	var (
		dateFlag  string
		clearFlag bool
	)

	cmd := &cobra.Command{
		Use:   "weight <lbs>",
		Short: "Record body weight in pounds for the day.",
		Args: func(cmd *cobra.Command, args []string) error {
			if clearFlag {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closeFn, err := a.open(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			date, err := resolveDate(tr, dateFlag)
			if err != nil {
				return err
			}
			if clearFlag {
				if err := tr.ClearWeight(ctx, date); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Cleared weight for %s\n", date)
				return nil
			}

			lbs, err := parseFloatArg("weight", args[0])
			if err != nil {
				return err
			}
			sample, err := tr.LogWeight(ctx, date, lbs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged weight %.1f lbs for %s\n", sample.Lbs, sample.Date)
			return nil
		},
	}

	addDateFlag(cmd, &dateFlag)
	cmd.Flags().BoolVar(&clearFlag, "clear", false, "Remove the weight recorded for the day")

	return cmd
}
