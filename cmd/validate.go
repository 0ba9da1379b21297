package cmd

import (
	"fmt"

	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/logs"
	"github.com/arcanaland/frenchdeck/internal/validator"
	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the deck invariants",
	Long: `Validate builds a fresh deck and checks that it holds every rank and suit
exactly once, in natural order, and that the spades-high ranking gives every card
its own position.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		d := deck.New()

		results := validator.New(d).Validate()
		logs.Debug("validation finished with %d errors, %d warnings",
			len(results.Errors), len(results.Warnings))

		// Display validation results
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "✅ Deck of %d cards is valid.\n", d.Len())
		} else {
			fmt.Fprintf(out, "❌ Deck has %d validation errors:\n", len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
