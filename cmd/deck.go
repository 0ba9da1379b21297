package cmd

import (
	"fmt"
	"io"
	"iter"
	"slices"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/logs"
	"github.com/arcanaland/frenchdeck/internal/seq"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect the French deck",
	Long:  `Commands for indexing, slicing, searching and sorting a freshly built 52-card deck.`,
}

// deckLenCmd represents the deck len command
var deckLenCmd = &cobra.Command{
	Use:   "len",
	Short: "Print the number of cards in the deck",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), deck.New().Len())
	},
}

// deckGetCmd represents the deck get command
var deckGetCmd = &cobra.Command{
	Use:   "get [position]",
	Short: "Print the card at an index or the cards in a slice",
	Long: `Get looks up cards by position. Positions are 0-based and negative
positions count from the end. Slices use start:stop:step.

Examples:
  frenchdeck deck get 0
  frenchdeck deck get -- -1
  frenchdeck deck get :3
  frenchdeck deck get 12::13`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pos, err := seq.ParsePosition(args[0])
		if err != nil {
			return err
		}

		d := deck.New()
		out := cmd.OutOrStdout()

		if pos.Slice == nil {
			c, err := d.Get(pos.Index)
			if err != nil {
				return fmt.Errorf("error getting card: %v", err)
			}
			printCard(out, c)
			return nil
		}

		cards, err := d.Slice(*pos.Slice)
		if err != nil {
			return fmt.Errorf("error slicing deck: %v", err)
		}
		logs.Debug("slice %s selected %d cards", pos, len(cards))
		for _, c := range cards {
			printCard(out, c)
		}
		return nil
	},
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List every card in the deck",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reverse, _ := cmd.Flags().GetBool("reverse")
		order, _ := cmd.Flags().GetString("sort")

		d := deck.New()
		var cards iter.Seq[card.Card]

		switch order {
		case "", "natural":
			if reverse {
				cards = seq.Backward[card.Card](d)
			} else {
				cards = seq.All[card.Card](d)
			}
		case "spades-high":
			sorted := deck.SortedSpadesHigh(d)
			if reverse {
				slices.Reverse(sorted)
			}
			cards = slices.Values(sorted)
		default:
			return fmt.Errorf("unknown sort order: %s (supported: natural, spades-high)", order)
		}

		out := cmd.OutOrStdout()
		for c := range cards {
			printCard(out, c)
		}
		return nil
	},
}

// deckChoiceCmd represents the deck choice command
var deckChoiceCmd = &cobra.Command{
	Use:   "choice",
	Short: "Print a random card",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := seq.Choice[card.Card](deck.New(), newRand())
		if err != nil {
			return err
		}
		printCard(cmd.OutOrStdout(), c)
		return nil
	},
}

// deckContainsCmd represents the deck contains command
var deckContainsCmd = &cobra.Command{
	Use:   "contains [rank] [suit]",
	Short: "Report whether a card is in the deck",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		c := lookupCard(args[0], args[1])
		fmt.Fprintln(cmd.OutOrStdout(), seq.Contains[card.Card](deck.New(), c))
	},
}

// deckSampleCmd represents the deck sample command
var deckSampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Walk through the sequence operations the deck supports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		d := deck.New()

		section(out, "Length")
		fmt.Fprintln(out, d.Len())

		section(out, "Random card")
		c, err := seq.Choice[card.Card](d, newRand())
		if err != nil {
			return err
		}
		printCard(out, c)

		section(out, "Top three")
		top, err := d.Slice(seq.Slice{Stop: seq.Int(3)})
		if err != nil {
			return err
		}
		for _, c := range top {
			printCard(out, c)
		}

		section(out, "Aces")
		n := len(card.Ranks)
		aces, err := d.Slice(seq.Slice{Start: seq.Int(n - 1), Step: seq.Int(n)})
		if err != nil {
			return err
		}
		for _, c := range aces {
			printCard(out, c)
		}

		section(out, "Membership")
		queen := card.Card{Rank: "Q", Suit: card.Hearts}
		fmt.Fprintf(out, "%v in deck: %v\n", queen, seq.Contains[card.Card](d, queen))

		section(out, "Spades high")
		for _, c := range deck.SortedSpadesHigh(d) {
			printCard(out, c)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckLenCmd)
	deckCmd.AddCommand(deckGetCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckChoiceCmd)
	deckCmd.AddCommand(deckContainsCmd)
	deckCmd.AddCommand(deckSampleCmd)

	deckListCmd.Flags().BoolP("reverse", "r", false, "List cards from last to first")
	deckListCmd.Flags().StringP("sort", "s", "natural", "Sort order: natural or spades-high")
}

// lookupCard builds a card from user text. Text that is not a known rank or
// suit is kept as-is, so the card simply won't be found in the deck.
func lookupCard(rankText, suitText string) card.Card {
	c := card.Card{Rank: card.Rank(rankText), Suit: card.Suit(suitText)}
	if r, err := card.ParseRank(rankText); err == nil {
		c.Rank = r
	} else {
		logs.Debug("%v", err)
	}
	if s, err := card.ParseSuit(suitText); err == nil {
		c.Suit = s
	} else {
		logs.Debug("%v", err)
	}
	return c
}

// printCard prints a card repr, red suits in red
func printCard(w io.Writer, c card.Card) {
	if c.Suit.IsRed() {
		fmt.Fprintln(w, colorize.RedString("%s", c))
		return
	}
	fmt.Fprintln(w, c.String())
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, colorize.CyanString("== %s ==", title))
}
