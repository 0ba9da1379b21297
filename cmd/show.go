package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/logs"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Inner width of the card face, between the borders
const faceWidth = 9

var showCmd = &cobra.Command{
	Use:   "show [rank] [suit]",
	Short: "Display a card with terminal art",
	Long: `Show draws a card face and prints where the card sits in the deck.

Examples:
  frenchdeck show A spades
  frenchdeck show 10 hearts
  frenchdeck show q diamonds`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := card.ParseRank(args[0])
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}
		suit, err := card.ParseSuit(args[1])
		if err != nil {
			return fmt.Errorf("error getting card: %v", err)
		}
		c := card.Card{Rank: rank, Suit: suit}

		d := deck.New()
		position := -1
		for i, dc := range d.Cards() {
			if dc == c {
				position = i
				break
			}
		}
		logs.Debug("%s is at position %d", c.Name(), position)

		art := drawCardFace(c, cfg.Color && !colorize.NoColor)
		displayCard(cmd.OutOrStdout(), c, art, position, d.Len())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)
}

// getSuitSymbol returns the pip printed on the card face
func getSuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Spades:
		return "♠"
	case card.Diamonds:
		return "♦"
	case card.Clubs:
		return "♣"
	case card.Hearts:
		return "♥"
	default:
		return "•"
	}
}

// suitPalette returns the ink and paper colors for a suit
func suitPalette(suit card.Suit) (ink, paper colorful.Color) {
	paper, _ = colorful.Hex("#fdf6e3")
	if suit.IsRed() {
		ink, _ = colorful.Hex("#c0392b")
	} else {
		ink, _ = colorful.Hex("#2c3e50")
	}
	return ink, paper
}

// drawCardFace draws the card as box-drawing text. With color enabled the
// paper is shaded toward the ink near the edges.
func drawCardFace(c card.Card, useColor bool) string {
	pip := getSuitSymbol(c.Suit)
	rank := string(c.Rank)

	rows := []string{
		padRight(rank, faceWidth),
		padRight(pip, faceWidth),
		"",
		padCenter(pip, faceWidth),
		"",
		padLeft(pip, faceWidth),
		padLeft(rank, faceWidth),
	}

	ink, paper := suitPalette(c.Suit)
	border := paper.BlendLab(ink, 0.6)

	var buffer strings.Builder
	line := func(text string, fg, bg colorful.Color) {
		if useColor {
			buffer.WriteString(ansiColorString(text, fg, bg))
		} else {
			buffer.WriteString(text)
		}
		buffer.WriteString("\n")
	}

	line("┌"+strings.Repeat("─", faceWidth)+"┐", border, paper)
	center := len(rows) / 2
	for i, row := range rows {
		// Distance from the middle row, 0 at the center
		dist := float64(abs(i-center)) / float64(center)
		bg := paper.BlendLab(ink, 0.08*dist)
		line("│"+padRight(row, faceWidth)+"│", ink, bg)
	}
	line("└"+strings.Repeat("─", faceWidth)+"┘", border, paper)

	return strings.TrimSuffix(buffer.String(), "\n")
}

// ansiColorString wraps text in 24-bit foreground and background escapes
func ansiColorString(text string, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.Clamped().RGB255()
	r2, g2, b2 := bg.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s\x1b[0m",
		r1, g1, b1, r2, g2, b2, text)
}

func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}

func padCenter(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return padRight(strings.Repeat(" ", left)+s, width)
}

// wrapText wraps text to a specified width
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		if len(currentLine) == 0 {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= width {
			currentLine += " " + word
		} else {
			result = append(result, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// describeCard writes the prose shown under the card details
func describeCard(c card.Card, position, total int) string {
	key := deck.SpadesHigh(c)
	return fmt.Sprintf("The %s is card %d of %d in natural order (suits %s, ranks low to high) "+
		"and card %d of %d when the deck is sorted spades high.",
		c.Name(), position+1, total, joinSuits(), key+1, total)
}

func joinSuits() string {
	names := make([]string, len(card.Suits))
	for i, s := range card.Suits {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// terminalWidth returns the stdout width, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// displayCard prints the card art on the left and its details on the right
func displayCard(out io.Writer, c card.Card, art string, position, total int) {
	artLines := strings.Split(art, "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if w := visibleWidth(line); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	var infoLines []string
	infoLines = append(infoLines, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", c.Name()))
	infoLines = append(infoLines, colorize.CyanString("Repr: ")+colorize.HiWhiteString("%s", c))
	infoLines = append(infoLines, colorize.CyanString("Rank: ")+
		colorize.HiWhiteString("%s · %d of %d", c.Rank, card.RankIndex(c.Rank)+1, len(card.Ranks)))
	infoLines = append(infoLines, colorize.CyanString("Suit: ")+
		colorize.HiWhiteString("%s · %s", c.Suit, getSuitSymbol(c.Suit)))
	infoLines = append(infoLines, colorize.CyanString("Key:  ")+
		colorize.HiWhiteString("%d (spades high)", deck.SpadesHigh(c)))

	// Art on the left, info on the right
	spacing := 4
	infoStartCol := maxArtWidth + spacing

	infoWidth := terminalWidth() - infoStartCol - 2
	if infoWidth < 20 {
		infoWidth = 20
	}

	infoLines = append(infoLines, "")
	infoLines = append(infoLines, colorize.CyanString("Description:"))
	infoLines = append(infoLines, wrapText(describeCard(c, position, total), infoWidth)...)

	fmt.Fprintln(out)

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(out, "  ")
		if i < len(artLines) {
			fmt.Fprint(out, artLines[i])
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol-visibleWidth(artLines[i])))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol))
		}

		if i < len(infoLines) {
			fmt.Fprint(out, infoLines[i])
		}

		fmt.Fprintln(out)
	}

	fmt.Fprintln(out)
}

// visibleWidth counts the runes of s outside ANSI escape sequences
func visibleWidth(s string) int {
	return utf8.RuneCountInString(stripAnsi(s))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
