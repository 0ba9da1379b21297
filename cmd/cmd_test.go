package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/arcanaland/frenchdeck/internal/card"
	colorize "github.com/fatih/color"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	colorize.NoColor = true

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return buf.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}

func TestDeckLen(t *testing.T) {
	out, err := run(t, "deck", "len")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "52" {
		t.Errorf("deck len = %q, want 52", out)
	}
}

func TestDeckGet(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"0"}, []string{"Card(rank='2', suit='spades')"}},
		{[]string{"--", "-1"}, []string{"Card(rank='A', suit='hearts')"}},
		{[]string{":3"}, []string{
			"Card(rank='2', suit='spades')",
			"Card(rank='3', suit='spades')",
			"Card(rank='4', suit='spades')",
		}},
		{[]string{"12::13"}, []string{
			"Card(rank='A', suit='spades')",
			"Card(rank='A', suit='diamonds')",
			"Card(rank='A', suit='clubs')",
			"Card(rank='A', suit='hearts')",
		}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, append([]string{"deck", "get"}, tt.args...)...)
			if err != nil {
				t.Fatal(err)
			}
			got := lines(out)
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Errorf("deck get %v = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestDeckGetOutOfRange(t *testing.T) {
	_, err := run(t, "deck", "get", "52")
	if err == nil || !strings.Contains(err.Error(), "index out of range") {
		t.Errorf("deck get 52 error = %v, want index out of range", err)
	}
}

func TestDeckList(t *testing.T) {
	out, err := run(t, "deck", "ls", "--reverse=false", "--sort=natural")
	if err != nil {
		t.Fatal(err)
	}
	forward := lines(out)
	if len(forward) != 52 {
		t.Fatalf("deck ls printed %d lines, want 52", len(forward))
	}

	out, err = run(t, "deck", "ls", "--reverse=true", "--sort=natural")
	if err != nil {
		t.Fatal(err)
	}
	backward := lines(out)
	for i := range forward {
		if forward[i] != backward[len(backward)-1-i] {
			t.Fatalf("reverse listing differs at %d: %s vs %s", i, forward[i], backward[len(backward)-1-i])
		}
	}

	out, err = run(t, "deck", "ls", "--reverse=false", "--sort=spades-high")
	if err != nil {
		t.Fatal(err)
	}
	sorted := lines(out)
	if sorted[0] != "Card(rank='2', suit='clubs')" || sorted[51] != "Card(rank='A', suit='spades')" {
		t.Errorf("spades-high listing runs %s .. %s", sorted[0], sorted[51])
	}

	if _, err := run(t, "deck", "ls", "--reverse=false", "--sort=bogus"); err == nil {
		t.Error("expected error for unknown sort order")
	}
}

func TestDeckContains(t *testing.T) {
	tests := []struct {
		rank, suit string
		want       string
	}{
		{"Q", "hearts", "true"},
		{"q", "Hearts", "true"},
		{"1", "hearts", "false"},
		{"Q", "stars", "false"},
	}
	for _, tt := range tests {
		out, err := run(t, "deck", "contains", tt.rank, tt.suit)
		if err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("contains %s %s = %s, want %s", tt.rank, tt.suit, got, tt.want)
		}
	}
}

func TestDeckChoiceSeeded(t *testing.T) {
	dir := t.TempDir()
	colorize.NoColor = true

	choose := func() string {
		t.Setenv("XDG_CONFIG_HOME", dir)
		var buf bytes.Buffer
		RootCmd.SetOut(&buf)
		RootCmd.SetArgs([]string{"deck", "choice"})
		if err := RootCmd.Execute(); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}

	t.Setenv("XDG_CONFIG_HOME", dir)
	RootCmd.SetOut(&bytes.Buffer{})
	RootCmd.SetArgs([]string{"config", "set-seed", "7"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	first, second := choose(), choose()
	if first != second {
		t.Errorf("seeded choice differs: %q vs %q", first, second)
	}
	if !strings.HasPrefix(first, "Card(") {
		t.Errorf("choice output = %q", first)
	}
}

func TestDeckSample(t *testing.T) {
	out, err := run(t, "deck", "sample")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"== Aces ==", "in deck: true", "Card(rank='A', suit='clubs')"} {
		if !strings.Contains(out, want) {
			t.Errorf("sample output missing %q", want)
		}
	}
}

func TestVector(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"add", "2,4", "2,1"}, "Vector(4, 5)"},
		{[]string{"abs", "3,4"}, "5"},
		{[]string{"scale", "3,4", "3"}, "Vector(9, 12)"},
		{[]string{"bool", "0,0"}, "false"},
		{[]string{"bool", "1,0"}, "true"},
		{[]string{"add", "--", "-1,2", "1,-2"}, "Vector(0, 0)"},
	}
	for _, tt := range tests {
		out, err := run(t, append([]string{"vector"}, tt.args...)...)
		if err != nil {
			t.Fatalf("vector %v: %v", tt.args, err)
		}
		if got := strings.TrimSpace(out); got != tt.want {
			t.Errorf("vector %v = %q, want %q", tt.args, got, tt.want)
		}
	}

	if _, err := run(t, "vector", "abs", "3"); err == nil {
		t.Error("expected error for malformed vector")
	}
}

func TestVectorSample(t *testing.T) {
	out, err := run(t, "vector", "sample")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Vector(2, 4) + Vector(2, 1) = Vector(4, 5)",
		"abs(Vector(3, 4)) = 5",
		"Vector(3, 4) * 3 = Vector(9, 12)",
		"abs(Vector(3, 4) * 3) = 15",
		"bool(Vector(0, 0)) = false",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("sample output missing %q", want)
		}
	}
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Deck of 52 cards is valid") {
		t.Errorf("validate output = %q", out)
	}
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "A", "spades")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Ace of Spades", "♠", "Description:", "51 (spades high)"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}

	if _, err := run(t, "show", "Z", "spades"); err == nil {
		t.Error("expected error for unknown rank")
	}
}

func TestDescribeCard(t *testing.T) {
	got := describeCard(card.Card{Rank: "A", Suit: card.Spades}, 12, 52)
	for _, want := range []string{"card 13 of 52 in natural order", "card 52 of 52 when"} {
		if !strings.Contains(got, want) {
			t.Errorf("describeCard missing %q: %s", want, got)
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("the quick brown fox jumps over the lazy dog", 15)
	want := []string{"the quick brown", "fox jumps over", "the lazy dog"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}

func TestDrawCardFace(t *testing.T) {
	plain := drawCardFace(card.Card{Rank: "10", Suit: card.Hearts}, false)
	rows := strings.Split(plain, "\n")
	if len(rows) != 9 {
		t.Fatalf("card face has %d rows, want 9", len(rows))
	}
	for i, row := range rows {
		if w := visibleWidth(row); w != faceWidth+2 {
			t.Errorf("row %d width = %d, want %d: %q", i, w, faceWidth+2, row)
		}
	}
	if !strings.HasPrefix(rows[1], "│10") || !strings.HasSuffix(rows[7], "10│") {
		t.Errorf("rank corners wrong:\n%s", plain)
	}

	colored := drawCardFace(card.Card{Rank: "10", Suit: card.Hearts}, true)
	if stripAnsi(colored) != plain {
		t.Errorf("colored face differs from plain once escapes are removed")
	}
}

func TestConfigSetLogLevel(t *testing.T) {
	out, err := run(t, "config", "set-log-level", "warn")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Log level set to: warn") {
		t.Errorf("set-log-level output = %q", out)
	}

	if _, err := run(t, "config", "set-log-level", "loud"); err == nil || !strings.Contains(err.Error(), "unknown log level") {
		t.Errorf("set-log-level loud error = %v, want unknown log level", err)
	}
}

func TestExecute(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	colorize.NoColor = true

	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetErr(&buf)
	RootCmd.SetArgs([]string{"deck", "get", "1::9223372036854775807"})
	if err := Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "Card(rank='3', suit='spades')" {
		t.Errorf("Execute output = %q", got)
	}
}
