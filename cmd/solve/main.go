// Command solve answers a seven-letter puzzle from the terminal using local
// word-list files or the remote english list.
package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"buzzkill/internal/corpus"
	"buzzkill/internal/solver"
)

func main() {
	if err := newCLIApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "solve:", err)
		os.Exit(1)
	}
}

// newCLIApp creates the CLI application.
func newCLIApp() *cli.App {
	return &cli.App{
		Name:  "solve",
		Usage: "Solve a seven-letter word puzzle from the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "pool", Aliases: []string{"p"}, Required: true, Usage: "The 7 puzzle letters"},
			&cli.StringFlag{Name: "center", Aliases: []string{"c"}, Required: true, Usage: "The required center letter"},
			&cli.StringFlag{Name: "wordlist", Aliases: []string{"w"}, Value: "data/wordlists/*.txt", Usage: "Word-list file glob"},
			&cli.BoolFlag{Name: "remote", Aliases: []string{"r"}, Usage: "Fetch the big english list instead of reading local files"},
			&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "Remote fetch timeout"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	pool, err := solver.NewLetterPool(c.String("pool"))
	if err != nil {
		return err
	}
	center, err := solver.NewCenterLetter(c.String("center"))
	if err != nil {
		return err
	}

	words, err := loadCorpus(c)
	if err != nil {
		return err
	}
	if words.IsEmpty() {
		return fmt.Errorf("word list is empty")
	}

	matches := solver.Match(pool, center, words)
	if len(matches) == 0 {
		fmt.Fprintln(c.App.Writer, "No matching words found.")
		return nil
	}
	printGrouped(c.App.Writer, solver.Group(matches))
	return nil
}

// loadCorpus picks the word source from the flags.
func loadCorpus(c *cli.Context) (*corpus.Corpus, error) {
	if c.Bool("remote") {
		ctx, cancel := context.WithTimeout(c.Context, c.Duration("timeout"))
		defer cancel()
		return corpus.Fetch(ctx, http.DefaultClient, corpus.DefaultRemoteURL)
	}
	return corpus.LoadFiles(c.String("wordlist"))
}

// printGrouped writes the answers grouped by first letter and length,
// pangrams marked with an asterisk.
func printGrouped(w io.Writer, g solver.GroupedResult) {
	for _, letter := range slices.Sorted(maps.Keys(g.Result)) {
		fmt.Fprintf(w, "%s (%d)\n", letter, g.Counts[letter])
		for _, length := range slices.Sorted(maps.Keys(g.Result[letter])) {
			line := make([]string, 0, len(g.Result[letter][length]))
			for _, m := range g.Result[letter][length] {
				word := m.Word
				if m.Pangram {
					word += "*"
				}
				line = append(line, word)
			}
			fmt.Fprintf(w, "  %2d  %s\n", length, strings.Join(line, ", "))
		}
	}
	fmt.Fprintf(w, "%d word%s total\n", g.Total(), pluralSuffix(g.Total()))
}

func pluralSuffix(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
