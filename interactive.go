package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/pflag"
)

func runInteractive(args []string) error {
	fs := pflag.NewFlagSet("interactive", pflag.ExitOnError)
	fs.Parse(args)

	root, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	cands, err := scanCandidates(root, cfg)
	if err != nil {
		return err
	}

	fresh := rankCandidates(newCandidates(cands))
	if len(fresh) == 0 {
		fmt.Println("No new translatable strings found.")
		return nil
	}

	fmt.Printf("%s\n", cyan("i18n-extract — interactive review"))
	fmt.Printf("Found %d new translatable strings.\n\n", len(fresh))

	approved := approveCandidates(fresh, os.Stdin, os.Stdout)
	if len(approved) == 0 {
		fmt.Println("Nothing approved, no files changed.")
		return nil
	}
	return mergeCandidates(root, cfg, approved)
}

// rankCandidates orders candidates for review: higher confidence first,
// longer literals first within the same confidence, scan order as the
// final tiebreak.
func rankCandidates(cands []candidate) []candidate {
	ranked := make([]candidate, len(cands))
	copy(ranked, cands)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Confidence != ranked[j].Confidence {
			return ranked[i].Confidence > ranked[j].Confidence
		}
		return len(ranked[i].Text) > len(ranked[j].Text)
	})
	return ranked
}

// approveCandidates walks the ranked list prompting for each candidate:
// y extracts it, n skips it, a extracts it and everything after, q stops
// reviewing. Returns the approved candidates.
func approveCandidates(ranked []candidate, in io.Reader, out io.Writer) []candidate {
	scanner := bufio.NewScanner(in)
	var approved []candidate
	approveRest := false

	for i, c := range ranked {
		if approveRest {
			approved = append(approved, c)
			continue
		}

		fmt.Fprintf(out, "%2d. [%.1f] %s\n", i+1, c.Confidence, green(c.Key))
		fmt.Fprintf(out, "    Text: %q\n", c.Text)
		fmt.Fprintf(out, "    File: %s:%d\n", c.File, c.Line)
		fmt.Fprintf(out, "    Context: %s\n", c.Context)
		fmt.Fprintf(out, "Extract? [y/n/a/q] ")

		if !scanner.Scan() {
			break
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y", "yes":
			approved = append(approved, c)
		case "a", "all":
			approved = append(approved, c)
			approveRest = true
		case "q", "quit":
			return approved
		}
	}
	return approved
}
