package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"
)

// replacement is one suggested source edit: swap a hardcoded literal for
// the localized fl! macro call.
type replacement struct {
	Line        int    `json:"line"`
	Original    string `json:"original"`
	Replacement string `json:"replacement"`
	Context     string `json:"context"`
}

func runRewrite(args []string) error {
	fs := pflag.NewFlagSet("rewrite", pflag.ExitOnError)
	out := fs.String("out", "", "Write the plan to a file instead of stdout")
	fs.Parse(args)

	root, cfg, err := loadEnv()
	if err != nil {
		return err
	}
	cands, err := scanCandidates(root, cfg)
	if err != nil {
		return err
	}

	// Plan for every scanned literal, not just unextracted ones: a
	// string already in the base file is still hardcoded in the source
	// until its fl! replacement is applied.
	plan := rewritePlan(cands)
	if len(plan) == 0 {
		fmt.Fprintln(os.Stderr, "No translatable strings found.")
		return nil
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if *out == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(*out, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", *out, err)
	}
	fmt.Fprintf(os.Stderr, "Replacement plan written to %s — review and apply manually.\n", *out)
	return nil
}

// rewritePlan groups suggested replacements by source file. The plan is
// advisory only; this tool never edits source files.
func rewritePlan(cands []candidate) map[string][]replacement {
	plan := make(map[string][]replacement)
	for _, c := range cands {
		plan[c.File] = append(plan[c.File], replacement{
			Line:        c.Line,
			Original:    fmt.Sprintf("%q", c.Text),
			Replacement: fmt.Sprintf("fl!(crate::i18n::LANGUAGE_LOADER, %q)", c.Key),
			Context:     c.Context,
		})
	}
	return plan
}
