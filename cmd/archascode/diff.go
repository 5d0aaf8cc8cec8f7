package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/diff"
)

type diffFlags struct {
	branch string
	format string
	all    bool
}

func newDiffCmd(a *app) *cobra.Command {
	var flags diffFlags

	cmd := &cobra.Command{
		Use:   "diff <product-dir>",
		Short: "Compare the working copy architecture with a branch",
		Long: `Compares product-architecture.yml in the working copy with the version
committed on the base branch and lists every entity that was created,
deleted, updated or has updated children.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			p, err := a.openProduct(ctx, args[0])
			if err != nil {
				return err
			}
			branch := p.branch(flags.branch)

			current, err := a.currentArchitecture(ctx, p)
			if err != nil {
				return err
			}
			base, err := a.baseArchitecture(ctx, p, branch)
			if err != nil {
				return err
			}

			set, err := diff.Compute(&base.arch.Model, &current.Model, diff.WithLogger(a.logger))
			if err != nil {
				return err
			}

			if flags.format == "json" {
				return writeDiffJSON(cmd.OutOrStdout(), base, set)
			}
			writeDiffText(cmd.OutOrStdout(), base, set, flags.all)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.branch, "branch", "b", "", "Base branch (defaults to the configured base branch)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text|json")
	cmd.Flags().BoolVar(&flags.all, "all", false, "Also list unchanged entities")
	return cmd
}

func writeDiffText(w io.Writer, base *baseline, set *diff.Set, all bool) {
	if base.current != "" {
		fmt.Fprintf(w, "Working copy on %q branch.\n", base.current)
	}
	fmt.Fprintf(w, "Compared with %q branch.\n", base.branch)

	counts := set.Counts()
	for _, s := range diff.Statuses {
		fmt.Fprintf(w, "  %-16s %d\n", s, counts[s])
	}

	if !set.HasChanges() && !all {
		fmt.Fprintln(w, "No changes.")
		return
	}

	fmt.Fprintln(w)
	for _, d := range set.Slice() {
		if d.Status == diff.StatusNoUpdate && !all {
			continue
		}
		fmt.Fprintf(w, "%-16s %-14s %-6s %s\n", d.Status, d.Type, d.ID, describe(d.Entity()))
	}
}

func describe(e c4.Entity) string {
	if p := e.GetPath(); p != "" {
		return string(p)
	}
	return e.GetName()
}

type diffEntry struct {
	ID     string      `json:"id"`
	Type   c4.Type     `json:"type"`
	Status diff.Status `json:"status"`
	Name   string      `json:"name"`
	Path   c4.Path     `json:"path,omitempty"`
}

type diffReport struct {
	BaseBranch    string              `json:"baseBranch"`
	BaseCommit    string              `json:"baseCommit"`
	CurrentBranch string              `json:"currentBranch,omitempty"`
	Counts        map[diff.Status]int `json:"counts"`
	Diffs         []diffEntry         `json:"diffs"`
}

func writeDiffJSON(w io.Writer, base *baseline, set *diff.Set) error {
	report := diffReport{
		BaseBranch:    base.branch,
		BaseCommit:    base.commit,
		CurrentBranch: base.current,
		Counts:        set.Counts(),
		Diffs:         make([]diffEntry, 0, set.Len()),
	}
	for _, d := range set.Slice() {
		e := d.Entity()
		report.Diffs = append(report.Diffs, diffEntry{
			ID:     d.ID,
			Type:   d.Type,
			Status: d.Status,
			Name:   e.GetName(),
			Path:   e.GetPath(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
