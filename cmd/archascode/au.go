package main

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/eugenedong/arch-as-code/annotate"
	"github.com/eugenedong/arch-as-code/au"
	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/git"
	"github.com/eugenedong/arch-as-code/loader"
	"github.com/eugenedong/arch-as-code/validation"
)

func newAUCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "au",
		Aliases: []string{"architecture-update"},
		Short:   "Work with Architecture Updates",
	}
	cmd.AddCommand(
		newAUNewCmd(a),
		newAUValidateCmd(a),
		newAUAnnotateCmd(a),
		newAUStoriesCmd(a),
	)
	return cmd
}

type newFlags struct {
	branch bool
	commit bool
}

func newAUNewCmd(a *app) *cobra.Command {
	var flags newFlags

	cmd := &cobra.Command{
		Use:   "new <name> <product-dir>",
		Short: "Create a blank Architecture Update",
		Long: `Creates architecture-updates/<name>/architecture-update.yml from the blank
template. With --branch the AU is started on a new git branch named after it,
keeping local changes. With --commit the new file is committed using the
author configured in git.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			p, err := a.openProduct(ctx, args[1])
			if err != nil {
				return err
			}

			file := path.Join(p.config.UpdateDir(p.dir, name), loader.DefaultUpdateFile)
			exists, err := a.fs.Exists(file)
			if err != nil {
				return errors.Wrap(err, errors.CodeInternal, "failed to stat "+file)
			}
			if exists {
				return errors.NewWithContext(errors.CodeAlreadyExists, "architecture update already exists",
					map[string]interface{}{"path": file})
			}

			var repo *git.Repo
			var root string
			if flags.branch || flags.commit {
				if repo, root, err = a.openRepo(ctx, p); err != nil {
					return err
				}
			}

			if flags.branch {
				if err := repo.CheckoutBranch(ctx, name, true, false); err != nil {
					return errors.WrapWithContext(err, errors.CodeGitLoadFailed, "failed to start AU branch",
						map[string]interface{}{"branch": name})
				}
				a.logger.Debug("switched to AU branch", "branch", name)
			}

			if err := loader.WriteUpdate(a.fs, file, au.Blank(name)); err != nil {
				return err
			}

			if flags.commit {
				if err := commitUpdate(ctx, repo, repoRelative(root, file), name); err != nil {
					return err
				}
			}

			shown := filepath.Join(args[1], p.config.UpdatesDir, name, loader.DefaultUpdateFile)
			fmt.Fprintf(cmd.OutOrStdout(), "AU created - %s\n", shown)
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.branch, "branch", false, "Create and check out a git branch named after the AU")
	cmd.Flags().BoolVar(&flags.commit, "commit", false, "Commit the new AU file")
	return cmd
}

// commitUpdate stages and commits a freshly created AU file.
func commitUpdate(ctx context.Context, repo *git.Repo, file, name string) error {
	who, err := repo.Author(time.Now())
	if err != nil {
		return errors.Wrap(err, errors.CodeInvalidConfig, "cannot commit the AU")
	}
	if err := repo.Add(ctx, file); err != nil {
		return errors.Wrap(err, errors.CodeWriteFailed, "failed to stage "+file)
	}
	if _, err := repo.Commit(ctx, "Add architecture update "+name, who, git.CommitOpts{}); err != nil {
		return errors.Wrap(err, errors.CodeWriteFailed, "failed to commit "+file)
	}
	return nil
}

type validateFlags struct {
	branch string
	tdd    bool
	story  bool
	format string
}

// stages maps the -t and -s flags to validation stages; neither or both
// selects the product's configured stages.
func (f validateFlags) stages(configured []validation.Stage) []validation.Stage {
	switch {
	case f.tdd && !f.story:
		return []validation.Stage{validation.StageTDD}
	case f.story && !f.tdd:
		return []validation.Stage{validation.StageStory}
	default:
		return configured
	}
}

func newAUValidateCmd(a *app) *cobra.Command {
	var flags validateFlags

	cmd := &cobra.Command{
		Use:   "validate <au-file> <product-dir>",
		Short: "Validate an Architecture Update against the architecture",
		Long: `Validates the TDDs and feature stories of an Architecture Update against
the working copy architecture and the architecture on the base branch.
Exits with status 1 when validation errors are found.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			format, err := validation.ParseFormat(flags.format)
			if err != nil {
				return errors.Wrap(err, errors.CodeInvalidInput, "invalid --format")
			}

			auPath, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			update, err := loader.LoadUpdate(ctx, a.fs, auPath)
			if err != nil {
				return err
			}

			p, err := a.openProduct(ctx, args[1])
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

			result, err := validation.Validate(update, &current.Model, &base.arch.Model, validation.WithLogger(a.logger))
			if err != nil {
				return err
			}

			stages := flags.stages(p.config.Stages)
			if result.IsValid(stages...) {
				fmt.Fprintln(cmd.OutOrStdout(), "Success, no errors found.")
				return nil
			}

			reporter := validation.NewReporter(cmd.ErrOrStderr(), format, branch)
			if err := reporter.Report(result.Errors(stages...)); err != nil {
				return err
			}
			return errValidationFailed
		},
	}

	cmd.Flags().StringVarP(&flags.branch, "branch", "b", "", "Base branch (defaults to the configured base branch)")
	cmd.Flags().BoolVarP(&flags.tdd, "TDDs", "t", false, "Run validation for TDDs only")
	cmd.Flags().BoolVarP(&flags.story, "stories", "s", false, "Run validation for feature stories only")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "Output format: text|json")
	return cmd
}

func newAUAnnotateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "annotate <au-file> <product-dir>",
		Short: "Annotate component references with their paths",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			auPath, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			p, err := a.openProduct(ctx, args[1])
			if err != nil {
				return err
			}
			current, err := a.currentArchitecture(ctx, p)
			if err != nil {
				return err
			}

			n, err := annotate.AnnotateFile(ctx, a.fs, auPath, current)
			if err != nil {
				return err
			}

			a.logger.Debug("annotated architecture update", "path", auPath, "components", n)
			fmt.Fprintln(cmd.OutOrStdout(), "AU has been annotated with component paths.")
			return nil
		},
	}
}

func newAUStoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stories <au-file>",
		Short: "Print the feature stories that have no ticket yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			auPath, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			update, err := loader.LoadUpdate(cmd.Context(), a.fs, auPath)
			if err != nil {
				return err
			}

			stories, err := au.BuildStories(update)
			if err != nil {
				return err
			}
			if stories == nil {
				stories = []au.Story{}
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stories)
		},
	}
}
