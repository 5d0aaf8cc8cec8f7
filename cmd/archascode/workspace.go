package main

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/config"
	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/git"
	"github.com/eugenedong/arch-as-code/loader"
)

// product is a product directory together with its configuration.
type product struct {
	dir    string
	config *config.ProductConfig
}

func (a *app) openProduct(ctx context.Context, dir string) (*product, error) {
	resolved, err := a.resolve(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(ctx, a.fs, resolved)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("opened product", "dir", resolved, "architecture", cfg.ArchitectureFile, "baseBranch", cfg.BaseBranch)
	return &product{dir: resolved, config: cfg}, nil
}

// branch returns flagBranch, or the configured base branch when it is empty.
func (p *product) branch(flagBranch string) string {
	if flagBranch != "" {
		return flagBranch
	}
	return p.config.BaseBranch
}

// currentArchitecture loads the architecture from the working copy.
func (a *app) currentArchitecture(ctx context.Context, p *product) (*c4.Architecture, error) {
	return loader.LoadArchitecture(ctx, a.fs, p.config.ArchitecturePath(p.dir))
}

// baseline is the architecture as committed on the base branch.
type baseline struct {
	arch   *c4.Architecture
	branch string
	commit string

	// current is the checked out branch, empty when HEAD is detached.
	current string
}

// openRepo opens the git repository that contains the product directory and
// returns it with its root.
func (a *app) openRepo(ctx context.Context, p *product) (*git.Repo, string, error) {
	root, err := git.FindRoot(a.fs, p.dir)
	if err != nil {
		return nil, "", errors.WrapWithContext(err, errors.CodeGitLoadFailed, "product is not inside a git repository",
			map[string]interface{}{"dir": p.dir})
	}

	repo, err := git.Open(ctx, &git.Options{FS: a.fs, Workdir: root, Logger: a.logger})
	if err != nil {
		return nil, "", errors.WrapWithContext(err, errors.CodeGitLoadFailed, "failed to open repository",
			map[string]interface{}{"root": root})
	}
	return repo, root, nil
}

// baseArchitecture loads the architecture as committed on branch.
func (a *app) baseArchitecture(ctx context.Context, p *product, branch string) (*baseline, error) {
	repo, root, err := a.openRepo(ctx, p)
	if err != nil {
		return nil, err
	}

	ref, err := resolveBranch(ctx, repo, branch)
	if err != nil {
		return nil, err
	}

	arch, err := loader.LoadArchitectureAtRevision(ctx, repo, ref.Hash, repoRelative(root, p.config.ArchitecturePath(p.dir)))
	if err != nil {
		return nil, err
	}

	current, err := repo.CurrentBranch(ctx)
	if err != nil {
		a.logger.Debug("no current branch", "error", err)
		current = ""
	}

	a.logger.Debug("loaded base architecture", "branch", branch, "commit", ref.Hash, "current", current)
	return &baseline{arch: arch, branch: branch, commit: ref.Hash, current: current}, nil
}

// resolveBranch pins a base branch to its commit. An unknown branch is
// reported with the branches that do exist.
func resolveBranch(ctx context.Context, repo *git.Repo, branch string) (*git.ResolvedRef, error) {
	ref, err := repo.Resolve(ctx, branch)
	if err == nil {
		return ref, nil
	}
	if !errors.Is(err, git.ErrResolveFailed) {
		return nil, errors.WrapWithContext(err, errors.CodeGitLoadFailed, "failed to resolve base branch",
			map[string]interface{}{"branch": branch})
	}

	available, lerr := repo.Branches(ctx)
	if lerr != nil {
		return nil, errors.WrapWithContext(lerr, errors.CodeGitLoadFailed, "failed to list branches",
			map[string]interface{}{"branch": branch})
	}

	return nil, errors.WrapWithContext(
		err,
		errors.CodeNotFound,
		fmt.Sprintf("base branch %q not found (available: %s)", branch, strings.Join(available, ", ")),
		map[string]interface{}{
			"branch":    branch,
			"available": available,
		},
	)
}

// repoRelative returns file relative to the repository root.
func repoRelative(root, file string) string {
	if root == "." {
		return file
	}
	return strings.TrimPrefix(path.Clean(file), root+"/")
}
