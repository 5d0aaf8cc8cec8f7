// Package git provides a small facade over go-git for reading product
// architecture documents as they exist on another branch.
//
// The package operates exclusively through the project's filesystem
// abstraction, so repositories can live on disk or in memory. The primary
// consumer is the loader, which reads product-architecture.yml at the base
// branch to compare it with the working copy.
//
// # Basic Usage
//
// Open the repository that contains a product directory and read a file at a
// branch:
//
//	import (
//	    "context"
//	    billyfs "github.com/eugenedong/arch-as-code/fs/billy"
//	    "github.com/eugenedong/arch-as-code/git"
//	)
//
//	fs := billyfs.NewOSFS("/")
//	root, err := git.FindRoot(fs, "home/me/products/acme")
//
//	repo, err := git.Open(context.Background(), &git.Options{
//	    FS:      fs,
//	    Workdir: root,
//	})
//
//	data, err := repo.ReadFileAt(ctx, "master", "products/acme/product-architecture.yml")
//
// # Branches and Commits
//
// Branch and commit helpers exist mainly to build repositories in tests:
//
//	err = repo.Add(ctx, "product-architecture.yml")
//	sha, err := repo.Commit(ctx, "Update architecture", git.Signature{
//	    Name:  "John Doe",
//	    Email: "john@example.com",
//	    When:  time.Now(),
//	}, git.CommitOpts{})
//
//	err = repo.CreateBranch(ctx, "feature/x", "HEAD", false)
//	err = repo.CheckoutBranch(ctx, "feature/x", false, false)
//
// # Error Handling
//
// Failures wrap sentinel errors that can be checked with errors.Is:
//
//	if errors.Is(err, git.ErrResolveFailed) {
//	    // branch or revision does not exist
//	}
//	if errors.Is(err, git.ErrFileMissing) {
//	    // file is absent from the revision's tree
//	}
package git
