// Package config loads the per-product configuration file, arch.cue.
//
// The file is CUE. It is unified with an embedded #Product schema that
// supplies defaults and rejects unknown fields, then decoded into
// ProductConfig. A product without arch.cue gets the schema defaults.
//
// # Basic Usage
//
//	fsys := billy.NewOSFS("/path/to/product")
//	cfg, err := config.Load(ctx, fsys, ".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.BaseBranch)
//
// A minimal arch.cue:
//
//	schemaVersion: "0.1.0"
//	baseBranch:    "main"
//	stages: ["TDD"]
package config

import (
	"path"

	"github.com/eugenedong/arch-as-code/validation"
)

// FileName is the configuration file name inside a product directory.
const FileName = "arch.cue"

// ProductConfig is the decoded configuration of one product directory.
type ProductConfig struct {
	// SchemaVersion is the schema version the file declares.
	SchemaVersion string `json:"schemaVersion"`

	// ArchitectureFile is the architecture document, relative to the product directory.
	ArchitectureFile string `json:"architectureFile"`

	// UpdatesDir holds one directory per Architecture Update.
	UpdatesDir string `json:"updatesDir"`

	// BaseBranch is the branch holding the last released architecture.
	BaseBranch string `json:"baseBranch"`

	// Stages are the validation stages run when none are requested.
	Stages []validation.Stage `json:"stages"`
}

// ArchitecturePath joins productDir and the architecture file name.
func (c *ProductConfig) ArchitecturePath(productDir string) string {
	return path.Join(productDir, c.ArchitectureFile)
}

// UpdateDir returns the directory of the named Architecture Update.
func (c *ProductConfig) UpdateDir(productDir, name string) string {
	return path.Join(productDir, c.UpdatesDir, name)
}

// LoadOptions configures the behavior of configuration loading operations.
type LoadOptions struct {
	// SkipValidation disables the schema version compatibility check.
	// The CUE schema is always applied since it supplies defaults.
	SkipValidation bool
}
