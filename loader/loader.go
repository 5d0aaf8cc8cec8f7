// Package loader reads and writes the YAML documents of a product: the
// architecture (product-architecture.yml) and Architecture Update files.
//
// Documents are decoded with yaml.v3, checked field by field with
// validator/v10 and then checked for referential integrity (every
// relationship, container, component and container instance must point at an
// entity that exists). Each failure is reported with a distinguishable code:
//
//   - errors.CodeNotFound when the file or revision does not exist
//   - errors.CodeParseFailed when the YAML is malformed
//   - errors.CodeSchemaFailed when a field is missing or invalid
//   - errors.CodeDuplicateID when two entities share an id
//
// wrapped in errors.CodeArchitectureLoadFailed, errors.CodeUpdateLoadFailed
// or errors.CodeGitLoadFailed depending on the source.
//
// # Basic Usage
//
//	fsys := billy.NewOSFS("/path/to/product")
//	arch, err := loader.LoadArchitecture(ctx, fsys, loader.DefaultArchitectureFile)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Skip validation when reading partially complete documents:
//
//	opts := loader.LoadOptions{SkipValidation: true}
//	update, err := loader.LoadUpdateWithOptions(ctx, fsys, "architecture-updates/x/architecture-update.yml", opts)
package loader

import (
	"context"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/eugenedong/arch-as-code/au"
	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/fs"
)

// DefaultArchitectureFile is the architecture document name inside a product directory.
const DefaultArchitectureFile = "product-architecture.yml"

// DefaultUpdateFile is the document name inside an Architecture Update directory.
const DefaultUpdateFile = "architecture-update.yml"

// LoadOptions configures the behavior of loading operations.
type LoadOptions struct {
	// SkipValidation disables struct and reference validation after decoding.
	SkipValidation bool
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadArchitecture loads and validates the architecture document at path.
func LoadArchitecture(ctx context.Context, filesystem fs.ReadFS, path string) (*c4.Architecture, error) {
	return LoadArchitectureWithOptions(ctx, filesystem, path, LoadOptions{})
}

// LoadArchitectureWithOptions loads the architecture document at path with custom options.
func LoadArchitectureWithOptions(ctx context.Context, filesystem fs.ReadFS, path string, opts LoadOptions) (*c4.Architecture, error) {
	data, err := readFile(ctx, filesystem, path)
	if err == nil {
		var arch *c4.Architecture
		arch, err = parseArchitecture(data, opts)
		if err == nil {
			return arch, nil
		}
	}
	return nil, errors.WrapWithContext(
		err,
		errors.CodeArchitectureLoadFailed,
		"failed to load architecture",
		map[string]interface{}{
			"path": path,
		},
	)
}

// LoadUpdate loads and validates the Architecture Update document at path.
func LoadUpdate(ctx context.Context, filesystem fs.ReadFS, path string) (*au.ArchitectureUpdate, error) {
	return LoadUpdateWithOptions(ctx, filesystem, path, LoadOptions{})
}

// LoadUpdateWithOptions loads the Architecture Update document at path with custom options.
func LoadUpdateWithOptions(ctx context.Context, filesystem fs.ReadFS, path string, opts LoadOptions) (*au.ArchitectureUpdate, error) {
	data, err := readFile(ctx, filesystem, path)
	if err == nil {
		var update *au.ArchitectureUpdate
		update, err = parseUpdate(data, opts)
		if err == nil {
			return update, nil
		}
	}
	return nil, errors.WrapWithContext(
		err,
		errors.CodeUpdateLoadFailed,
		"failed to load architecture update",
		map[string]interface{}{
			"path": path,
		},
	)
}

// ParseArchitecture decodes and validates an architecture document.
func ParseArchitecture(data []byte) (*c4.Architecture, error) {
	return parseArchitecture(data, LoadOptions{})
}

// ParseUpdate decodes and validates an Architecture Update document.
func ParseUpdate(data []byte) (*au.ArchitectureUpdate, error) {
	return parseUpdate(data, LoadOptions{})
}

func parseArchitecture(data []byte, opts LoadOptions) (*c4.Architecture, error) {
	var arch c4.Architecture
	if err := yaml.Unmarshal(data, &arch); err != nil {
		return nil, errors.Wrap(err, errors.CodeParseFailed, "malformed architecture YAML")
	}
	if opts.SkipValidation {
		return &arch, nil
	}
	if err := validateStruct(&arch); err != nil {
		return nil, err
	}
	if err := checkReferences(&arch.Model); err != nil {
		return nil, err
	}
	return &arch, nil
}

func parseUpdate(data []byte, opts LoadOptions) (*au.ArchitectureUpdate, error) {
	var update au.ArchitectureUpdate
	if err := yaml.Unmarshal(data, &update); err != nil {
		return nil, errors.Wrap(err, errors.CodeParseFailed, "malformed architecture update YAML")
	}
	if opts.SkipValidation {
		return &update, nil
	}
	if err := validateStruct(&update); err != nil {
		return nil, err
	}
	return &update, nil
}

// readFile reads path, reporting a missing file as CodeNotFound.
func readFile(ctx context.Context, filesystem fs.ReadFS, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	exists, err := filesystem.Exists(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to stat "+path)
	}
	if !exists {
		return nil, errors.NewWithContext(
			errors.CodeNotFound,
			"file does not exist",
			map[string]interface{}{
				"path": path,
			},
		)
	}
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to read "+path)
	}
	return data, nil
}
