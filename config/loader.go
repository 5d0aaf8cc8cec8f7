package config

import (
	"context"
	"path"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/fs"
)

// Load reads productDir/arch.cue, falling back to the defaults when the file
// does not exist.
func Load(ctx context.Context, filesystem fs.ReadFS, productDir string) (*ProductConfig, error) {
	return LoadWithOptions(ctx, filesystem, productDir, LoadOptions{})
}

// LoadWithOptions reads productDir/arch.cue with custom options.
func LoadWithOptions(ctx context.Context, filesystem fs.ReadFS, productDir string, opts LoadOptions) (*ProductConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file := path.Join(productDir, FileName)
	exists, err := filesystem.Exists(file)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInternal, "failed to stat configuration",
			map[string]interface{}{"path": file})
	}
	if !exists {
		return Default(), nil
	}

	data, err := filesystem.ReadFile(file)
	if err != nil {
		return nil, errors.WrapWithContext(err, errors.CodeInternal, "failed to read configuration",
			map[string]interface{}{"path": file})
	}

	return parse(data, file, opts)
}

// Parse decodes arch.cue source. filename is used in error positions.
func Parse(data []byte, filename string) (*ProductConfig, error) {
	return parse(data, filename, LoadOptions{})
}

// Default returns the configuration of a product without arch.cue.
func Default() *ProductConfig {
	cfg, err := parse(nil, FileName, LoadOptions{SkipValidation: true})
	if err != nil {
		panic("config: embedded schema is invalid: " + err.Error())
	}
	return cfg
}

func parse(data []byte, filename string, opts LoadOptions) (*ProductConfig, error) {
	cueCtx := cuecontext.New()

	product, err := productSchema(cueCtx)
	if err != nil {
		return nil, err
	}

	value := cueCtx.CompileBytes(data, cue.Filename(filename))
	if value.Err() != nil {
		return nil, errors.WrapWithContext(
			value.Err(),
			errors.CodeCUELoadFailed,
			"failed to compile configuration",
			map[string]interface{}{
				"path": filename,
			},
		)
	}

	unified := product.Unify(value)
	if verr := unified.Validate(); verr != nil {
		return nil, errors.WrapWithContext(
			verr,
			errors.CodeSchemaFailed,
			"configuration does not match schema",
			map[string]interface{}{
				"path": filename,
			},
		)
	}

	var cfg ProductConfig
	if derr := unified.Decode(&cfg); derr != nil {
		return nil, errors.WrapWithContext(
			derr,
			errors.CodeCUEDecodeFailed,
			"failed to decode configuration",
			map[string]interface{}{
				"path": filename,
			},
		)
	}

	if !opts.SkipValidation {
		if verr := checkVersion(cfg.SchemaVersion); verr != nil {
			return nil, verr
		}
	}

	return &cfg, nil
}

func productSchema(cueCtx *cue.Context) (cue.Value, error) {
	schema := cueCtx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if schema.Err() != nil {
		return cue.Value{}, errors.Wrap(schema.Err(), errors.CodeInternal, "failed to compile embedded schema")
	}
	product := schema.LookupPath(cue.ParsePath("#Product"))
	if !product.Exists() {
		return cue.Value{}, errors.New(errors.CodeInternal, "embedded schema has no #Product")
	}
	return product, nil
}

func checkVersion(version string) error {
	ok, err := IsCompatible(version)
	if err != nil {
		return errors.WrapWithContext(err, errors.CodeInvalidConfig, "invalid schema version",
			map[string]interface{}{"schemaVersion": version})
	}
	if !ok {
		return errors.NewWithContext(
			errors.CodeIncompatibleVersion,
			"schema version "+version+" is not compatible with "+SupportedSchemaVersion,
			map[string]interface{}{
				"schemaVersion": version,
				"supported":     SupportedSchemaVersion,
			},
		)
	}
	return nil
}
