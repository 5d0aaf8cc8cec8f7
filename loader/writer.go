package loader

import (
	"bytes"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/eugenedong/arch-as-code/au"
	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/fs"
)

// MarshalArchitecture encodes an architecture document as YAML.
func MarshalArchitecture(arch *c4.Architecture) ([]byte, error) {
	if arch == nil {
		return nil, errors.New(errors.CodeInvalidInput, "architecture is nil")
	}
	return marshal(arch)
}

// MarshalUpdate encodes an Architecture Update document as YAML.
func MarshalUpdate(update *au.ArchitectureUpdate) ([]byte, error) {
	if update == nil {
		return nil, errors.New(errors.CodeInvalidInput, "architecture update is nil")
	}
	return marshal(update)
}

// WriteArchitecture writes arch to path, creating parent directories.
func WriteArchitecture(filesystem fs.Filesystem, file string, arch *c4.Architecture) error {
	data, err := MarshalArchitecture(arch)
	if err != nil {
		return err
	}
	return writeFile(filesystem, file, data)
}

// WriteUpdate writes update to path, creating parent directories.
func WriteUpdate(filesystem fs.Filesystem, file string, update *au.ArchitectureUpdate) error {
	data, err := MarshalUpdate(update)
	if err != nil {
		return err
	}
	return writeFile(filesystem, file, data)
}

func marshal(doc interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, errors.CodeWriteFailed, "failed to encode YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.CodeWriteFailed, "failed to encode YAML")
	}
	return buf.Bytes(), nil
}

func writeFile(filesystem fs.Filesystem, file string, data []byte) error {
	if dir := path.Dir(file); dir != "." && dir != "/" {
		if err := filesystem.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithContext(err, errors.CodeWriteFailed, "failed to create directory",
				map[string]interface{}{"path": dir})
		}
	}
	if err := filesystem.WriteFile(file, data, 0o644); err != nil {
		return errors.WrapWithContext(err, errors.CodeWriteFailed, "failed to write file",
			map[string]interface{}{"path": file})
	}
	return nil
}
