// Package annotate decorates Architecture Update files with the paths of the
// components they reference, so a reader sees "c4://Bookstore/API/Search"
// next to an opaque "Component-31" key.
//
// The file is edited as text: only the trailing comment of each component
// key line changes, so the rest of the document keeps its formatting and
// comments.
package annotate

import (
	"context"
	"regexp"

	"github.com/eugenedong/arch-as-code/c4"
	"github.com/eugenedong/arch-as-code/errors"
	"github.com/eugenedong/arch-as-code/fs"
)

// componentKey matches an indented "Component-<id>:" mapping key, quoted or
// not, together with whatever trails it on the line.
var componentKey = regexp.MustCompile(`(?m)^([ \t]+['"]?Component-)(\d+)(['"]?:)[^\n]*$`)

// Annotate rewrites every component key line of src as
//
//	Component-<id>:  # <path>
//
// Existing trailing comments are replaced. Keys whose id has no entity, or
// whose entity has no path, are left without a comment. It returns the new
// source and the number of keys that received a path.
func Annotate(src []byte, ix *c4.Index) ([]byte, int) {
	annotated := 0
	out := componentKey.ReplaceAllFunc(src, func(line []byte) []byte {
		m := componentKey.FindSubmatch(line)
		key := make([]byte, 0, len(line)+32)
		key = append(key, m[1]...)
		key = append(key, m[2]...)
		key = append(key, m[3]...)

		if e, ok := ix.FindEntityByID(string(m[2])); ok && e.GetPath() != "" {
			key = append(key, "  # "...)
			key = append(key, string(e.GetPath())...)
			annotated++
		}
		return key
	})
	return out, annotated
}

// AnnotateFile annotates the Architecture Update at path in place using the
// entities of arch.
func AnnotateFile(ctx context.Context, filesystem fs.Filesystem, path string, arch *c4.Architecture) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if arch == nil {
		return 0, errors.New(errors.CodeInvalidInput, "architecture is nil")
	}

	ix, err := c4.NewIndex(&arch.Model)
	if err != nil {
		return 0, err
	}

	src, err := filesystem.ReadFile(path)
	if err != nil {
		return 0, errors.WrapWithContext(err, errors.CodeUpdateLoadFailed, "unable to load architecture update",
			map[string]interface{}{"path": path})
	}

	out, n := Annotate(src, ix)

	info, err := filesystem.Stat(path)
	if err != nil {
		return 0, errors.WrapWithContext(err, errors.CodeInternal, "failed to stat architecture update",
			map[string]interface{}{"path": path})
	}
	if err := filesystem.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return 0, errors.WrapWithContext(err, errors.CodeWriteFailed, "unable to write annotations",
			map[string]interface{}{"path": path})
	}
	return n, nil
}
