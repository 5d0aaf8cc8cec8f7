package c4

import (
	"strings"

	"github.com/eugenedong/arch-as-code/errors"
)

const (
	personPathPrefix = "@"
	c4PathPrefix     = "c4://"
)

// Path is the hierarchical address of an entity. People are addressed as
// "@Name"; systems, containers and components as "c4://System",
// "c4://System/Container" and "c4://System/Container/Component".
type Path string

// ParsePath validates raw and returns it as a Path.
func ParsePath(raw string) (Path, error) {
	p := Path(raw)
	if p.Type() == "" {
		return "", errors.NewWithContext(
			errors.CodeMalformedReference,
			"malformed entity path",
			map[string]interface{}{"path": raw},
		)
	}
	return p, nil
}

// PersonPath returns the path of a person named name.
func PersonPath(name string) Path {
	return Path(personPathPrefix + name)
}

// SystemPath returns the path of the system named system.
func SystemPath(system string) Path {
	return Path(c4PathPrefix + system)
}

// ContainerPath returns the path of a container inside system.
func ContainerPath(system, container string) Path {
	return Path(c4PathPrefix + system + "/" + container)
}

// ComponentPath returns the path of a component inside a container.
func ComponentPath(system, container, component string) Path {
	return Path(c4PathPrefix + system + "/" + container + "/" + component)
}

// String returns the string representation of the Path.
func (p Path) String() string {
	return string(p)
}

// Segments returns the containment segments of the path. A person path has a
// single segment holding the person name.
func (p Path) Segments() []string {
	s := string(p)
	switch {
	case strings.HasPrefix(s, personPathPrefix):
		return []string{strings.TrimPrefix(s, personPathPrefix)}
	case strings.HasPrefix(s, c4PathPrefix):
		return strings.Split(strings.TrimPrefix(s, c4PathPrefix), "/")
	default:
		return nil
	}
}

// Type infers the entity kind the path addresses. It returns the empty Type
// for malformed paths.
func (p Path) Type() Type {
	segs := p.Segments()
	for _, seg := range segs {
		if seg == "" {
			return ""
		}
	}

	if strings.HasPrefix(string(p), personPathPrefix) {
		if len(segs) == 1 && !strings.Contains(segs[0], "/") {
			return TypePerson
		}
		return ""
	}

	switch len(segs) {
	case 1:
		return TypeSystem
	case 2:
		return TypeContainer
	case 3:
		return TypeComponent
	default:
		return ""
	}
}

// IsValid reports whether the path is well formed.
func (p Path) IsValid() bool {
	return p.Type() != ""
}

// SystemName returns the system segment of a system, container or component path.
func (p Path) SystemName() string {
	return p.segment(0)
}

// ContainerName returns the container segment of a container or component path.
func (p Path) ContainerName() string {
	return p.segment(1)
}

// ComponentName returns the component segment of a component path.
func (p Path) ComponentName() string {
	return p.segment(2)
}

// Parent returns the path of the enclosing entity: a component's container or
// a container's system. People and systems have no parent.
func (p Path) Parent() Path {
	switch p.Type() {
	case TypeContainer:
		return SystemPath(p.SystemName())
	case TypeComponent:
		return ContainerPath(p.SystemName(), p.ContainerName())
	default:
		return ""
	}
}

func (p Path) segment(i int) string {
	if !strings.HasPrefix(string(p), c4PathPrefix) {
		return ""
	}
	segs := p.Segments()
	if i >= len(segs) {
		return ""
	}
	return segs[i]
}
