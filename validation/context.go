package validation

import (
	"github.com/eugenedong/arch-as-code/au"
	"github.com/eugenedong/arch-as-code/c4"
)

// Context gives rules read access to the document under validation and to
// both architecture snapshots.
type Context struct {
	// Update is the document being validated.
	Update *au.ArchitectureUpdate

	// Current indexes the architecture of the branch carrying the update.
	Current *c4.Index

	// Base indexes the architecture of the branch the update was cut from.
	Base *c4.Index

	// cache stores rule-specific data to avoid recomputation.
	// Keys should be prefixed with the rule name to avoid conflicts.
	cache map[string]interface{}
}

// NewContext creates a Context over the given document and indexes.
func NewContext(update *au.ArchitectureUpdate, current, base *c4.Index) *Context {
	return &Context{
		Update:  update,
		Current: current,
		Base:    base,
		cache:   make(map[string]interface{}),
	}
}

// GetCache retrieves a cached value by key. It returns nil if the key doesn't exist.
func (ctx *Context) GetCache(key string) interface{} {
	return ctx.cache[key]
}

// SetCache stores a value in the cache with the given key.
func (ctx *Context) SetCache(key string, value interface{}) {
	ctx.cache[key] = value
}

// DefinedTDDs returns the set of TDD ids defined anywhere in the document.
func (ctx *Context) DefinedTDDs() map[au.TddID]bool {
	const key = "context:defined-tdds"
	if cached, ok := ctx.GetCache(key).(map[au.TddID]bool); ok {
		return cached
	}
	defined := make(map[au.TddID]bool)
	for _, e := range ctx.Update.AllTDDs() {
		defined[e.ID] = true
	}
	ctx.SetCache(key, defined)
	return defined
}
