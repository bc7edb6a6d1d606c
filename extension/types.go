package extension

import (
	"reflect"
	"strings"
	"sync"

	"github.com/viant/x"
)

type Types struct {
	x.Registry
	mux    sync.RWMutex
	byName map[string]*x.Type
}

// Register adds a data type to the registry, indexing it by its unqualified
// name so that callers without the package path can still resolve it.
func (t *Types) Register(dataType *x.Type) {
	t.Registry.Register(dataType)
	if dataType.Name != "" {
		name := dataType.Name
		if idx := strings.LastIndex(name, "."); idx != -1 {
			name = name[idx+1:]
		}
		t.mux.Lock()
		t.byName[name] = dataType
		t.mux.Unlock()
	}
}

// Lookup returns a data type from the registry, honouring an optional
// slice or map modifier prefix such as "[]" or "map[string]". Unqualified
// names fall back to the short-name index.
func (t *Types) Lookup(dataType string) *x.Type {
	typeModifier := ""
	if idx := strings.LastIndex(dataType, "]"); idx != -1 {
		typeModifier = dataType[:idx+1]
		dataType = dataType[idx+1:]
	}
	ret := t.Registry.Lookup(dataType)
	if ret == nil && !strings.Contains(dataType, ".") {
		t.mux.RLock()
		ret = t.byName[dataType]
		t.mux.RUnlock()
	}
	if ret == nil {
		return nil
	}
	rType := ret.Type
	switch strings.TrimSpace(typeModifier) {
	case "[]":
		rType = reflect.SliceOf(rType)
	case "[][]":
		rType = reflect.SliceOf(reflect.SliceOf(rType))
	case "map[string]":
		rType = reflect.MapOf(reflect.TypeOf(""), rType)
	case "map[string][]":
		rType = reflect.MapOf(reflect.TypeOf(""), reflect.SliceOf(rType))
	}
	if rType != ret.Type {
		return x.NewType(rType)
	}
	return ret
}

// NewTypes creates a new types
func NewTypes(options ...x.RegistryOption) *Types {
	return &Types{
		Registry: *x.NewRegistry(options...),
		byName:   make(map[string]*x.Type),
	}
}
