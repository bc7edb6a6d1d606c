package extension

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/x"
)

type conceptPayload struct {
	ID   string
	Tags []string
}

func TestTypesLookup(t *testing.T) {
	registry := NewTypes()
	registry.Register(x.NewType(reflect.TypeOf(conceptPayload{}), x.WithName("ConceptPayload")))

	t.Run("unqualified name resolves", func(t *testing.T) {
		aType := registry.Lookup("ConceptPayload")
		if assert.NotNil(t, aType) {
			assert.Equal(t, reflect.TypeOf(conceptPayload{}), aType.Type)
		}
	})

	t.Run("slice modifier", func(t *testing.T) {
		aType := registry.Lookup("[]ConceptPayload")
		if assert.NotNil(t, aType) {
			assert.Equal(t, reflect.SliceOf(reflect.TypeOf(conceptPayload{})), aType.Type)
		}
	})

	t.Run("map modifier", func(t *testing.T) {
		aType := registry.Lookup("map[string]ConceptPayload")
		if assert.NotNil(t, aType) {
			assert.Equal(t, reflect.MapOf(reflect.TypeOf(""), reflect.TypeOf(conceptPayload{})), aType.Type)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		assert.Nil(t, registry.Lookup("Unknown"))
	})
}
