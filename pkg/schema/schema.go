package schema

import (
	"github.com/invopop/jsonschema"
)

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

var schemas = map[string]*jsonschema.Schema{
	"art-collection": generateSchema[ArtCollection](),
	"art-piece":      generateSchema[ArtPiece](),
	"creature":       generateSchema[Creature](),
}

// Lookup returns the reflected JSON schema of an upstream payload by name.
func Lookup(name string) (*jsonschema.Schema, bool) {
	s, ok := schemas[name]
	return s, ok
}

// Names lists the payload names Lookup understands.
func Names() []string {
	return []string{"art-collection", "art-piece", "creature"}
}
