package yaml

import (
	"encoding/json"
	"fmt"
	"path"
	"reflect"

	"github.com/invopop/jsonschema"
)

// SchemaGenerator builds a JSON schema from Go types, taking descriptions
// from the doc comments of the given packages.
type SchemaGenerator struct {
	v        any
	module   string
	packages []string
}

// NewSchemaGenerator returns a generator for v. Each package is a directory
// relative to the working directory, which must be the root of module.
func NewSchemaGenerator(v any, module string, packages ...string) *SchemaGenerator {
	return &SchemaGenerator{v: v, module: module, packages: packages}
}

func (g *SchemaGenerator) Generate() ([]byte, error) {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
		Namer:          qualifiedName,
	}

	for _, pkg := range g.packages {
		err := r.AddGoComments(g.module, pkg)
		if err != nil {
			return nil, fmt.Errorf("read comments in %s: %w", pkg, err)
		}
	}

	b, err := json.MarshalIndent(r.Reflect(g.v), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}

	return append(b, '\n'), nil
}

// qualifiedName prefixes type names with their package, since several
// packages declare a KeyBinds type.
func qualifiedName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.Name()
	}

	return path.Base(t.PkgPath()) + "." + t.Name()
}
