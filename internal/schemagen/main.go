// Command schemagen writes the JSON schema of the configuration file.
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/macropower/aspect/pkg/config"
	"github.com/macropower/aspect/pkg/yaml"
)

const module = "github.com/macropower/aspect"

func main() {
	out := pflag.StringP("out", "o", "schema.json", "output file for the generated schema")
	root := pflag.String("root", ".", "module root directory")
	pflag.Parse()

	outPath, err := filepath.Abs(*out)
	if err != nil {
		log.Fatalf("resolve output path: %v", err)
	}

	// Comment lookups are keyed by package path relative to the module root.
	err = os.Chdir(*root)
	if err != nil {
		log.Fatalf("change directory: %v", err)
	}

	gen := yaml.NewSchemaGenerator(config.New(), module,
		"./pkg/config",
		"./pkg/keys",
		"./pkg/preset",
		"./pkg/screen",
		"./pkg/screenlist",
		"./pkg/ui",
	)

	b, err := gen.Generate()
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	err = os.WriteFile(outPath, b, 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
