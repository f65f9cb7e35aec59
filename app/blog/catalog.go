package blog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed sources.yml
var catalogData []byte

type catalog struct {
	Sources    []Source   `yaml:"sources"`
	Categories []Category `yaml:"categories"`
}

var builtinCatalog catalog

func init() {
	if err := yaml.Unmarshal(catalogData, &builtinCatalog); err != nil {
		panic(fmt.Sprintf("invalid embedded source catalog: %v", err))
	}
}

// BuiltinSources returns the fixed source catalog in declaration order.
func BuiltinSources() []Source {
	sources := make([]Source, len(builtinCatalog.Sources))
	copy(sources, builtinCatalog.Sources)
	return sources
}

// Categories returns the category catalog, including the synthetic "all" bucket.
func Categories() []Category {
	categories := make([]Category, len(builtinCatalog.Categories))
	copy(categories, builtinCatalog.Categories)
	return categories
}
