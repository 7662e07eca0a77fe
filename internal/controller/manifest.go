package controller

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

type listingManifest struct {
	Modules []manifestModule `yaml:"modules"`
}

type manifestModule struct {
	Name    string           `yaml:"name"`
	Path    string           `yaml:"path"`
	Hash    string           `yaml:"sha256"`
	Imports []manifestImport `yaml:"imports"`
}

type manifestImport struct {
	Specifier string `yaml:"specifier"`
	Alias     string `yaml:"alias"`
	Line      int    `yaml:"line"`
}

func newListingManifest(listings []m.ModuleListing) listingManifest {
	manifest := listingManifest{Modules: make([]manifestModule, 0, len(listings))}

	for _, listing := range listings {
		module := manifestModule{
			Name:    listing.Module.BaseName,
			Path:    string(listing.Module.Path),
			Hash:    listing.Hash,
			Imports: make([]manifestImport, 0, len(listing.References)),
		}

		for i, ref := range listing.References {
			module.Imports = append(module.Imports, manifestImport{
				Specifier: ref.Specifier,
				Alias:     string(listing.Aliases[i]),
				Line:      ref.Line,
			})
		}

		manifest.Modules = append(manifest.Modules, module)
	}

	return manifest
}

// writeListingYAML prints the listing as a YAML document.
func writeListingYAML(w io.Writer, listings []m.ModuleListing) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(newListingManifest(listings)); err != nil {
		return fmt.Errorf("failed to encode listing: %w", err)
	}

	return enc.Close()
}
