package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/barrelgen/internal/model"
)

func testListings() []m.ModuleListing {
	return []m.ModuleListing{
		{
			Module:     m.SourceModule{Path: "/registry/button.ts", BaseName: "button.ts"},
			Hash:       "abc123",
			References: []m.ImportReference{{Specifier: "react", Line: 1}, {Specifier: "./icons", Line: 2}},
			Aliases:    []m.Alias{"_react", "_icons"},
		},
		{
			Module: m.SourceModule{Path: "/registry/icons.ts", BaseName: "icons.ts"},
			Hash:   "def456",
		},
	}
}

func TestWriteListingYAML(t *testing.T) {
	var buf bytes.Buffer

	if err := writeListingYAML(&buf, testListings()); err != nil {
		t.Fatalf("writeListingYAML() error = %v", err)
	}

	var got listingManifest
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}

	if len(got.Modules) != 2 {
		t.Fatalf("modules = %d, want 2\n%s", len(got.Modules), buf.String())
	}

	button := got.Modules[0]
	if button.Name != "button.ts" || button.Path != "/registry/button.ts" || button.Hash != "abc123" {
		t.Fatalf("button module = %+v", button)
	}

	if len(button.Imports) != 2 || button.Imports[1] != (manifestImport{Specifier: "./icons", Alias: "_icons", Line: 2}) {
		t.Fatalf("button imports = %+v", button.Imports)
	}

	if got.Modules[1].Imports == nil || len(got.Modules[1].Imports) != 0 {
		t.Fatalf("icons imports = %#v, want empty list", got.Modules[1].Imports)
	}
}

func TestWriteListingYAML_Empty(t *testing.T) {
	var buf bytes.Buffer

	if err := writeListingYAML(&buf, nil); err != nil {
		t.Fatalf("writeListingYAML() error = %v", err)
	}

	if got := buf.String(); got != "modules: []\n" {
		t.Fatalf("writeListingYAML(empty) = %q", got)
	}
}

func TestSimpleUI_DisplayListing_YAML(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	if err := ui.Start(WithListMode(), WithOutputFormat(m.FormatYAML)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := ui.DisplayListing(testListings(), nil); err != nil {
		t.Fatalf("DisplayListing() error = %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte("specifier: ./icons")) {
		t.Fatalf("output missing YAML import\n%s", buf.String())
	}
}

func TestTUI_DisplayListing_YAML(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	if err := tui.Start(WithListMode(), WithOutputFormat(m.FormatYAML)); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := tui.DisplayListing(testListings(), nil); err != nil {
		t.Fatalf("DisplayListing() error = %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte("alias: _react")) {
		t.Fatalf("output missing YAML alias\n%s", buf.String())
	}
}
