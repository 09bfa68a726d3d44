package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"
)

func main() {
	schemaPath := flag.String("schema", "", "Path to the VSS schema YAML")
	outputDir := flag.String("output", "", "Output directory for generated Go files")
	pkg := flag.String("package", "vss", "Package name of the generated files")
	modelImport := flag.String("model-import", DefaultModelImport, "Import path of the node runtime")
	flag.Parse()

	if *schemaPath == "" || *outputDir == "" {
		fmt.Fprintln(os.Stderr, "Usage: vss-gen -schema <path> -output <dir> [-package <name>] [-model-import <path>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*schemaPath, *outputDir, *pkg, *modelImport); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(schemaPath, outputDir, pkg, modelImport string) error {
	schema, err := LoadSchema(schemaPath)
	if err != nil {
		return fmt.Errorf("loading schema: %w", err)
	}

	gen := &Generator{Package: pkg, ModelImport: modelImport}
	files, err := gen.Generate(schema)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	// Drop files of branches that no longer exist in the schema.
	if err := removeStale(outputDir, files); err != nil {
		return err
	}

	for _, f := range files {
		outPath := filepath.Join(outputDir, f.Name)
		if err := writeFormatted(outPath, f.Code); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		fmt.Printf("  generated %s\n", outPath)
	}
	return nil
}

func removeStale(dir string, files []GeneratedFile) error {
	keep := make(map[string]bool, len(files))
	for _, f := range files {
		keep[f.Name] = true
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*_gen.go"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if keep[filepath.Base(m)] {
			continue
		}
		data, err := os.ReadFile(m)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(string(data), "// Code generated by vss-gen.") {
			continue
		}
		if err := os.Remove(m); err != nil {
			return fmt.Errorf("removing stale %s: %w", filepath.Base(m), err)
		}
	}
	return nil
}

// writeFormatted formats Go source code with goimports and writes it to a file.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Write unformatted so you can debug the generator output
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
