package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote":     func(s string) string { return fmt.Sprintf("%q", s) },
	"quoteList": quoteList,
	"join":      strings.Join,
	"fieldRefs": func(names []string) string {
		refs := make([]string, len(names))
		for i, name := range names {
			refs[i] = "n." + name
		}
		return strings.Join(refs, ", ")
	},
}

// quoteList renders items as comma-separated Go string literals.
func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(quoted, ", ")
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	fileTmpl +
		branchTmpl +
		levelTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// fileData holds the declarations of one generated file.
type fileData struct {
	Package     string
	ModelImport string
	Decls       []declData
}

// declData is either a branch or a collection level.
type declData struct {
	Branch *branchData
	Level  *levelData
}

// branchData holds pre-computed data for the branch template.
type branchData struct {
	Name        string
	Path        string
	Description string
	Fields      []fieldData
}

// fieldData describes one child of a branch.
type fieldData struct {
	Name      string
	GoType    string
	Leaf      bool
	Ctor      string // model constructor for leaves, New<Type> for branches
	ValueType string
	Options   []string
}

// levelData holds pre-computed data for a collection level.
type levelData struct {
	Name    string
	Path    string
	Scope   string // enclosing dimension for inner levels, e.g. "Row"
	Elem    string
	Members []string
	Range   string
	Low     int
	High    int
}

// --- Template definitions ---

const fileTmpl = `{{define "file"}}// Code generated by vss-gen. DO NOT EDIT.

package {{.Package}}

import "{{.ModelImport}}"
{{range .Decls}}
{{- if .Level}}{{template "level" .Level}}{{else}}{{template "branch" .Branch}}{{end}}
{{- end}}
{{- end}}`

const branchTmpl = `{{define "branch"}}
// {{.Name}} models the {{.Path}} branch.
{{- if .Description}}
//
// {{.Description}}
{{- end}}
type {{.Name}} struct {
*model.Branch
{{- if .Fields}}
{{range .Fields}}
{{.Name}} {{.GoType}}
{{- end}}
{{- end}}
}

// New{{.Name}} creates a {{.Name}} named name and attaches it to parent.
func New{{.Name}}(name string, parent model.Node) *{{.Name}} {
n := &{{.Name}}{}
n.Branch = model.NewBranch(n, name, parent)
{{- range .Fields}}
{{- if .Leaf}}
{{- if .Options}}
n.{{.Name}} = model.{{.Ctor}}[{{.ValueType}}]({{quote .Name}}, n,
{{- range .Options}}
{{.}},
{{- end}}
)
{{- else}}
n.{{.Name}} = model.{{.Ctor}}[{{.ValueType}}]({{quote .Name}}, n)
{{- end}}
{{- else}}
n.{{.Name}} = {{.Ctor}}({{quote .Name}}, n)
{{- end}}
{{- end}}
return n
}
{{end}}`

const levelTmpl = `{{define "level"}}
{{- if .Scope}}
// {{.Name}} holds the instances of the {{.Path}} branch within one {{.Scope}}.
{{- else}}
// {{.Name}} holds the instances of the {{.Path}} branch.
{{- end}}
type {{.Name}} struct {
*model.Branch
{{range .Members}}
{{.}} *{{$.Elem}}
{{- end}}

{{- if .Range}}

instances *model.Range[*{{.Elem}}]
{{- else}}

instances *model.Dictionary[*{{.Elem}}]
{{- end}}
}

// New{{.Name}} creates a {{.Name}} named name and attaches it to parent.
func New{{.Name}}(name string, parent model.Node) *{{.Name}} {
n := &{{.Name}}{}
n.Branch = model.NewBranch(n, name, parent)
{{- range .Members}}
n.{{.}} = New{{$.Elem}}({{quote .}}, n)
{{- end}}
{{- if .Range}}
n.instances = model.NewRange(n, {{quote .Range}}, {{.Low}}, {{fieldRefs .Members}})
{{- else}}
n.instances = model.NewDictionary(n, []string{ {{- quoteList .Members -}} }, {{fieldRefs .Members}})
{{- end}}
return n
}
{{if .Range}}
// {{.Range}} returns the instance with the given {{.Range}} index in [{{.Low}}, {{.High}}].
func (n *{{.Name}}) {{.Range}}(index int) (*{{.Elem}}, error) {
return n.instances.At(index)
}
{{- else}}
// Element returns the instance named key, one of {{join .Members ", "}}.
func (n *{{.Name}}) Element(key string) (*{{.Elem}}, error) {
return n.instances.Element(key)
}
{{- end}}
{{end}}`
