package main

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"params": func(fields []field) string {
		var names []string
		for _, f := range fields {
			names = append(names, f.Param)
		}
		return strings.Join(names, ", ")
	},
	"accessor": accessorSource,
}

var genTemplate = template.Must(template.New("nodes").Funcs(funcs).Parse(`// Code generated by syntaxgen from nodes.yaml; DO NOT EDIT.

package syntax

var nodeSlots = map[SyntaxKind][]slot{
{{- range .}}
	{{.KindConst}}: {
	{{- range .Fields}}
		{name: "{{.JSONName}}", optional: {{.Optional}}},
	{{- end}}
	},
{{- end}}
}

var facadeConstructors = map[SyntaxKind]func(*InternalBranch, int, Node) Node{
	KindNodeList:          newNodeList,
	KindSeparatedNodeList: newSeparatedNodeList,
{{- range .}}
	{{.KindConst}}: new{{.Name}},
{{- end}}
}
{{range $n := .}}
// {{.Name}} is the facade for {{.KindConst}}.
type {{.Name}} struct {
	NonTerminalNode
}

func new{{.Name}}(internal *InternalBranch, position int, parent Node) Node {
	n := &{{.Name}}{}
	n.init(n, internal, position, parent)
	return n
}
{{range .Fields}}
{{accessor $n .}}
{{end}}
// {{.Name}} builds a {{.KindConst}} node.
func (b *Builder) {{.Name}}({{params .Fields}} InternalNode) *InternalBranch {
	return b.Node({{.KindConst}}, {{params .Fields}})
}
{{end}}`))

func accessorSource(n node, f field) string {
	recv := fmt.Sprintf("func (n *%s) %s()", n.Name, f.Accessor)
	child := fmt.Sprintf("n.ChildAt(%d)", f.Index)

	switch {
	case f.Type == "Token" && f.Optional:
		return fmt.Sprintf("%s (*Token, bool) {\n\treturn optionalToken(%s)\n}", recv, child)
	case f.Type == "Token":
		return fmt.Sprintf("%s *Token {\n\treturn %s.(*Token)\n}", recv, child)
	case f.Type == "Node" && f.Optional:
		return fmt.Sprintf("%s (Node, bool) {\n\tc := %s\n\treturn c, c != nil\n}", recv, child)
	case f.Type == "Node":
		return fmt.Sprintf("%s Node {\n\treturn %s\n}", recv, child)
	case f.Optional:
		return fmt.Sprintf("%s (*%s, bool) {\n\tc, ok := %s.(*%s)\n\treturn c, ok\n}", recv, f.Type, child, f.Type)
	default:
		return fmt.Sprintf("%s *%s {\n\treturn %s.(*%s)\n}", recv, f.Type, child, f.Type)
	}
}

func render(nodes []node) ([]byte, error) {
	var buf bytes.Buffer
	if err := genTemplate.Execute(&buf, nodes); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}
