package main

import (
	"fmt"
	"go/token"
	"os"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"
)

type specFile struct {
	Nodes []nodeSpec `yaml:"nodes"`
}

type nodeSpec struct {
	Kind   string      `yaml:"kind"`
	Fields []fieldSpec `yaml:"fields"`
}

type fieldSpec struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
	GoName   string `yaml:"go_name"`
}

// node is the template view of one layout entry.
type node struct {
	Name      string
	KindConst string
	Fields    []field
}

type field struct {
	Index    int
	Accessor string
	JSONName string
	Param    string
	Type     string
	Optional bool
}

func loadSpec(path string) ([]node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var spec specFile
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return buildNodes(spec)
}

func buildNodes(spec specFile) ([]node, error) {
	known := make(map[string]bool)
	for _, n := range spec.Nodes {
		known[strcase.ToCamel(n.Kind)] = true
	}

	var nodes []node
	for _, n := range spec.Nodes {
		if n.Kind == "" {
			return nil, fmt.Errorf("node without kind")
		}
		out := node{
			Name:      strcase.ToCamel(n.Kind),
			KindConst: "Kind" + strcase.ToCamel(n.Kind),
		}
		for i, f := range n.Fields {
			switch f.Type {
			case "Token", "Node", "NodeList", "SeparatedNodeList":
			default:
				if !known[f.Type] {
					return nil, fmt.Errorf("%s.%s: unknown type %q", n.Kind, f.Name, f.Type)
				}
			}
			accessor := f.GoName
			if accessor == "" {
				accessor = strcase.ToCamel(f.Name)
			}
			param := strcase.ToLowerCamel(f.Name)
			if token.Lookup(param).IsKeyword() {
				param += "_"
			}
			out.Fields = append(out.Fields, field{
				Index:    i,
				Accessor: accessor,
				JSONName: strcase.ToLowerCamel(f.Name),
				Param:    param,
				Type:     f.Type,
				Optional: f.Optional,
			})
		}
		nodes = append(nodes, out)
	}
	return nodes, nil
}
