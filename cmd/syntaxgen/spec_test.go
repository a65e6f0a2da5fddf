package main

import (
	"strings"
	"testing"
)

func TestBuildNodes(t *testing.T) {
	nodes, err := buildNodes(specFile{Nodes: []nodeSpec{
		{Kind: "return_type_descriptor", Fields: []fieldSpec{
			{Name: "returns_keyword", Type: "Token"},
			{Name: "type", Type: "Node"},
		}},
		{Kind: "module_part", Fields: []fieldSpec{
			{Name: "eof_token", Type: "Token", GoName: "EOFToken"},
			{Name: "ret", Type: "ReturnTypeDescriptor", Optional: true},
		}},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes", len(nodes))
	}

	rt := nodes[0]
	if rt.Name != "ReturnTypeDescriptor" || rt.KindConst != "KindReturnTypeDescriptor" {
		t.Errorf("names: %+v", rt)
	}
	if got := rt.Fields[1].Param; got != "type_" {
		t.Errorf("keyword param: got %q", got)
	}

	mp := nodes[1].Fields
	if mp[0].Accessor != "EOFToken" || mp[0].JSONName != "eofToken" {
		t.Errorf("go_name override: %+v", mp[0])
	}
	if !mp[1].Optional || mp[1].Index != 1 {
		t.Errorf("optional field: %+v", mp[1])
	}
}

func TestBuildNodesErrors(t *testing.T) {
	tests := []struct {
		name string
		spec specFile
		want string
	}{
		{"no kind", specFile{Nodes: []nodeSpec{{}}}, "node without kind"},
		{"unknown type", specFile{Nodes: []nodeSpec{{Kind: "a", Fields: []fieldSpec{{Name: "b", Type: "Nope"}}}}}, `a.b: unknown type "Nope"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildNodes(tt.spec)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestRenderRepositoryLayout(t *testing.T) {
	nodes, err := loadSpec("../../syntax/nodes.yaml")
	if err != nil {
		t.Fatal(err)
	}
	src, err := render(nodes)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"// Code generated by syntaxgen from nodes.yaml; DO NOT EDIT.",
		"func (n *ModulePart) EOFToken() *Token {",
		"ReturnTypeDescriptor(returnsKeyword, type_ InternalNode)",
	} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source lacks %q", want)
		}
	}
}
