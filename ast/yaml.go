package ast

import (
	"gopkg.in/yaml.v2"
)

// Composite nodes encode as a single-key mapping whose key is the source
// keyword; zero-argument nodes encode as the bare keyword.

func (v Literal) MarshalYAML() (interface{}, error) {
	return yaml.MapSlice{{Key: "literal", Value: string(v)}}, nil
}

func (v Variable) MarshalYAML() (interface{}, error) {
	return yaml.MapSlice{{Key: "variable", Value: string(v)}}, nil
}

func (v XCor) MarshalYAML() (interface{}, error)    { return "XCOR", nil }
func (v YCor) MarshalYAML() (interface{}, error)    { return "YCOR", nil }
func (v Heading) MarshalYAML() (interface{}, error) { return "HEADING", nil }
func (v Color) MarshalYAML() (interface{}, error)   { return "COLOR", nil }
func (v PenUp) MarshalYAML() (interface{}, error)   { return "PENUP", nil }
func (v PenDown) MarshalYAML() (interface{}, error) { return "PENDOWN", nil }
func (v Empty) MarshalYAML() (interface{}, error)   { return "EMPTY", nil }
func (v Newline) MarshalYAML() (interface{}, error) { return "NEWLINE", nil }

func (v UnaryExpr) MarshalYAML() (interface{}, error) {
	return yaml.MapSlice{{Key: v.Op.String(), Value: v.Child}}, nil
}

func (v BinaryExpr) MarshalYAML() (interface{}, error) {
	switch v.Op.Kind() {
	case Conditional:
		return yaml.MapSlice{{Key: v.Op.String(), Value: yaml.MapSlice{
			{Key: "condition", Value: v.LHS},
			{Key: "body", Value: v.RHS},
		}}}, nil
	case Procedure:
		return yaml.MapSlice{{Key: v.Op.String(), Value: yaml.MapSlice{
			{Key: "name", Value: v.Name},
			{Key: "parameters", Value: v.LHS},
			{Key: "body", Value: v.RHS},
		}}}, nil
	}
	return yaml.MapSlice{{Key: v.Op.String(), Value: []Node{v.LHS, v.RHS}}}, nil
}

func (v Body) MarshalYAML() (interface{}, error) {
	if v == nil {
		return []Node{}, nil
	}
	return []Node(v), nil
}

func (v Caller) MarshalYAML() (interface{}, error) {
	return yaml.MapSlice{{Key: "call", Value: yaml.MapSlice{
		{Key: "name", Value: v.Name},
		{Key: "arguments", Value: v.Args},
	}}}, nil
}

func (p Program) MarshalYAML() (interface{}, error) {
	var procs yaml.MapSlice
	for _, name := range p.ProcedureNames() {
		procs = append(procs, yaml.MapItem{Key: name, Value: p.Procedures[name].LHS})
	}
	return yaml.MapSlice{
		{Key: "program", Value: p.Body},
		{Key: "procedures", Value: procs},
	}, nil
}
