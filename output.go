package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/pontaoski/logoparse/ast"
	"gopkg.in/yaml.v2"
)

func writeProgram(w io.Writer, format string, program ast.Program) error {
	switch format {
	case "sexpr":
		return program.Dump(w)
	case "repr":
		_, err := fmt.Fprintln(w, repr.String(program, repr.Indent("  ")))
		return err
	case "yaml":
		out, err := yaml.Marshal(program)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}

	return fmt.Errorf("unknown format %q", format)
}
