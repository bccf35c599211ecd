// adtGen turns a small algebraic data type description into Go sum types:
// an interface with an unexported marker method plus one type per case.
//
//	adtGen INPUT OUTPUT PACKAGE
package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type TypeDecls struct {
	Declarations []*Declaration `@@*`
}

type TCase struct {
	Name string `@Ident "of"`
	Kind string `(@Ident | @String | @RawString)`
}

type Declaration struct {
	Name  string   `"type" @Ident "="`
	Plain *string  `(  (@Ident | @String | @RawString)`
	Many  *[]TCase ` | ("|" (@@))*)`
	I     struct{} `";"`
}

func (t *TypeDecls) IsSumType(name string) bool {
	for _, decls := range t.Declarations {
		if decls.Name == name && decls.Many != nil {
			return true
		}
	}
	return false
}

// goType accepts quoted kinds so that composite types such as
// "struct { Op UnaryOp; Child Node }" can be spelled in the input.
func goType(kind string) string {
	if unquoted, err := strconv.Unquote(kind); err == nil {
		return unquoted
	}
	return kind
}

func GenerateDecls(source, pkgname string, t *TypeDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment(fmt.Sprintf("Code generated by adtgen from %s. DO NOT EDIT.", source))

	for _, decl := range t.Declarations {

		if decl.Plain != nil {
			f.Type().Id(decl.Name).Id(goType(*decl.Plain))
		} else if decl.Many != nil {
			f.Type().Id(decl.Name).Interface(
				Id("is_" + decl.Name).Params(),
			)

			for _, it := range *decl.Many {
				kind := goType(it.Kind)
				if t.IsSumType(kind) {
					f.Type().Id(it.Name).Struct(Id(kind))
				} else {
					f.Type().Id(it.Name).Id(kind)
				}

				f.Func().Params(Id("v").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
			}
		}
	}

	return fmt.Sprintf("%#v", f)
}

const usage = "usage: adtGen INPUT OUTPUT PACKAGE"

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected 3 arguments, got %d", len(args))
	}
	in, out, pkgname := args[0], args[1], args[2]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		return err
	}

	parser := participle.MustBuild(&TypeDecls{})
	ast := TypeDecls{}
	if err := parser.ParseBytes(inData, &ast); err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	return ioutil.WriteFile(out, []byte(GenerateDecls(filepath.Base(in), pkgname, &ast)), 0644)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "adtGen: %v\n%s\n", err, usage)
		os.Exit(1)
	}
}
