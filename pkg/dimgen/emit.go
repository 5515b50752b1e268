package dimgen

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MacroPower/dimgen/pkg/dimerrors"
	"github.com/MacroPower/dimgen/pkg/dimgroup"
)

const (
	indent = "    "

	buildFunc       = "DimensionalityLibraryBuild"
	addFunc         = "AddDimensionalityToLibrary"
	registerFunc    = "OCDictionaryAddValue"
	createDictFunc  = "OCDictionaryCreateMutable"
	dimLibrary      = "dimLibrary"
	quantityLibrary = "dimQuantitiesLibrary"
	dimType         = "SIDimensionalityRef"
	dimVar          = "dim"

	// Width of the identifier column in header defines.
	headerNameWidth = 48
)

// Generate reads the table at path and writes the library build function
// to w.
func (g *Generator) Generate(w io.Writer, path string) error {
	t, err := g.Load(path)
	if err != nil {
		return err
	}

	return g.Emit(w, t.Groups)
}

// Emit writes the library build function for groups to w: one
// AddDimensionalityToLibrary call per group, then one registration per
// quantity name, primary first.
func (g *Generator) Emit(w io.Writer, groups []dimgroup.Group) error {
	buf := &bytes.Buffer{}

	fmt.Fprintf(buf, "void %s() {\n", buildFunc)
	fmt.Fprintf(buf, "%s%s = %s(0);\n", indent, dimLibrary, createDictFunc)
	fmt.Fprintf(buf, "%s%s = %s(0);\n", indent, quantityLibrary, createDictFunc)
	fmt.Fprintf(buf, "%s%s %s;\n", indent, dimType, dimVar)
	buf.WriteString("\n")

	for _, grp := range groups {
		ids := make([]string, 0, len(grp.Names))
		for _, name := range grp.Names {
			ids = append(ids, g.canon.Identifier(name))
		}

		fmt.Fprintf(buf, "#pragma mark %s\n", ids[0])

		if len(ids) > 1 {
			fmt.Fprintf(buf, "%s// %s\n", indent, strings.Join(ids[1:], ", "))
		}

		exps := make([]string, 0, len(grp.Signature))
		for _, e := range grp.Signature {
			exps = append(exps, strconv.Itoa(e))
		}

		fmt.Fprintf(buf, "%s%s = %s(%s);\n", indent, dimVar, addFunc, strings.Join(exps, ", "))

		for _, id := range ids {
			fmt.Fprintf(buf, "%s%s(%s, %s, %s);\n", indent, registerFunc, quantityLibrary, id, dimVar)
		}

		buf.WriteString("\n")
	}

	buf.WriteString("}\n")

	return write(w, buf)
}

// GenerateHeader reads the table at path and writes quantity identifier
// defines to w.
func (g *Generator) GenerateHeader(w io.Writer, path string) error {
	t, err := g.Load(path)
	if err != nil {
		return err
	}

	labels := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		labels = append(labels, r.Name)
	}

	return g.EmitHeader(w, labels)
}

// EmitHeader writes one "#define <identifier> STR(<label>)" line per
// distinct identifier, in first appearance order. The label is lower-cased;
// when several labels share an identifier, the first one wins.
func (g *Generator) EmitHeader(w io.Writer, labels []string) error {
	buf := &bytes.Buffer{}
	seen := map[string]bool{}

	for _, label := range labels {
		id := g.canon.Identifier(label)
		if seen[id] {
			continue
		}

		seen[id] = true

		fmt.Fprintf(buf, "#define %-*s STR(%s)\n", headerNameWidth-1, id, strconv.Quote(strings.ToLower(label)))
	}

	return write(w, buf)
}

func write(w io.Writer, buf *bytes.Buffer) error {
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("%w: %w", dimerrors.ErrWrite, err)
	}

	return nil
}
