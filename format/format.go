package format

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/tomasnyberg/cypher-language-support/cypher"
)

// Pipe reads Cypher source code from in, formats it, and writes the result to out.
// The format can be slightly tweaked using opts. (See [cypher.Options].)
// The filename argument is used to set the “filename” in error messages.
func Pipe(filename string, out io.Writer, in io.Reader, opts cypher.Options) error {
	src, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	tree, err := parse(filename, src)
	if err != nil {
		return err
	}
	return cypher.Fprint(out, tree, opts)
}

// Source formats src and returns the result.
func Source(filename string, src []byte, opts cypher.Options) ([]byte, error) {
	var b bytes.Buffer
	if err := Pipe(filename, &b, bytes.NewReader(src), opts); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// Canonical returns the canonical form of src. (See [cypher.Canonical].)
func Canonical(filename string, src []byte) (string, error) {
	tree, err := parse(filename, src)
	if err != nil {
		return "", err
	}
	return cypher.Canonical(tree), nil
}

// Equivalent reports whether a and b are the same query up to layout,
// comments, keyword case and MERGE action order. If they are not, it
// also returns a token diff of their canonical forms. The names are
// used in error messages.
func Equivalent(nameA string, a []byte, nameB string, b []byte) (bool, string, error) {
	ca, err := Canonical(nameA, a)
	if err != nil {
		return false, "", err
	}
	cb, err := Canonical(nameB, b)
	if err != nil {
		return false, "", err
	}
	if ca == cb {
		return true, "", nil
	}
	return false, Diff(ca, cb), nil
}

// Diff returns a word diff of two canonical forms. Removed tokens
// are shown as [-tok-], added tokens as {+tok+}.
func Diff(from, to string) string {
	// Diff whole tokens rather than characters: one token per line.
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(toLines(from), toLines(to))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var words []string
	for _, d := range diffs {
		text := strings.Join(strings.Fields(d.Text), " ")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			words = append(words, text)
		case diffmatchpatch.DiffDelete:
			words = append(words, "[-"+text+"-]")
		case diffmatchpatch.DiffInsert:
			words = append(words, "{+"+text+"+}")
		}
	}
	return strings.Join(words, " ")
}

func toLines(canonical string) string {
	if canonical == "" {
		return ""
	}
	return strings.ReplaceAll(canonical, " ", "\n") + "\n"
}

func parse(filename string, src []byte) (*cypher.Tree, error) {
	tree, err := cypher.Parse(bytes.NewReader(src))
	if se, ok := err.(*cypher.SyntaxError); ok {
		return nil, fmt.Errorf("%s:%d:%d: %v", filename, se.Line, se.Column, se.Err)
	} else if err != nil {
		return nil, err
	}
	return tree, nil
}
