package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomasnyberg/cypher-language-support/cypher"
	"github.com/tomasnyberg/cypher-language-support/format"
	"github.com/tomasnyberg/cypher-language-support/token"
)

var canonCmd = &cobra.Command{
	Use:   "canon [file]",
	Short: "Print the canonical form of a query",
	Long: `canon prints the canonical form of a query: all tokens in lower case,
separated by single spaces, without comments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, src, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		canon, err := format.Canonical(name, src)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), canon)
		return err
	},
}

var equivCmd = &cobra.Command{
	Use:   "equiv <file> <file>",
	Short: "Report whether two queries are equivalent",
	Long: `equiv compares the canonical forms of two queries. If they differ,
it prints a token diff and exits with status 1.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var src [2][]byte
		for i, name := range args {
			var err error
			if src[i], err = os.ReadFile(name); err != nil {
				return err
			}
		}
		same, diff, err := format.Equivalent(args[0], src[0], args[1], src[1])
		if err != nil || same {
			return err
		}
		out := cmd.OutOrStdout()
		color.New(color.Bold).Fprintf(out, "%s and %s differ:\n", args[0], args[1])
		fmt.Fprintln(out, diff)
		return errChanged
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the syntax tree of a query",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, src, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		tree, err := cypher.Parse(bytes.NewReader(src))
		if err != nil {
			return err
		}
		return cypher.Fdump(cmd.OutOrStdout(), tree)
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the tokens of a query, including whitespace and comments",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, src, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		stream, err := token.Scan(bytes.NewReader(src))
		if err != nil {
			return err
		}
		hidden := color.New(color.Faint)
		out := cmd.OutOrStdout()
		for _, tok := range stream.Tokens() {
			line := fmt.Sprintf("%d:%d\t%v\n", tok.Pos.Line, tok.Pos.Column, tok)
			if tok.Channel == token.Hidden {
				hidden.Fprint(out, line)
				continue
			}
			fmt.Fprint(out, line)
		}
		return nil
	},
}

// readInput returns the contents of the file named by args, or of the
// standard input if there is none.
func readInput(cmd *cobra.Command, args []string) (name string, src []byte, err error) {
	if len(args) == 0 {
		src, err = io.ReadAll(cmd.InOrStdin())
		return "<standard input>", src, err
	}
	src, err = os.ReadFile(args[0])
	return args[0], src, err
}
