package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"rsc.io/diff"

	"github.com/tomasnyberg/cypher-language-support/format"
)

var rootCmd = &cobra.Command{
	Use:   "cypherfmt [flags] [path ...]",
	Short: "Format Cypher queries",
	Long: `cypherfmt formats Cypher queries.

Without an explicit path, it formats the standard input. Given a file,
it operates on that file; given a directory, it operates on all files
with a Cypher extension in that directory, recursively.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFormat,
}

var (
	inPlace   bool
	listFiles bool
	showDiff  bool
	checkOnly bool
)

// errChanged makes the process exit with status 1 without a message.
var errChanged = errors.New("formatting changes required")

func init() {
	rootCmd.Flags().BoolVarP(&inPlace, "write", "w", false, "write result to (source) file instead of stdout")
	rootCmd.Flags().BoolVarP(&listFiles, "list", "l", false, "list files whose formatting differs from cypherfmt's")
	rootCmd.Flags().BoolVarP(&showDiff, "diff", "d", false, "display diffs instead of rewriting files")
	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "exit with status 1 if any file is not formatted")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		mode, err := cmd.Flags().GetString("color")
		if err != nil {
			return err
		}
		return setColorMode(mode)
	}

	rootCmd.AddCommand(canonCmd, equivCmd, treeCmd, tokensCmd)
}

func main() {
	log.SetPrefix("cypherfmt: ")
	log.SetFlags(0)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errChanged) {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func setColorMode(mode string) error {
	switch mode {
	case "auto":
		color.NoColor = !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("unsupported color mode %q (auto|on|off)", mode)
	}
	return nil
}

func runFormat(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if inPlace {
			return errors.New("cannot use -w with standard input")
		}
		cfg, err := findConfig(".")
		if err != nil {
			return err
		}
		src, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		res := formatSource("<standard input>", src, cfg)
		return report(cmd.OutOrStdout(), []result{res})
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), formatFiles(files))
}

// result is the outcome of formatting one input.
type result struct {
	path     string
	perm     fs.FileMode
	src, out []byte
	err      error
}

func (r result) changed() bool { return !bytes.Equal(r.src, r.out) }

type file struct {
	path string
	perm fs.FileMode
}

// collectFiles expands directories among paths into the files they
// contain. Files named explicitly are always included.
func collectFiles(paths []string) ([]file, error) {
	var files []file
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, file{path, fi.Mode().Perm()})
			continue
		}

		err = filepath.WalkDir(path, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			cfg, err := findConfig(filepath.Dir(path))
			if err != nil {
				return err
			}
			if !cfg.matches(d.Name()) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			files = append(files, file{path, info.Mode().Perm()})
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// formatFiles formats files concurrently. Results are in the order of files.
func formatFiles(files []file) []result {
	results := make([]result, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			res := result{path: f.path, perm: f.perm}
			cfg, err := findConfig(filepath.Dir(f.path))
			if err != nil {
				res.err = err
				results[i] = res
				return nil
			}
			src, err := os.ReadFile(f.path)
			if err != nil {
				res.err = err
				results[i] = res
				return nil
			}
			res = formatSource(f.path, src, cfg)
			res.perm = f.perm
			results[i] = res
			return nil
		})
	}
	g.Wait()
	return results
}

func formatSource(path string, src []byte, cfg *config) result {
	res := result{path: path, src: src}
	res.out, res.err = format.Source(path, src, cfg.options(defaultOptions))
	return res
}

// report prints or writes the results the way the flags ask for.
func report(w io.Writer, results []result) error {
	var failed, changed bool
	for _, res := range results {
		if res.err != nil {
			log.Print(res.err)
			failed = true
			continue
		}
		if res.changed() {
			changed = true
		}

		if !listFiles && !checkOnly && !showDiff && !inPlace {
			w.Write(res.out)
			continue
		}
		if !res.changed() {
			continue
		}
		if listFiles || checkOnly {
			fmt.Fprintln(w, res.path)
		}
		if showDiff {
			printDiff(w, res)
		}
		if inPlace {
			if err := os.WriteFile(res.path, res.out, res.perm); err != nil {
				log.Print(err)
				failed = true
			}
		}
	}

	if failed {
		return errors.New("failed to format some files")
	}
	if checkOnly && changed {
		return errChanged
	}
	return nil
}

var (
	delColor  = color.New(color.FgRed)
	addColor  = color.New(color.FgGreen)
	headColor = color.New(color.Bold)
)

func printDiff(w io.Writer, res result) {
	headColor.Fprintf(w, "diff %s %s\n", res.path+".orig", res.path)
	d := diff.Format(string(res.src), string(res.out))
	for _, line := range strings.SplitAfter(d, "\n") {
		switch {
		case strings.HasPrefix(line, "-"):
			delColor.Fprint(w, line)
		case strings.HasPrefix(line, "+"):
			addColor.Fprint(w, line)
		default:
			fmt.Fprint(w, line)
		}
	}
}
