package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mna/mainer"

	"github.com/BogCyg/BCForth/config"
	"github.com/BogCyg/BCForth/forth"
	"github.com/BogCyg/BCForth/token"
)

const binName = "forth"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] [<file>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] [<file>...]
       %[1]s -h|--help
       %[1]s -v|--version

Interactive, incrementally-compiling Forth environment.

Any <file> arguments are loaded and run, in order, before the prompt
starts (or, with -noprompt, instead of starting it).

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.
       --noraw                   Disable raw terminal IO.
       --noprompt                Run the given files then exit, no REPL.

Once at the prompt, besides any defined word, these are recognised
(case-insensitive, matched anywhere in the first token):
       BYE, EXIT                 Leave the environment.
       LOAD                      Load and run a file, prompting for its path.
       WORDS                     List every defined word.
       HELP                      Show this help.
`, binName)

	helpBanner = `BCForth — type Forth, get an answer. BYE or EXIT to quit, WORDS to browse
the dictionary, LOAD to run a file.
`
)

// Cmd is the forth REPL's entry point, following the mna-nenuphar
// cmd/<name> + flags-struct precedent.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help     bool `flag:"h,help"`
	Version  bool `flag:"v,version"`
	NoRawIO  bool `flag:"noraw"`
	NoPrompt bool `flag:"noprompt"`

	args []string
}

func (c *Cmd) SetArgs(args []string)          { c.args = args }
func (c *Cmd) SetFlags(flags map[string]bool) {}

func (c *Cmd) Validate() error { return nil }

// Main wires flags, terminal mode and the forth.Environment together and
// runs either the file arguments, the interactive prompt, or both in
// sequence (spec §6's REPL surface and file-module protocol).
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{EnvVars: false, EnvPrefix: binName + "_"}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "Error: %v\n", err)
		return mainer.Failure
	}
	e := forth.New(cfg, forth.Output(stdio.Stdout))

	for _, name := range c.args {
		if err := runFile(e, name); err != nil {
			fmt.Fprintf(stdio.Stderr, "Error: %v\n", err)
			return mainer.Failure
		}
	}

	if c.NoPrompt {
		return mainer.Success
	}

	rawtty, tearDown := setupIO(c.NoRawIO)
	if tearDown != nil {
		defer tearDown()
	}
	_ = rawtty

	r := newPromptRepl(e, stdio.Stdin, stdio.Stdout, stdio.Stderr)
	r.run()
	return mainer.Success
}

func setupIO(noRaw bool) (bool, func()) {
	if noRaw {
		return false, nil
	}
	tearDown, err := setRawIO()
	if err != nil {
		return false, nil
	}
	return true, tearDown
}

// runFile feeds an entire file through the tokenizer and the
// compiler/interpreter (spec §6's file-module protocol).
func runFile(e *forth.Environment, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	t := token.New(f)
	for {
		toks, err := t.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := e.Process(toks); err != nil {
			return err
		}
	}
}

// promptRepl implements the REPL loop of spec §6: print OK:, read one
// logical unit of tokens, dispatch either to a handful of shell-level
// commands or into the compiler/interpreter.
type promptRepl struct {
	e      *forth.Environment
	tok    *token.Tokenizer
	out    io.Writer
	errOut io.Writer
}

func newPromptRepl(e *forth.Environment, in io.Reader, out, errOut io.Writer) *promptRepl {
	return &promptRepl{e: e, tok: token.New(in), out: out, errOut: errOut}
}

func (r *promptRepl) run() {
	fmt.Fprint(r.out, helpBanner)
	for {
		fmt.Fprint(r.out, "OK:")
		toks, err := r.tok.Next()
		if err == io.EOF {
			fmt.Fprintln(r.out)
			return
		}
		if err != nil {
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
			continue
		}
		if len(toks) == 0 {
			continue
		}
		if r.dispatchShellCommand(toks) {
			continue
		}
		if err := r.e.Process(toks); err != nil {
			fmt.Fprintf(r.errOut, "Error: %v\n", err)
		}
	}
}

// dispatchShellCommand handles the REPL-level commands of spec §6 — "case-
// insensitive substring match on the first token" — and reports whether it
// handled toks so the caller skips forwarding them to the environment.
func (r *promptRepl) dispatchShellCommand(toks []string) bool {
	first := toks[0]
	switch {
	case strings.Contains(first, "BYE"), strings.Contains(first, "EXIT"):
		os.Exit(0)
		return true
	case strings.Contains(first, "HELP"):
		fmt.Fprint(r.out, longUsage)
		return true
	case strings.Contains(first, "WORDS"):
		r.listWords()
		return true
	case strings.Contains(first, "LOAD"):
		r.loadFile()
		return true
	}
	return false
}

func (r *promptRepl) listWords() {
	for _, entry := range r.e.Dictionary().Words() {
		flag := " "
		if entry.Immediate {
			flag = "*"
		}
		if entry.Comment != "" {
			fmt.Fprintf(r.out, "%s%s  ( %s )\n", flag, entry.Name, entry.Comment)
		} else {
			fmt.Fprintf(r.out, "%s%s\n", flag, entry.Name)
		}
	}
}

// loadFile prompts for a path on its own line, read without the
// tokenizer's case-folding so the path's case survives, then runs it.
func (r *promptRepl) loadFile() {
	fmt.Fprint(r.out, "Path: ")
	r.tok.Fold = false
	toks, err := r.tok.Next()
	r.tok.Fold = true
	if err != nil || len(toks) == 0 {
		fmt.Fprintln(r.errOut, "Error: no path given")
		return
	}
	if err := runFile(r.e, toks[0]); err != nil {
		fmt.Fprintf(r.errOut, "Error: %v\n", err)
	}
}
