// Package cli implements the karst value workbench: an interactive host
// that embeds a runtime and exposes its boxed-value primitives line by
// line. It exists for poking at the interop layer, not for scripting.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	karst "github.com/karstlang/karst/pkg/embed"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorCyan  = "\033[36m"
)

// Workbench drives one runtime over a reader/writer pair.
type Workbench struct {
	rt    *karst.Runtime
	out   io.Writer
	color bool
}

// New builds a workbench around an initialized runtime. Color is enabled
// only when stdout is a terminal.
func New(rt *karst.Runtime, out io.Writer) *Workbench {
	color := false
	if f, ok := out.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Workbench{rt: rt, out: out, color: color}
}

// Run reads commands until EOF or the quit command.
func (w *Workbench) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	w.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		if line != "" {
			w.dispatch(line)
		}
		w.prompt()
	}
	return scanner.Err()
}

func (w *Workbench) prompt() {
	if w.color {
		fmt.Fprint(w.out, colorCyan+"karst> "+colorReset)
	}
}

func (w *Workbench) dispatch(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "complex":
		err = w.complexCmd(args)
	case "polar":
		err = w.polarCmd(args)
	case "rational":
		err = w.rationalCmd(args)
	case "match":
		err = w.matchCmd(args)
	case "help":
		w.help()
	default:
		err = fmt.Errorf("unknown command %q (try help)", cmd)
	}
	if err != nil {
		w.fail(err)
	}
}

func (w *Workbench) help() {
	fmt.Fprintln(w.out, `commands:
  complex RE IM      build a complex from rectangular parts
  polar ABS ARG      build a complex from polar form
  rational NUM DEN   build a reduced fraction
  match PATTERN TEXT run a regexp against text
  quit`)
}

func (w *Workbench) fail(err error) {
	if w.color {
		fmt.Fprintln(w.out, colorRed+"error:"+colorReset, err)
		return
	}
	fmt.Fprintln(w.out, "error:", err)
}

// show prints a value twice: its to_s and its inspect form, both produced by
// the runtime's own conversion protocol.
func (w *Workbench) show(v karst.Value) {
	fmt.Fprintf(w.out, "%s\t%s\n", v.String(), v.Inspect())
}

func (w *Workbench) numericArg(s string) (karst.Numeric, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return karst.NewInteger(w.rt, n), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}
	return karst.NewFloat(w.rt, f), nil
}

func (w *Workbench) complexCmd(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("complex wants RE IM")
	}
	re, err := w.numericArg(args[0])
	if err != nil {
		return err
	}
	im, err := w.numericArg(args[1])
	if err != nil {
		return err
	}
	c := karst.NewComplex(w.rt, re, im)
	w.show(c.AsValue())
	fmt.Fprintf(w.out, "abs=%v arg=%v conj=%s\n", c.Abs(), c.Arg(), c.Conjugate().AsValue())
	return nil
}

func (w *Workbench) polarCmd(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("polar wants ABS ARG")
	}
	abs, err := w.numericArg(args[0])
	if err != nil {
		return err
	}
	arg, err := w.numericArg(args[1])
	if err != nil {
		return err
	}
	c, err := karst.ComplexPolar(w.rt, abs, arg)
	if err != nil {
		return err
	}
	w.show(c.AsValue())
	return nil
}

func (w *Workbench) rationalCmd(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("rational wants NUM DEN")
	}
	num, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", args[0])
	}
	den, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", args[1])
	}
	r, err := karst.NewRational(w.rt, num, den)
	if err != nil {
		return err
	}
	w.show(r.AsValue())
	return nil
}

func (w *Workbench) matchCmd(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("match wants PATTERN TEXT")
	}
	rx, err := karst.NewRegexp(w.rt, args[0])
	if err != nil {
		return err
	}
	m, ok, err := rx.Match(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(w.out, "no match")
		return nil
	}
	w.show(m.AsValue())
	return nil
}
