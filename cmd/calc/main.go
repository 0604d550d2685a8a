package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
	"github.com/zephyrtronium/calc/internal/config"
	"github.com/zephyrtronium/calc/internal/logging"
)

func main() {
	log.SetFlags(0)
	cfg := config.LoadOrDefault()
	var (
		inname, verb string
		echo, strict bool
		verbose      bool
		maxdepth     int
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", cfg.Format, "result formatting verb (default integers as is, others to 6 decimals)")
	flag.IntVar(&maxdepth, "maxdepth", cfg.MaxDepth, "maximum nesting of function calls and brackets")
	flag.BoolVar(&echo, "echo", false, "print postfix programs")
	flag.BoolVar(&strict, "strict", cfg.Strict, "do not close unbalanced brackets")
	flag.BoolVar(&verbose, "v", false, "log evaluation stages")
	flag.Parse()
	if maxdepth <= 0 {
		log.Fatalf("max depth (%d) must be positive", maxdepth)
	}

	lcfg := logging.Config{Level: cfg.Log.Level, Development: cfg.Log.Development}
	if verbose {
		lcfg.Level = "debug"
	}
	logger, err := logging.New(lcfg)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ev := calc.New(calc.MaxDepth(maxdepth), calc.Logger(logger.Logger))
	out := bufio.NewWriter(os.Stdout)
	r := runner{ev: ev, out: out, verb: verb, echo: echo, strict: strict, log: logger.Logger}
	for _, arg := range flag.Args() {
		r.run(arg)
	}
	out.Flush()

	in, interactive, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if in != nil {
		r.lines(in, interactive)
		out.Flush()
	}
	if r.failed {
		logger.Sync()
		os.Exit(1)
	}
}

// runner evaluates expressions and writes their results.
type runner struct {
	ev     *calc.Evaluator
	out    *bufio.Writer
	log    *zap.Logger
	verb   string
	echo   bool
	strict bool
	failed bool
}

func (r *runner) run(expr string) {
	if !r.strict {
		expr = balance(expr)
	}
	var (
		v   float64
		err error
	)
	if r.echo {
		var p calc.Postfix
		p, err = r.ev.Compile(expr)
		if err == nil {
			fmt.Fprintf(r.out, "%v : ", p)
			v, err = p.Eval()
		}
	} else {
		v, err = r.ev.Eval(expr)
	}
	if err != nil {
		r.failed = true
		r.log.Info("evaluation failed", zap.String("expr", expr), zap.Stringer("kind", calc.KindOf(err)))
		fmt.Fprintln(r.out, "Error:", err)
		return
	}
	fmt.Fprintln(r.out, format(v, r.verb))
}

// lines evaluates each non-blank line of in. When interactive, a prompt
// precedes each line.
func (r *runner) lines(in io.Reader, interactive bool) {
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			r.out.WriteString("> ")
			r.out.Flush()
		}
		if !sc.Scan() {
			break
		}
		if line := strings.TrimSpace(sc.Text()); line != "" {
			r.run(line)
		}
		if interactive {
			r.out.Flush()
		}
	}
	if interactive {
		r.out.WriteString("\n")
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

// infile opens the input named by inname. With no name, stdin is used if std
// is true. interactive reports whether the input is a terminal.
func infile(inname string, std bool) (f *os.File, interactive bool, err error) {
	switch {
	case inname != "" && inname != "-":
		f, err = os.Open(inname)
		if err != nil {
			return nil, false, err
		}
		return f, false, nil
	case inname == "-", std:
		return os.Stdin, term.IsTerminal(int(os.Stdin.Fd())), nil
	}
	return nil, false, nil
}
