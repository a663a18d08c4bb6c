package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/Tpj-root/gpr"
)

const (
	appName     = "gpr"
	historyFile = ".gpr_history"
	promptMain  = "gpr> "
)

var banner = fmt.Sprintf("gpr %s G-code REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", gpr.Version)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "parse":
		os.Exit(cmdParse(os.Args[2:]))
	case "tokens":
		os.Exit(cmdTokens(os.Args[2:]))
	case "fmt":
		os.Exit(cmdFmt(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(gpr.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`gpr %s

Usage:
  %s parse <file.gcode>           Parse a program and print its canonical text.
  %s tokens <file.gcode>          Print the token sequence of every line.
  %s fmt [--check] <file.gcode>   Re-emit canonical text; --check reports drift.
  %s repl                         Start the interactive G-code REPL.
  %s version                      Print the version.

`, gpr.Version, appName, appName, appName, appName, appName)
}

func readSource(file string) (string, bool) {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return "", false
	}
	return string(src), true
}

// -----------------------------------------------------------------------------
// parse
// -----------------------------------------------------------------------------

func cmdParse(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s parse <file.gcode>\n", appName)
		return 2
	}
	src, ok := readSource(args[0])
	if !ok {
		return 1
	}

	prog, err := gpr.ParseGCode(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(gpr.WrapErrorWithName(err, args[0], src).Error()))
		return 1
	}
	fmt.Println(prog)
	return 0
}

// -----------------------------------------------------------------------------
// tokens
// -----------------------------------------------------------------------------

func cmdTokens(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s tokens <file.gcode>\n", appName)
		return 2
	}
	src, ok := readSource(args[0])
	if !ok {
		return 1
	}

	for i, line := range strings.Split(src, "\n") {
		if len(line) == 0 {
			continue
		}
		tokens, err := gpr.LexBlock(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(gpr.WrapErrorWithName(err, args[0], line).Error()))
			return 1
		}
		fmt.Printf("%4d: %q\n", i+1, tokens)
	}
	return 0
}

// -----------------------------------------------------------------------------
// fmt
// -----------------------------------------------------------------------------

func cmdFmt(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	check := fs.Bool("check", false, "report whether the file differs from canonical form")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s fmt [--check] <file.gcode>\n", appName)
		return 2
	}
	file := fs.Arg(0)
	src, ok := readSource(file)
	if !ok {
		return 1
	}

	prog, err := gpr.ParseGCode(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, red(gpr.WrapErrorWithName(err, file, src).Error()))
		return 1
	}

	canon := prog.String() + "\n"
	if *check {
		if canon != src {
			fmt.Printf("%s: not canonical\n", file)
			return 1
		}
		return 0
	}
	fmt.Print(canon)
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if err != nil {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			default:
				fmt.Println("unknown command. Type :quit to exit.")
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		prog, perr := gpr.ParseGCode(line)
		if perr != nil {
			fmt.Fprintln(os.Stderr, red(gpr.WrapErrorWithSource(perr, line).Error()))
			continue
		}
		for _, b := range prog.Blocks() {
			printBlock(b)
		}
		ln.AppendHistory(line)
	}
}

// printBlock shows the canonical text of a block followed by one line
// per chunk describing its structure.
func printBlock(b gpr.Block) {
	fmt.Println(blue(b.String()))
	if b.IsDeleted() {
		fmt.Println("  deleted (block-delete '/')")
	}
	if b.HasLineNumber() {
		fmt.Printf("  line number N%d\n", b.LineNumber())
	}
	for i, c := range b.Chunks() {
		fmt.Printf("  %2d: %s\n", i, green(describeChunk(c)))
	}
}

func describeChunk(c gpr.Chunk) string {
	switch c.Kind() {
	case gpr.ChunkComment:
		return fmt.Sprintf("comment %c%c  text=%q", c.LeftDelim(), c.RightDelim(), c.CommentText())
	case gpr.ChunkWordAddress:
		a := c.Address()
		if a.Kind() == gpr.AddressFloat {
			return fmt.Sprintf("word-address %c  float %v", c.Letter(), a.Float())
		}
		return fmt.Sprintf("word-address %c  int %d", c.Letter(), a.Int())
	case gpr.ChunkPercent:
		return "percent marker"
	default:
		return fmt.Sprintf("isolated word %c", c.Word())
	}
}
