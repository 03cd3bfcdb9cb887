// Command up-uri converts and inspects uProtocol URIs.
//
// Usage:
//
//	up-uri <command> [flags] <args>
//
// Commands:
//
//	decode    Show a URI in all forms
//	encode    Serialize a URI into a given form
//	classify  Show validator results for a URI
//	resolve   Merge a long and a micro form into one URI
//	check     Run YAML test vectors against the serializers
//	trace     View a trace file written with -trace
//	repl      Start an interactive shell
//
// Examples:
//
//	# YAML to micro form (hex)
//	up-uri encode -to micro -from yaml '{entity: {id: 29999, version_major: 254}, resource: {id: 19999}}'
//
//	# Decode a micro URI and keep a trace
//	up-uri decode -trace session.utrace 01004e1f752ffe00
//
//	# Show only errors of a trace
//	up-uri trace -category error session.utrace
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/uprotocol/up-go/cmd/up-uri/commands"
	"github.com/uprotocol/up-go/cmd/up-uri/interactive"
	"github.com/uprotocol/up-go/pkg/log"
)

const usage = `up-uri - uProtocol URI tool

Usage:
  up-uri <command> [flags] <args>

Commands:
  decode    Show a URI in all forms
  encode    Serialize a URI into a given form
  classify  Show validator results for a URI
  resolve   Merge a long and a micro form into one URI
  check     Run YAML test vectors against the serializers
  trace     View a trace file written with -trace
  repl      Start an interactive shell

Use "up-uri <command> -help" for more information about a command.
`

// commonFlags are accepted by every command that converts URIs.
type commonFlags struct {
	trace   *string
	verbose *bool
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		trace:   fs.String("trace", "", "Append conversion events to this trace file"),
		verbose: fs.Bool("v", false, "Log conversion events to stderr"),
	}
}

// session builds the command session. The returned function closes the
// trace file.
func (c commonFlags) session() (*commands.Session, func()) {
	var loggers []log.Logger
	closeFn := func() {}

	if *c.verbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		loggers = append(loggers, log.NewSlogAdapter(slog.New(handler)))
	}
	if *c.trace != "" {
		fl, err := log.NewFileLogger(*c.trace)
		if err != nil {
			fatal(fmt.Errorf("failed to open trace file: %w", err))
		}
		loggers = append(loggers, fl)
		closeFn = func() { fl.Close() }
	}

	var logger log.Logger
	if len(loggers) > 0 {
		logger = log.NewMultiLogger(loggers...)
	}
	return commands.NewSession(os.Stdout, logger), closeFn
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "decode":
		runDecode(args)
	case "encode":
		runEncode(args)
	case "classify":
		runClassify(args)
	case "resolve":
		runResolve(args)
	case "check":
		runCheck(args)
	case "trace":
		runTrace(args)
	case "repl":
		runRepl(args)
	case "-h", "-help", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func newFlagSet(name, synopsis, args string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "up-uri %s - %s\n\nUsage:\n  up-uri %s [flags] %s\n\nFlags:\n", name, synopsis, name, args)
		fs.PrintDefaults()
	}
	return fs
}

func parseArgs(fs *flag.FlagSet, args []string, n int) {
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if fs.NArg() < n {
		fmt.Fprintln(os.Stderr, "Error: missing arguments")
		fs.Usage()
		os.Exit(1)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func runDecode(args []string) {
	fs := newFlagSet("decode", "Show a URI in all forms", "<uri>")
	from := fs.String("from", commands.FormAuto, "Input form (auto, long, micro, wire, yaml)")
	common := addCommonFlags(fs)
	parseArgs(fs, args, 1)

	s, closeFn := common.session()
	defer closeFn()
	if err := commands.RunDecode(s, fs.Arg(0), *from); err != nil {
		closeFn()
		fatal(err)
	}
}

func runEncode(args []string) {
	fs := newFlagSet("encode", "Serialize a URI into a given form", "<uri>")
	from := fs.String("from", commands.FormAuto, "Input form (auto, long, micro, wire, yaml)")
	to := fs.String("to", commands.FormMicro, "Output form (long, micro, wire, yaml)")
	common := addCommonFlags(fs)
	parseArgs(fs, args, 1)

	s, closeFn := common.session()
	defer closeFn()
	if err := commands.RunEncode(s, fs.Arg(0), *from, *to); err != nil {
		closeFn()
		fatal(err)
	}
}

func runClassify(args []string) {
	fs := newFlagSet("classify", "Show validator results for a URI", "<uri>")
	from := fs.String("from", commands.FormAuto, "Input form (auto, long, micro, wire, yaml)")
	common := addCommonFlags(fs)
	parseArgs(fs, args, 1)

	s, closeFn := common.session()
	defer closeFn()
	if err := commands.RunClassify(s, fs.Arg(0), *from); err != nil {
		closeFn()
		fatal(err)
	}
}

func runResolve(args []string) {
	fs := newFlagSet("resolve", "Merge a long and a micro form into one URI", "<long> <micro-hex>")
	common := addCommonFlags(fs)
	parseArgs(fs, args, 2)

	s, closeFn := common.session()
	defer closeFn()
	if err := commands.RunResolve(s, fs.Arg(0), fs.Arg(1)); err != nil {
		closeFn()
		fatal(err)
	}
}

func runCheck(args []string) {
	fs := newFlagSet("check", "Run YAML test vectors against the serializers", "<file-or-dir>")
	common := addCommonFlags(fs)
	parseArgs(fs, args, 1)

	s, closeFn := common.session()
	defer closeFn()
	if _, err := commands.RunCheck(s, fs.Arg(0)); err != nil {
		closeFn()
		if errors.Is(err, commands.ErrVectorsFailed) {
			os.Exit(1)
		}
		fatal(err)
	}
}

func runTrace(args []string) {
	fs := newFlagSet("trace", "View a trace file written with -trace", "<file.utrace>")
	session := fs.String("session", "", "Filter by session ID")
	direction := fs.String("direction", "", "Filter by direction (encode, decode)")
	form := fs.String("form", "", "Filter by form (long, micro, wire, cloudevent, any)")
	category := fs.String("category", "", "Filter by category (conversion, validation, error)")
	since := fs.String("since", "", "Only events at or after this time (RFC3339)")
	parseArgs(fs, args, 1)

	filter := log.Filter{SessionID: *session}
	if *direction != "" {
		d, err := commands.ParseDirectionFlag(*direction)
		if err != nil {
			fatal(err)
		}
		filter.Direction = &d
	}
	if *form != "" {
		f, err := commands.ParseFormFlag(*form)
		if err != nil {
			fatal(err)
		}
		filter.Form = &f
	}
	if *category != "" {
		c, err := commands.ParseCategoryFlag(*category)
		if err != nil {
			fatal(err)
		}
		filter.Category = &c
	}
	if *since != "" {
		ts, err := time.Parse(time.RFC3339, *since)
		if err != nil {
			fatal(fmt.Errorf("invalid -since: %w", err))
		}
		filter.TimeStart = &ts
	}

	stats, err := commands.RunTrace(fs.Arg(0), filter, os.Stdout)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("%d events\n", stats.Events)
}

func runRepl(args []string) {
	fs := newFlagSet("repl", "Start an interactive shell", "")
	common := addCommonFlags(fs)
	parseArgs(fs, args, 0)

	s, closeFn := common.session()
	defer closeFn()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := interactive.NewShell(s).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		closeFn()
		fatal(err)
	}
}
