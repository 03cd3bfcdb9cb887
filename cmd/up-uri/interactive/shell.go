// Package interactive provides the up-uri read-eval-print loop.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/uprotocol/up-go/cmd/up-uri/commands"
)

// Shell evaluates up-uri commands line by line.
type Shell struct {
	session *commands.Session
	form    string
}

// NewShell creates a shell that runs commands in session.
func NewShell(session *commands.Session) *Shell {
	return &Shell{session: session, form: commands.FormAuto}
}

// Run reads commands from the terminal until quit, EOF or ctx is done.
func (sh *Shell) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "up> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem("decode"),
			readline.PcItem("encode",
				readline.PcItem("long"),
				readline.PcItem("micro"),
				readline.PcItem("wire"),
				readline.PcItem("yaml"),
			),
			readline.PcItem("classify"),
			readline.PcItem("resolve"),
			readline.PcItem("form",
				readline.PcItem(commands.FormAuto),
				readline.PcItem(commands.FormLong),
				readline.PcItem(commands.FormMicro),
				readline.PcItem(commands.FormWire),
			),
			readline.PcItem("help"),
			readline.PcItem("quit"),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	sh.session.Out = rl.Stdout()
	sh.printHelp()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !sh.Execute(line) {
			return nil
		}
	}
}

// Execute runs a single command line. It returns false when the shell
// should exit.
func (sh *Shell) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return true
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	out := sh.session.Out

	var err error
	switch cmd {
	case "help", "?":
		sh.printHelp()

	case "decode", "d":
		if len(args) != 1 {
			fmt.Fprintln(out, "Usage: decode <uri>")
			return true
		}
		err = commands.RunDecode(sh.session, args[0], sh.form)

	case "encode", "e":
		if len(args) != 2 {
			fmt.Fprintln(out, "Usage: encode <long|micro|wire|yaml> <uri>")
			return true
		}
		err = commands.RunEncode(sh.session, args[1], sh.form, strings.ToLower(args[0]))

	case "classify", "c":
		if len(args) != 1 {
			fmt.Fprintln(out, "Usage: classify <uri>")
			return true
		}
		err = commands.RunClassify(sh.session, args[0], sh.form)

	case "resolve", "r":
		if len(args) != 2 {
			fmt.Fprintln(out, "Usage: resolve <long> <micro-hex>")
			return true
		}
		err = commands.RunResolve(sh.session, args[0], args[1])

	case "form", "f":
		if len(args) == 0 {
			fmt.Fprintf(out, "Input form: %s\n", sh.form)
			return true
		}
		switch f := strings.ToLower(args[0]); f {
		case commands.FormAuto, commands.FormLong, commands.FormMicro, commands.FormWire:
			sh.form = f
			fmt.Fprintf(out, "Input form: %s\n", sh.form)
		default:
			fmt.Fprintf(out, "Unknown form: %s\n", args[0])
		}

	case "quit", "exit", "q":
		fmt.Fprintln(out, "Exiting...")
		return false

	default:
		fmt.Fprintf(out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}

	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return true
}

func (sh *Shell) printHelp() {
	fmt.Fprint(sh.session.Out, `
uProtocol URI Commands:
  decode <uri>                 - Show a URI in all forms
  encode <form> <uri>          - Serialize a URI (long, micro, wire, yaml)
  classify <uri>               - Show validator results
  resolve <long> <micro-hex>   - Merge long and micro forms
  form [auto|long|micro|wire]  - Show or set the input form
  help                         - Show this help
  quit                         - Exit

Binary forms are entered and printed as hex.
`)
}
