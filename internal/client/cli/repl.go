package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// executor runs one parsed command line.
type executor func(ctx context.Context, args []string) error

// runREPL reads command lines from in until EOF, "exit" or "quit" and
// hands each one to exec. Errors are reported and the loop goes on.
func runREPL(ctx context.Context, exec executor, status func() string, in *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "lifelog %s> ", status())
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}

		args, perr := splitArgs(line)
		switch {
		case perr != nil:
			fmt.Fprintln(out, "Error:", perr)
			continue
		case len(args) == 0:
			continue
		case args[0] == "exit" || args[0] == "quit":
			fmt.Fprintln(out, "Bye!")
			return
		}

		if err := exec(ctx, args); err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// splitArgs splits a line on whitespace. Single or double quotes group
// words into one argument.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		quote   rune
		inToken bool
	)
	for _, r := range line {
		switch {
		case quote != 0 && r == quote:
			quote = 0
		case quote != 0:
			cur.WriteRune(r)
		case r == '"' || r == '\'':
			quote, inToken = r, true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inToken {
				args = append(args, cur.String())
				cur.Reset()
				inToken = false
			}
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	if quote != 0 {
		return nil, errors.New("unterminated quote")
	}
	if inToken {
		args = append(args, cur.String())
	}
	return args, nil
}

func newShellCommand(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run commands interactively (type 'help' for commands)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(a.out, "Welcome to LifeLog (type 'help' for commands, 'exit' to leave)")
			runREPL(cmd.Context(), a.execLine, a.status, a.in, a.out)
			return nil
		},
	}
}

// execLine runs args against a fresh command tree so that flag values do
// not leak from one line into the next.
func (a *App) execLine(ctx context.Context, args []string) error {
	root := &cobra.Command{
		Use:           "lifelog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addCommands(root, a)
	root.SetOut(a.out)
	root.SetErr(a.out)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) status() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Username + ") "
	}
	return ""
}
