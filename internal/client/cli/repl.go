package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/useradmin/internal/client/router"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Open(ctx context.Context, target string) error
	Delete(ctx context.Context, uuid string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, open <path>, exit"
	helpLoggedIn  = "Available commands: dashboard, profile [uuid], delete <uuid>, open <path>, logout, exit"
)

// runREPL reads one command per line and dispatches it to a. The prompt shows
// statusFn's decoration. The loop ends on EOF, "exit" or "quit".
//
// Command errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "ua %s> ", statusFn(ctx))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}

		case "register":
			err = a.Open(ctx, router.PathRegister)

		case "login":
			err = a.Open(ctx, router.PathLogin)

		case "dashboard":
			err = a.Open(ctx, router.PathDashboard)

		case "profile":
			uuid := ""
			if len(args) > 0 {
				uuid = args[0]
			}
			err = a.Open(ctx, router.ProfileTarget(uuid))

		case "open":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: open <path>")
				continue
			}
			err = a.Open(ctx, args[0])

		case "delete":
			if len(args) == 0 {
				fmt.Fprintln(out, "Usage: delete <uuid>")
				continue
			}
			err = a.Delete(ctx, args[0])

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}
