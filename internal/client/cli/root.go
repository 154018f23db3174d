package cli

import (
	"context"
	"fmt"
	"strings"
)

// Run starts the REPL. It reads one command per line and dispatches to the
// screen handlers; the loop ends on EOF or "exit"/"quit".
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "gymtrack CLI (type 'help' for commands)")

	for {
		fmt.Fprintf(a.out, "gym %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, profile, avatar <path>, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "whoami":
			a.WhoAmI()

		case "profile":
			_ = a.Profile(ctx)

		case "avatar":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: avatar <path-to-image>")
				continue
			}
			a.Avatar(ctx, args[0])

		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return

		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
