package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	user, ok := a.session.CurrentUser()
	if !ok {
		return ""
	}
	s := user.Email
	if a.session.CanAccessAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}

// restore runs the startup resolution. A stale token is reset silently by
// the controller; only infrastructure failures are worth a message here.
func (a *App) restore(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		log.Printf("Could not restore session: %v", err)
	}
}

func (a *App) printHelp() {
	if _, ok := a.session.CurrentUser(); ok {
		if a.session.CanAccessAdmin() {
			fmt.Println("Available commands: ask, whoami, users [all|active|inactive], adduser, toggle <id>, logout, exit")
		} else {
			fmt.Println("Available commands: ask, whoami, logout, exit")
		}
	} else {
		fmt.Println("Available commands: login, magiclink, verify <code>, signup, exit")
	}
}

// Root runs the REPL. Unknown commands, including admin commands issued by
// a non-admin session, are reported back to the user; handler errors are
// printed by the handlers themselves, keeping the loop focused on I/O.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to the Research Assistant CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("ra %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()

		case "login":
			_ = a.Login(ctx)
		case "magiclink":
			_ = a.MagicLink(ctx)
		case "verify":
			code := ""
			if len(args) > 0 {
				code = args[0]
			}
			_ = a.Verify(ctx, code)
		case "signup":
			_ = a.Signup(ctx)

		case "ask":
			_ = a.Ask(ctx, strings.Join(args, " "))
		case "whoami":
			a.WhoAmI()
		case "logout":
			_ = a.Logout(ctx)

		case "users", "adduser", "toggle":
			// The admin surface is not offered to non-admin sessions.
			if !a.session.CanAccessAdmin() {
				fmt.Println("Unknown command:", cmd)
				continue
			}
			switch cmd {
			case "users":
				filter := ""
				if len(args) > 0 {
					filter = args[0]
				}
				_ = a.Users(ctx, filter)
			case "adduser":
				_ = a.AddUser(ctx)
			case "toggle":
				if len(args) == 0 {
					fmt.Println("Usage: toggle <id>")
					continue
				}
				_ = a.Toggle(ctx, args[0])
			}

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}

// WhoAmI prints the confirmed identity of the current session.
func (a *App) WhoAmI() {
	user, ok := a.session.CurrentUser()
	if !ok {
		fmt.Println("Not logged in")
		return
	}
	role := "user"
	if user.IsAdmin {
		role = "admin"
	}
	active := "active"
	if !user.IsActive {
		active = "inactive"
	}
	fmt.Printf("#%d %s <%s> [%s, %s]\n", user.ID, user.Name, user.Email, role, active)
}
