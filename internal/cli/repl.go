package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context)
	List(ctx context.Context)
	EditProfile(ctx context.Context) error
	Delete(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the enrollment shell.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — fill in the enrollment form
//	  - login          — authenticate
//	  - list           — list stored profiles
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list           — list stored profiles
//	  - whoami         — show the active profile
//	  - edit           — edit the active profile
//	  - delete         — delete a profile by email
//	  - logout         — end the session
//	  - exit | quit    — leave the program
//
// Errors returned by command handlers are logged and the loop keeps
// going, so one failed command never ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("enroll %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list, whoami, edit, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, list, exit")
			}

		case "register":
			if err := a.Register(ctx); err != nil {
				log.Printf("error: %v", err)
			}

		case "login":
			if err := a.Login(ctx); err != nil {
				log.Printf("error: %v", err)
			}

		case "logout":
			if err := a.Logout(ctx); err != nil {
				log.Printf("error: %v", err)
			}

		case "whoami":
			a.Whoami(ctx)

		case "l", "list":
			a.List(ctx)

		case "edit":
			if err := a.EditProfile(ctx); err != nil {
				log.Printf("error: %v", err)
			}

		case "delete":
			if err := a.Delete(ctx); err != nil {
				log.Printf("error: %v", err)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
