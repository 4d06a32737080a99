package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Add(ctx context.Context, args []string) error
	Update(ctx context.Context, args []string) error
	Decommission(ctx context.Context, args []string) error
	Destroy(ctx context.Context, args []string) error
}

// runREPL starts a simple read-eval-print loop for the gadgetkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Errors returned by command handlers are printed and the loop continues.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not signed in:
//	  - help                   : show available commands
//	  - signup                 : create an account
//	  - signin                 : authenticate
//	  - exit | quit            : leave the program
//
//	Signed in:
//	  - help                   : show available commands
//	  - list [status]          : list gadgets
//	  - show <id>              : show a single gadget
//	  - add [name]             : add a gadget, a name is generated if omitted
//	  - update <id>            : change name and/or status
//	  - decommission <id>      : decommission a gadget
//	  - destroy <id>           : trigger self-destruct
//	  - signout                : sign out
//	  - exit | quit            : leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [status], show <id>, add [name], update <id>, decommission <id>, destroy <id>, signout, exit")
			} else {
				printlnFn("Available commands: signup, signin, exit")
			}

		case "signup":
			cmdErr = a.SignUp(ctx)

		case "signin", "login":
			cmdErr = a.SignIn(ctx)

		case "signout", "logout":
			cmdErr = a.SignOut(ctx)

		case "l", "list":
			cmdErr = a.List(ctx, args)

		case "show":
			cmdErr = a.Show(ctx, args)

		case "add":
			cmdErr = a.Add(ctx, args)

		case "update":
			cmdErr = a.Update(ctx, args)

		case "decommission":
			cmdErr = a.Decommission(ctx, args)

		case "destroy":
			cmdErr = a.Destroy(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
	}
}
