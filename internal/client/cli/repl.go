package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	hasPendingJoin() bool
	Create(ctx context.Context) error
	Join(ctx context.Context) error
	Status(ctx context.Context) error
	Approve(ctx context.Context) error
	Reject(ctx context.Context) error
	Leave(ctx context.Context) error
	Cancel(ctx context.Context) error
	CancelWait(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the SharedTab CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//   - help           — show available commands
//   - create         — start a new table session as host
//   - join           — join a session by share code
//   - status         — show the current session and its participants
//   - approve        — approve a pending participant (host)
//   - reject         — reject a pending participant (host)
//   - leave          — leave the current session
//   - cancel         — cancel the whole session (host)
//   - cancelwait     — stop waiting for host approval
//   - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tab> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.hasPendingJoin() {
				printlnFn("Available commands: status, cancelwait, exit")
			} else {
				printlnFn("Available commands: create, join, status, approve, reject, leave, cancel, exit")
			}

		case "create":
			_ = a.Create(ctx)

		case "join":
			_ = a.Join(ctx)

		case "status", "s":
			_ = a.Status(ctx)

		case "approve":
			_ = a.Approve(ctx)

		case "reject":
			_ = a.Reject(ctx)

		case "leave":
			_ = a.Leave(ctx)

		case "cancel":
			_ = a.Cancel(ctx)

		case "cancelwait":
			_ = a.CancelWait(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
