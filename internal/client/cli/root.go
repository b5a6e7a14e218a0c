package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
)

// flagsWithValue are the config flags that consume the next argument.
var flagsWithValue = map[string]struct{}{"-a": {}, "-t": {}, "-c": {}, "-config": {}}

// commandFromArgs returns the first argument that is neither a flag nor a
// flag's value.
func commandFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			return arg
		}
		if _, ok := flagsWithValue[arg]; ok {
			i++
		}
	}
	return ""
}

func (a *App) getStatus() string {
	if a.session == nil {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.session.Username)
}

// Run executes the command named in args once, or starts the REPL when
// there is none. It returns a non-zero exit code when a one-shot command
// fails.
func (a *App) Run(ctx context.Context, args []string) int {
	defer a.client.Close()

	switch cmd := commandFromArgs(args); cmd {
	case "":
		log.Println("Welcome to blogauth CLI (type 'help' for commands)")
		runREPL(ctx, a, a.getStatus, a.reader)
		return 0
	case "register":
		return exitCode(a.Register(ctx))
	case "login":
		return exitCode(a.Login(ctx))
	default:
		fmt.Fprintln(os.Stderr, "Usage: client [-a addr] [-t seconds] [register|login]")
		return 2
	}
}

func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
