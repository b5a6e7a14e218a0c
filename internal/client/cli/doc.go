// Package cli provides the blogauth command-line client.
//
// Invoked with a command ("register" or "login") it runs that command once
// and exits. Without one it starts an interactive REPL where the user can
// register, log in, inspect the current session and log out.
//
// The REPL is started via App.Run(ctx, args), which blocks until the user
// exits.
package cli
