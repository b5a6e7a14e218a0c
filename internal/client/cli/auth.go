package cli

import (
	"context"
	"fmt"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for full name, email and password and creates an
// account. On success the returned session becomes the current one.
func (a *App) Register(ctx context.Context) error {
	fullname, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	session, err := a.client.Register(ctx, fullname, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Registration unsuccessful: %s\n", errorMessage(err))
		return err
	}

	a.session = session
	fmt.Fprintln(a.out, "Registration successful")
	a.printSession()
	return nil
}

// Login prompts for email and password and authenticates. On success the
// returned session becomes the current one.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	session, err := a.client.Authenticate(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", errorMessage(err))
		return err
	}

	a.session = session
	fmt.Fprintln(a.out, "Login successful")
	a.printSession()
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	a.printSession()
	return nil
}

// Logout forgets the current session. Tokens are stateless, so nothing is
// sent to the server.
func (a *App) Logout(ctx context.Context) error {
	a.session = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
