package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/shortener-client/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates the account. It
// does not log in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, password); err != nil {
		a.report(ctx, "registering", err)
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! Now log in.")
	return nil
}

// Login prompts for credentials and starts a session. The prompt then shows
// the email decoded from the access token, or the one typed in.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Login failed: invalid email or password")
		} else {
			a.report(ctx, "logging in", err)
		}
		return err
	}

	s, err := a.authService.Session(ctx)
	if err == nil && s.Email() != "" {
		email = s.Email()
	}
	a.email.Store(email)
	a.loggedIn.Store(true)

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Logout ends the session. Local tokens are gone even when the backend call
// fails; that failure is still shown.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)

	a.loggedIn.Store(false)
	a.email.Store("")

	if err != nil {
		a.report(ctx, "logging out", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
