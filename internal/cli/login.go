package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"enrollform/internal/services"
)

// Login prompts for credentials and activates the matching profile.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.users.Login(ctx, email, string(password))
	switch {
	case errors.Is(err, services.ErrNotFound):
		fmt.Println("No account found for that email.")
		return nil
	case errors.Is(err, services.ErrWrongPassword):
		fmt.Println("Incorrect password.")
		return nil
	case err != nil:
		return err
	}

	a.activeEmail = u.Email
	time.Sleep(a.config.WelcomeDelay)
	fmt.Printf("Welcome back, %s!\n", u.Name)
	return nil
}

// Logout ends the active session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}
	if err := a.users.Logout(ctx); err != nil {
		return err
	}
	a.activeEmail = ""
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the active profile, if any.
func (a *App) Whoami(ctx context.Context) {
	u, ok := a.users.ActiveProfile(ctx)
	if !ok {
		fmt.Println("Not logged in.")
		return
	}
	fmt.Printf("%s <%s>\n", u.Name, u.Email)
}
