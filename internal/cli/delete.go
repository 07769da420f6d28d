package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"enrollform/internal/services"
)

// Delete removes a profile by email after an explicit confirmation.
// Deleting the profile the session points at also ends the session.
func (a *App) Delete(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email of the profile to delete", os.Stdout)
	if err != nil {
		return err
	}

	confirmed, err := GetConfirm(a.reader, fmt.Sprintf("Really delete %s?", email), os.Stdout)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Println("Cancelled.")
		return nil
	}

	err = a.users.DeleteProfile(ctx, email)
	switch {
	case errors.Is(err, services.ErrNotFound):
		fmt.Println("No profile found for that email.")
		return nil
	case err != nil:
		return err
	}

	if _, ok := a.users.ActiveProfile(ctx); !ok {
		a.activeEmail = ""
	}
	fmt.Println("Profile deleted.")
	return nil
}
