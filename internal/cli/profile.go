package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"enrollform/internal/models"
	"enrollform/internal/services"
)

// EditProfile collects changes to the active profile. Fields left empty
// keep their stored value; the merged record is re-validated as a whole
// before anything is written.
func (a *App) EditProfile(ctx context.Context) error {
	out := os.Stdout

	current, ok := a.users.ActiveProfile(ctx)
	if !ok {
		fmt.Fprintln(out, "Not logged in.")
		return nil
	}

	var edited models.User

	name, err := GetOptionalText(a.reader, "Name", current.Name, out)
	if err != nil {
		return err
	}
	edited.Name = name

	email, err := GetOptionalText(a.reader, "Email", current.Email, out)
	if err != nil {
		return err
	}
	edited.Email = email

	birthDate, err := GetOptionalText(a.reader, "Birth date (YYYY-MM-DD)", current.BirthDate, out)
	if err != nil {
		return err
	}
	edited.BirthDate = birthDate

	changePassword, err := GetConfirm(a.reader, "Change password?", out)
	if err != nil {
		return err
	}
	if changePassword {
		password, err := getPassword("Enter new password", out)
		if err != nil {
			return err
		}
		edited.Password = string(password)
	}

	changeGender, err := GetConfirm(a.reader, "Change gender?", out)
	if err != nil {
		return err
	}
	if changeGender {
		gender, err := a.askGender(out)
		if err != nil {
			return err
		}
		edited.Gender = gender
	}

	changeState, err := GetConfirm(a.reader, "Change state?", out)
	if err != nil {
		return err
	}
	if changeState {
		state, err := a.askState(out)
		if err != nil {
			return err
		}
		edited.State = state
	}

	changeAreas, err := GetConfirm(a.reader, "Change tech areas?", out)
	if err != nil {
		return err
	}
	if changeAreas {
		areas, err := a.askTechAreas(out)
		if err != nil {
			return err
		}
		edited.TechAreas = areas
	}

	changeImage, err := GetConfirm(a.reader, "Change profile image?", out)
	if err != nil {
		return err
	}
	if changeImage {
		image, err := a.askProfileImage(out)
		if err != nil {
			return err
		}
		edited.ProfileImage = image
	}

	changeAcademic, err := GetConfirm(a.reader, "Replace academic background?", out)
	if err != nil {
		return err
	}
	if changeAcademic {
		academic, err := a.askAcademicBackground(out)
		if err != nil {
			return err
		}
		edited.AcademicBackground = academic
	}

	save, err := GetConfirm(a.reader, "Save changes?", out)
	if err != nil {
		return err
	}
	if !save {
		fmt.Fprintln(out, "Cancelled.")
		return nil
	}

	updated, err := a.users.UpdateProfile(ctx, edited)
	switch {
	case errors.Is(err, services.ErrNoActiveUser):
		fmt.Fprintln(out, "Not logged in.")
		return nil
	case errors.Is(err, services.ErrNotFound):
		fmt.Fprintln(out, "No stored profile matches that email; nothing was changed.")
		return nil
	case err != nil:
		return a.reportSubmitError(err, out)
	}

	a.activeEmail = updated.Email
	fmt.Fprintln(out, "Profile updated.")
	return nil
}

// List prints a one-line summary of every stored profile.
func (a *App) List(ctx context.Context) {
	profiles := a.users.Profiles(ctx)
	if len(profiles) == 0 {
		fmt.Println("No profiles registered yet.")
		return
	}
	for i, u := range profiles {
		fmt.Printf("%d. %s <%s> %s\n", i+1, u.Name, u.Email, strings.Join(u.TechAreas, ", "))
	}
}
