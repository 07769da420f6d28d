package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"enrollform/internal/filex"
	"enrollform/internal/models"
	"enrollform/internal/services"
	"enrollform/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register walks the user through the full enrollment form, assembles a
// candidate record and submits it. Validation failures are printed per
// field and leave the user free to try again; a full identity match
// against an existing record is treated as a login.
func (a *App) Register(ctx context.Context) error {
	out := os.Stdout

	name, err := getSimpleText(a.reader, "Enter name", out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", out)
	if err != nil {
		return err
	}
	password, err := getPassword("Enter password", out)
	if err != nil {
		return err
	}
	birthDate, err := getSimpleText(a.reader, "Enter birth date (YYYY-MM-DD)", out)
	if err != nil {
		return err
	}

	gender, err := a.askGender(out)
	if err != nil {
		return err
	}
	state, err := a.askState(out)
	if err != nil {
		return err
	}
	techAreas, err := a.askTechAreas(out)
	if err != nil {
		return err
	}
	profileImage, err := a.askProfileImage(out)
	if err != nil {
		return err
	}
	acceptTerms, err := GetConfirm(a.reader, "Do you accept the terms of use?", out)
	if err != nil {
		return err
	}
	academic, err := a.askAcademicBackground(out)
	if err != nil {
		return err
	}

	candidate := models.User{
		Name:               name,
		Email:              email,
		Password:           string(password),
		BirthDate:          birthDate,
		Gender:             gender,
		State:              state,
		TechAreas:          techAreas,
		ProfileImage:       profileImage,
		AcceptTerms:        acceptTerms,
		AcademicBackground: academic,
	}

	res, err := a.users.Register(ctx, candidate)
	if err != nil {
		return a.reportSubmitError(err, out)
	}

	a.activeEmail = res.User.Email
	time.Sleep(a.config.WelcomeDelay)
	switch res.Status {
	case services.RegisterReturning:
		fmt.Fprintf(out, "Welcome back, %s!\n", res.User.Name)
	default:
		fmt.Fprintf(out, "Registration successful, welcome %s!\n", res.User.Name)
	}
	return nil
}

// reportSubmitError turns the known submit failures into user-facing
// feedback; anything unexpected propagates.
func (a *App) reportSubmitError(err error, out io.Writer) error {
	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		fields := make([]string, 0, len(fieldErrs))
		for f := range fieldErrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		fmt.Fprintln(out, "Please fix the following fields:")
		for _, f := range fields {
			fmt.Fprintf(out, "  %s: %s\n", f, fieldErrs[f])
		}
		return nil
	case errors.Is(err, services.ErrEmailInUse):
		fmt.Fprintln(out, "Email already in use.")
		return nil
	case errors.Is(err, services.ErrWrongPassword):
		fmt.Fprintln(out, "Incorrect password.")
		return nil
	default:
		return err
	}
}

func (a *App) askGender(out io.Writer) (models.Gender, error) {
	options := []models.Gender{models.GenderMale, models.GenderFemale, models.GenderOther}
	labels := make([]string, len(options))
	for i, g := range options {
		labels[i] = string(g)
	}

	idx, err := GetChoice(a.reader, "Select a gender:", labels, out)
	if err != nil {
		return "", err
	}
	if idx < 0 {
		return "", nil
	}
	return options[idx], nil
}

func (a *App) askState(out io.Writer) (models.State, error) {
	labels := make([]string, len(models.States))
	for i, s := range models.States {
		labels[i] = fmt.Sprintf("%s (%s)", s.Label, s.Code)
	}

	idx, err := GetChoice(a.reader, "Select a state:", labels, out)
	if err != nil {
		return models.State{}, err
	}
	if idx < 0 {
		return models.State{}, nil
	}
	return models.States[idx], nil
}

func (a *App) askTechAreas(out io.Writer) ([]string, error) {
	labels := make([]string, len(models.TechAreas))
	for i, area := range models.TechAreas {
		labels[i] = area.Label
	}

	picked, err := GetMultiChoice(a.reader, "Select tech areas of interest:", labels, out)
	if err != nil {
		return nil, err
	}
	areas := make([]string, 0, len(picked))
	for _, idx := range picked {
		areas = append(areas, models.TechAreas[idx].Code)
	}
	return areas, nil
}

// askProfileImage reads an image file path and transcodes the file to a
// data URI. The record submit does not run until this conversion has
// finished, so validation always sees the final field value.
func (a *App) askProfileImage(out io.Writer) (string, error) {
	path, err := getSimpleText(a.reader, "Enter profile image path", out)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", nil
	}

	uri, err := filex.DataURI(path)
	if err != nil {
		fmt.Fprintf(out, "Could not read image: %v\n", err)
		return "", nil
	}
	return uri, nil
}

func (a *App) askAcademicBackground(out io.Writer) ([]models.Academic, error) {
	degrees := []models.Degree{
		models.DegreeAssociate, models.DegreeBachelor,
		models.DegreeMaster, models.DegreeDoctorate,
	}
	labels := make([]string, len(degrees))
	for i, d := range degrees {
		labels[i] = string(d)
	}

	var entries []models.Academic
	for {
		prompt := "Enter a university (empty line to finish)"
		if len(entries) == 0 {
			prompt = "Enter a university"
		}
		university, err := getSimpleText(a.reader, prompt, out)
		if err != nil {
			return nil, err
		}
		if university == "" {
			return entries, nil
		}

		idx, err := GetChoice(a.reader, "Select a degree:", labels, out)
		if err != nil {
			return nil, err
		}
		entry := models.Academic{University: university}
		if idx >= 0 {
			entry.Degree = degrees[idx]
		}
		entries = append(entries, entry)
	}
}
