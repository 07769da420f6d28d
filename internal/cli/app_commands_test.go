package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enrollform/internal/config"
	"enrollform/internal/models"
	"enrollform/internal/services"
	"enrollform/internal/validation"
)

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	if len(lines) == 0 || lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func newTestApp(us services.UserService, r *bufio.Reader) *App {
	return &App{
		config: &config.Config{WelcomeDelay: 0},
		users:  us,
		reader: r,
	}
}

func stubPassword(t *testing.T, pw string, err error) {
	t.Helper()
	old := getPassword
	t.Cleanup(func() { getPassword = old })
	getPassword = func(prompt string, w io.Writer) ([]byte, error) {
		if err != nil {
			return nil, err
		}
		return []byte(pw), nil
	}
}

type fakeUS struct {
	// Register
	regCandidate models.User
	regResult    *services.RegisterResult
	regErr       error

	// Login
	loginEmail    string
	loginPassword string
	loginOut      *models.User
	loginErr      error

	// Logout
	logoutCalled bool
	logoutErr    error

	// Profiles
	profiles []models.User

	// ActiveProfile
	active *models.User

	// UpdateProfile
	updEdited models.User
	updOut    *models.User
	updErr    error

	// DeleteProfile
	delEmail string
	delErr   error
}

func (f *fakeUS) Register(ctx context.Context, candidate models.User) (*services.RegisterResult, error) {
	f.regCandidate = candidate
	return f.regResult, f.regErr
}

func (f *fakeUS) Login(ctx context.Context, email, password string) (*models.User, error) {
	f.loginEmail = email
	f.loginPassword = password
	return f.loginOut, f.loginErr
}

func (f *fakeUS) Logout(ctx context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

func (f *fakeUS) Profiles(ctx context.Context) []models.User {
	return f.profiles
}

func (f *fakeUS) ActiveProfile(ctx context.Context) (*models.User, bool) {
	if f.active == nil {
		return nil, false
	}
	return f.active, true
}

func (f *fakeUS) UpdateProfile(ctx context.Context, edited models.User) (*models.User, error) {
	f.updEdited = edited
	return f.updOut, f.updErr
}

func (f *fakeUS) DeleteProfile(ctx context.Context, email string) error {
	f.delEmail = email
	return f.delErr
}

// ------------ tests ------------

func TestRegister_CandidateIsAssembled(t *testing.T) {
	us := &fakeUS{
		regResult: &services.RegisterResult{
			Status: services.RegisterCreated,
			User:   models.User{Name: "Jane", Email: "jane@example.com"},
		},
	}
	r := readerFromLines(
		"Jane",             // name
		"jane@example.com", // email
		"1990-05-20",       // birth date
		"2",                // gender: female
		"25",               // state: São Paulo
		"1,2",              // tech areas: frontend, backend
		"",                 // image path: skipped
		"y",                // accept terms
		"USP",              // university
		"2",                // degree: bachelor
		"",                 // blank line ends academic entries
		"",
	)
	app := newTestApp(us, r)
	stubPassword(t, "Abcdef1", nil)

	require.NoError(t, app.Register(context.Background()))

	got := us.regCandidate
	assert.Equal(t, "Jane", got.Name)
	assert.Equal(t, "jane@example.com", got.Email)
	assert.Equal(t, "Abcdef1", got.Password)
	assert.Equal(t, "1990-05-20", got.BirthDate)
	assert.Equal(t, models.GenderFemale, got.Gender)
	assert.Equal(t, "SP", got.State.Code)
	assert.Equal(t, []string{"frontend", "backend"}, got.TechAreas)
	assert.True(t, got.AcceptTerms)
	require.Len(t, got.AcademicBackground, 1)
	assert.Equal(t, "USP", got.AcademicBackground[0].University)
	assert.Equal(t, models.DegreeBachelor, got.AcademicBackground[0].Degree)

	assert.Equal(t, "jane@example.com", app.activeEmail)
}

func TestRegister_FieldErrorsAreNotFatal(t *testing.T) {
	us := &fakeUS{
		regErr: validation.FieldErrors{"email": "Invalid email"},
	}
	r := readerFromLines(
		"Jane",
		"nope",
		"1990-05-20",
		"1",
		"1",
		"1",
		"",
		"y",
		"",
		"",
	)
	app := newTestApp(us, r)
	stubPassword(t, "Abcdef1", nil)

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, "", app.activeEmail)
}

func TestRegister_EmailInUseIsReported(t *testing.T) {
	us := &fakeUS{regErr: services.ErrEmailInUse}
	r := readerFromLines(
		"Jane", "jane@example.com", "1990-05-20",
		"1", "1", "1", "", "y", "", "",
	)
	app := newTestApp(us, r)
	stubPassword(t, "Abcdef1", nil)

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, "", app.activeEmail)
}

func TestLogin_SetsActiveEmail(t *testing.T) {
	us := &fakeUS{
		loginOut: &models.User{Name: "Jane", Email: "jane@example.com"},
	}
	app := newTestApp(us, readerFromLines("jane@example.com"))
	stubPassword(t, "Abcdef1", nil)

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "jane@example.com", us.loginEmail)
	assert.Equal(t, "Abcdef1", us.loginPassword)
	assert.Equal(t, "jane@example.com", app.activeEmail)
}

func TestLogin_WrongPasswordIsNotFatal(t *testing.T) {
	us := &fakeUS{loginErr: services.ErrWrongPassword}
	app := newTestApp(us, readerFromLines("jane@example.com"))
	stubPassword(t, "wrong1", nil)

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "", app.activeEmail)
}

func TestLogout(t *testing.T) {
	us := &fakeUS{}
	app := newTestApp(us, readerFromLines())
	app.activeEmail = "jane@example.com"

	require.NoError(t, app.Logout(context.Background()))
	assert.True(t, us.logoutCalled)
	assert.Equal(t, "", app.activeEmail)
}

func TestLogout_WhenNotLoggedIn(t *testing.T) {
	us := &fakeUS{}
	app := newTestApp(us, readerFromLines())

	require.NoError(t, app.Logout(context.Background()))
	assert.False(t, us.logoutCalled)
}

func TestEditProfile_OnlyChangedFieldsInEdit(t *testing.T) {
	us := &fakeUS{
		active: &models.User{Name: "Jane", Email: "jane@example.com", BirthDate: "1990-05-20"},
		updOut: &models.User{Name: "Janet", Email: "jane@example.com"},
	}
	r := readerFromLines(
		"Janet", // name changed
		"",      // email kept
		"",      // birth date kept
		"n",     // password
		"n",     // gender
		"n",     // state
		"n",     // tech areas
		"n",     // profile image
		"n",     // academic background
		"y",     // save
	)
	app := newTestApp(us, r)
	app.activeEmail = "jane@example.com"

	require.NoError(t, app.EditProfile(context.Background()))
	assert.Equal(t, "Janet", us.updEdited.Name)
	assert.Equal(t, "", us.updEdited.Email)
	assert.Equal(t, "", us.updEdited.Password)
	assert.Nil(t, us.updEdited.TechAreas)
}

func TestEditProfile_SaveDeclined(t *testing.T) {
	us := &fakeUS{
		active: &models.User{Name: "Jane", Email: "jane@example.com"},
	}
	r := readerFromLines(
		"Janet",
		"", "",
		"n", "n", "n", "n", "n", "n",
		"n", // do not save
	)
	app := newTestApp(us, r)

	require.NoError(t, app.EditProfile(context.Background()))
	assert.Equal(t, models.User{}, us.updEdited)
}

func TestEditProfile_NotLoggedIn(t *testing.T) {
	us := &fakeUS{}
	app := newTestApp(us, readerFromLines())

	require.NoError(t, app.EditProfile(context.Background()))
	assert.Equal(t, models.User{}, us.updEdited)
}

func TestDelete_ConfirmedCallsService(t *testing.T) {
	us := &fakeUS{}
	app := newTestApp(us, readerFromLines("jane@example.com", "y"))
	app.activeEmail = "jane@example.com"

	require.NoError(t, app.Delete(context.Background()))
	assert.Equal(t, "jane@example.com", us.delEmail)
	assert.Equal(t, "", app.activeEmail)
}

func TestDelete_Cancelled(t *testing.T) {
	us := &fakeUS{}
	app := newTestApp(us, readerFromLines("jane@example.com", "n"))

	require.NoError(t, app.Delete(context.Background()))
	assert.Equal(t, "", us.delEmail)
}

func TestGetStatus(t *testing.T) {
	app := newTestApp(&fakeUS{}, readerFromLines())
	assert.Equal(t, "", app.getStatus())
	assert.False(t, app.isLoggedIn())

	app.activeEmail = "jane@example.com"
	assert.Equal(t, "(jane@example.com)", app.getStatus())
	assert.True(t, app.isLoggedIn())
}
