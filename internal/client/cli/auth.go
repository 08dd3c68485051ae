package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dmitrijs2005/droplogistics/internal/client/models"
	"github.com/dmitrijs2005/droplogistics/internal/client/services"
	"github.com/dmitrijs2005/droplogistics/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readPasswordString reads a password and wipes the raw bytes.
func (a *App) readPasswordString(prompt string) (string, error) {
	pw, err := getPassword(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	defer common.WipeByteArray(pw)
	return string(pw), nil
}

// Register prompts for the profile and password, validates the form and
// creates the account. A successful registration signs the user in.
func (a *App) Register(ctx context.Context, _ []string) error {
	t := a.t()
	a.println(t.Register)

	var form services.RegistrationForm
	var err error

	if form.FullName, err = getSimpleText(a.reader, t.FullName, a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, t.Email, a.out); err != nil {
		return err
	}
	if form.Phone, err = getSimpleText(a.reader, t.Phone, a.out); err != nil {
		return err
	}
	if form.Password, err = a.readPasswordString(t.Password); err != nil {
		return err
	}
	if form.ConfirmPassword, err = a.readPasswordString(t.ConfirmPassword); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		a.println(a.validationMessage(err))
		return nil
	}

	if !a.session.Register(ctx, form.FullName, form.Email, form.Phone, form.Password) {
		a.println(t.RegisterFailed)
		return nil
	}
	a.println(t.RegisterSuccess)
	return nil
}

// Login prompts for credentials and signs the user in.
func (a *App) Login(ctx context.Context, _ []string) error {
	t := a.t()

	var form services.LoginForm
	var err error

	if form.Email, err = getSimpleText(a.reader, t.Email, a.out); err != nil {
		return err
	}
	if form.Password, err = a.readPasswordString(t.Password); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		a.println(a.validationMessage(err))
		return nil
	}

	if !a.session.Login(ctx, form.Email, form.Password) {
		a.println(t.LoginFailed)
		return nil
	}
	a.println(t.LoginSuccess)
	return nil
}

// Logout ends the session. Favorites, history and the credential record
// are kept.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.session.Logout(ctx)
	if a.isLoggedIn() {
		return common.ErrorInternal
	}
	a.println(a.t().LogoutSuccess)
	return nil
}

func (a *App) Profile(_ context.Context, _ []string) error {
	t := a.t()
	u := a.session.User()
	if u == nil {
		a.println(t.NotLoggedIn)
		return nil
	}

	a.println(t.Profile)
	a.printf("  %s: %s\n", t.FullName, u.FullName)
	a.printf("  %s: %s\n", t.Email, u.Email)
	a.printf("  %s: %s\n", t.Phone, u.Phone)
	a.printf("  %s: %s\n", t.Address, u.Address)
	a.printf("  %s: %s\n", t.MemberSince, memberSince(u.CreatedAt))
	return nil
}

// EditProfile asks for each editable field; an empty answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	t := a.t()
	u := a.session.User()
	if u == nil {
		a.println(t.NotLoggedIn)
		return nil
	}

	var upd models.UserUpdate
	fields := []struct {
		label   string
		current string
		target  **string
	}{
		{t.FullName, u.FullName, &upd.FullName},
		{t.Phone, u.Phone, &upd.Phone},
		{t.Address, u.Address, &upd.Address},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.label+" ["+f.current+"] ("+t.KeepCurrent+")", a.out)
		if err != nil {
			return err
		}
		if v == "" || v == f.current {
			continue
		}
		*f.target = &v
	}

	if upd.Empty() {
		return nil
	}
	a.session.UpdateUser(ctx, upd)
	a.println(t.ProfileUpdated)
	return nil
}

// validationMessage translates a form validation error.
func (a *App) validationMessage(err error) string {
	t := a.t()

	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		return t.Error
	}
	switch verr.Reason {
	case services.ReasonInvalidEmail:
		return t.InvalidEmail
	case services.ReasonTooShort:
		return t.PasswordTooShort
	case services.ReasonMismatch:
		return t.PasswordsDoNotMatch
	case services.ReasonInvalidNumber:
		return t.InvalidNumber
	default:
		return t.FillAllFields
	}
}

func memberSince(createdAt string) string {
	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return strings.TrimSpace(createdAt)
	}
	return ts.Format("2006-01-02")
}
