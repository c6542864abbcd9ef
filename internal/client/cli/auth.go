package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/psemenov/raclient/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and runs the password protocol. The user is
// authenticated only once the session controller has confirmed the identity
// with the backend; until then the prompt stays on the login surface.
//
// The password buffer is wiped before returning. Every failure prints the
// same message, whether the password is wrong or the account is unknown
// or inactive.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.PasswordLogin(ctx, email, string(password)); err != nil {
		log.Printf("Login unsuccessful: %v", err)
		return err
	}

	if user, ok := a.session.CurrentUser(); ok {
		fmt.Printf("Logged in as %s\n", user.Email)
	}
	return nil
}

// Logout clears the stored credential and returns to the anonymous prompt.
// It always takes local effect; no backend call is involved.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("Logout cleanup error: %v", err)
		return err
	}
	fmt.Println("Logged out")
	return nil
}

// Signup prompts for account details and self-registers. The new account
// still has to log in afterwards.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter full name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Signup(ctx, name, email, string(password))
	if err != nil {
		log.Printf("Signup unsuccessful: %v", err)
		return err
	}

	fmt.Printf("Account %s created, you can now log in\n", user.Email)
	return nil
}
