package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// MagicLink runs the request phase of the passwordless flow: the backend
// sends a one-time login link out of band. No local state is produced;
// the link lands in the user's mailbox and is redeemed via Verify.
func (a *App) MagicLink(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.RequestMagicLink(ctx, email); err != nil {
		log.Printf("Magic link request failed: %v", err)
		return err
	}

	fmt.Println("Magic login link sent to your email.")
	fmt.Println("Open it and run: verify <code>")
	return nil
}

// Verify runs the verify phase: it redeems the single-use code for a bearer
// token and rebuilds the session from scratch. It is reachable directly
// from the command line with nothing but the code, so it must not depend
// on anything the request phase set up.
func (a *App) Verify(ctx context.Context, code string) error {
	if err := a.authService.VerifyMagicLink(ctx, code); err != nil {
		log.Printf("Magic link verification failed: %v", err)
		return err
	}

	if user, ok := a.session.CurrentUser(); ok {
		fmt.Printf("Logged in as %s\n", user.Email)
	}
	return nil
}
