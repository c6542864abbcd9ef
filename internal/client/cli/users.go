package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/psemenov/raclient/internal/client/services"
	"github.com/psemenov/raclient/internal/common"
)

// Users lists accounts, optionally narrowed to active or inactive ones.
func (a *App) Users(ctx context.Context, filter string) error {
	f := services.StatusFilter(filter)
	switch f {
	case "", services.FilterAll, services.FilterActive, services.FilterInactive:
	default:
		fmt.Println("Usage: users [all|active|inactive]")
		return nil
	}

	users, err := a.userService.List(ctx, f)
	if err != nil {
		log.Printf("Could not list users: %v", err)
		return err
	}

	fmt.Printf("%-5s %-20s %-30s %-6s %-8s\n", "ID", "NAME", "EMAIL", "ADMIN", "ACTIVE")
	for _, u := range users {
		fmt.Printf("%-5d %-20s %-30s %-6v %-8v\n", u.ID, u.Name, u.Email, u.IsAdmin, u.IsActive)
	}
	return nil
}

// AddUser prompts for the details of a new account, including its role.
func (a *App) AddUser(ctx context.Context) error {
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

	role, err := getSimpleText(a.reader, "Role [user/admin]", os.Stdout)
	if err != nil {
		return err
	}
	isAdmin := strings.EqualFold(role, "admin")

	user, err := a.userService.Create(ctx, name, email, string(password), isAdmin)
	if err != nil {
		log.Printf("Could not create user: %v", err)
		return err
	}

	fmt.Printf("Created #%d %s\n", user.ID, user.Email)
	return nil
}

// Toggle flips a user's active flag. Toggling your own account is rejected
// before anything is sent.
func (a *App) Toggle(ctx context.Context, idArg string) error {
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		fmt.Println("Usage: toggle <id>")
		return nil
	}

	user, err := a.userService.SetActive(ctx, id)
	if err != nil {
		log.Printf("Could not update user %d: %v", id, err)
		return err
	}

	status := "inactive"
	if user.IsActive {
		status = "active"
	}
	fmt.Printf("User #%d is now %s\n", user.ID, status)
	return nil
}
