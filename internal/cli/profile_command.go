package cli

import (
	"context"
	"fmt"
)

// ProfileCommand handles the profile update command
type ProfileCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewProfileCommand creates a new profile command handler
func NewProfileCommand(app *App) *ProfileCommand {
	return &ProfileCommand{app: app, errors: NewErrorHandler()}
}

// Execute updates the profile with the given username and email. Blank
// values keep the current ones.
func (c *ProfileCommand) Execute(ctx context.Context, username, email string) error {
	// Round-trip the current profile first so a partial update still
	// sends complete fields.
	current, err := c.app.api.GetProfile(ctx)
	if err != nil {
		return c.errors.Handle("fetch profile", err)
	}

	if username == "" {
		username = current.Username
	}
	if email == "" {
		email = current.Email
	}

	updated, err := c.app.api.UpdateProfile(ctx, username, email)
	if err != nil {
		return c.errors.Handle("update profile", err)
	}

	fmt.Printf("Profile updated: %s <%s>\n", updated.Username, updated.Email)
	return nil
}

// UsersCommand handles the users command
type UsersCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewUsersCommand creates a new users command handler
func NewUsersCommand(app *App) *UsersCommand {
	return &UsersCommand{app: app, errors: NewErrorHandler()}
}

// Execute lists all users, the same data the assignment picker uses
func (c *UsersCommand) Execute(ctx context.Context, args []string) error {
	users, err := c.app.api.ListUsers(ctx)
	if err != nil {
		return c.errors.Handle("list users", err)
	}

	if len(users) == 0 {
		fmt.Println("No users found")
		return nil
	}

	fmt.Printf("%-24s %-10s %s\n", "USERNAME", "ROLE", "EMAIL")
	for _, user := range users {
		fmt.Printf("%-24s %-10s %s\n", user.Username, user.Role, user.Email)
	}
	return nil
}
