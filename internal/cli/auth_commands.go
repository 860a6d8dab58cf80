package cli

import (
	"context"
	"fmt"

	"taskboard/internal/rbac"
)

// LoginCommand handles the login command
type LoginCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{app: app, errors: NewErrorHandler()}
}

// Execute runs the login command with email and password arguments
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: tb login <email> <password>")
	}

	user, err := c.app.api.Login(ctx, args[0], args[1])
	if err != nil {
		return c.errors.Handle("log in", err)
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Username, user.Role)
	return nil
}

// LogoutCommand handles the logout command
type LogoutCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{app: app, errors: NewErrorHandler()}
}

// Execute runs the logout command. Logging out while already logged out
// succeeds quietly.
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	if err := c.app.api.Logout(ctx); err != nil {
		return c.errors.Handle("log out", err)
	}

	fmt.Println("Logged out")
	return nil
}

// RegisterCommand handles the register command
type RegisterCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewRegisterCommand creates a new register command handler
func NewRegisterCommand(app *App) *RegisterCommand {
	return &RegisterCommand{app: app, errors: NewErrorHandler()}
}

// Execute runs the register command. Registration does not log in; the
// new user logs in afterwards.
func (c *RegisterCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return fmt.Errorf("usage: tb register <username> <email> <password> <confirm-password>")
	}

	user, err := c.app.api.Register(ctx, args[0], args[1], args[2], args[3])
	if err != nil {
		return c.errors.Handle("register", err)
	}

	fmt.Printf("Registered %s. Log in with: tb login %s <password>\n", user.Username, user.Email)
	return nil
}

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{app: app, errors: NewErrorHandler()}
}

// Execute shows the current session: profile fields, role and which
// dashboard view the role gets
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	if !c.app.api.Session().IsAuthenticated() {
		fmt.Println("Not logged in")
		return nil
	}

	user, err := c.app.api.GetProfile(ctx)
	if err != nil {
		// A restored session can hold a token the server no longer
		// accepts; report what is known instead of failing the command.
		if c.errors.IsUnauthorizedError(err) {
			fmt.Println("Logged in, but the session token was rejected. Run: tb login <email> <password>")
			return nil
		}
		return c.errors.Handle("fetch profile", err)
	}

	view := "Admin View"
	if rbac.IsPersonalView(user.Role) {
		view = "Personal View"
	}

	fmt.Printf("Username:  %s\n", user.Username)
	fmt.Printf("Email:     %s\n", user.Email)
	fmt.Printf("Role:      %s\n", user.Role)
	fmt.Printf("View:      %s\n", view)
	fmt.Printf("Member since: %s\n", c.app.FormatDate(user.CreatedAt))
	return nil
}
