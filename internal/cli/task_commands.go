package cli

import (
	"context"
	"fmt"

	"taskboard/internal/domain"
	"taskboard/internal/rbac"
)

// ShowCommand handles the show command
type ShowCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app, errors: NewErrorHandler()}
}

// Execute fetches and prints a single task
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tb show <task-id>")
	}

	task, err := c.app.api.GetTask(ctx, args[0])
	if err != nil {
		return c.errors.Handle("fetch task", err)
	}

	fmt.Printf("Title:       %s\n", task.Title)
	fmt.Printf("Description: %s\n", task.Description)
	fmt.Printf("Due:         %s\n", c.app.FormatDate(task.DueDate))
	fmt.Printf("Priority:    %s\n", task.Priority)
	fmt.Printf("Status:      %s\n", task.Status.Label())
	fmt.Printf("Assigned to: %s\n", task.AssignedTo.Username)
	fmt.Printf("Created:     %s\n", c.app.FormatTime(task.CreatedAt))
	return nil
}

// TaskFlags holds the field flags shared by create and update
type TaskFlags struct {
	Title       string
	Description string
	DueDate     string
	Priority    string
	Status      string
	AssignedTo  string
}

// toDraft converts flag values to a task draft
func (f TaskFlags) toDraft() domain.TaskDraft {
	draft := domain.TaskDraft{
		Title:       f.Title,
		Description: f.Description,
		DueDate:     f.DueDate,
		Priority:    domain.Priority(f.Priority),
		Status:      domain.Status(f.Status),
		AssignedTo:  f.AssignedTo,
	}
	if draft.Priority == "" {
		draft.Priority = domain.PriorityMedium
	}
	if draft.Status == "" {
		draft.Status = domain.StatusTodo
	}
	return draft
}

// CreateCommand handles the create command
type CreateCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewCreateCommand creates a new create command handler
func NewCreateCommand(app *App) *CreateCommand {
	return &CreateCommand{app: app, errors: NewErrorHandler()}
}

// Execute creates a task from the flag values. The capability check is
// a UX gate only; the server re-validates the mutation regardless.
func (c *CreateCommand) Execute(ctx context.Context, flags TaskFlags) error {
	if !rbac.CanManageTasks(c.app.api.Session().Role()) {
		return fmt.Errorf("your role cannot create tasks")
	}

	task, err := c.app.api.CreateTask(ctx, flags.toDraft())
	if err != nil {
		return c.errors.Handle("create task", err)
	}

	fmt.Printf("Created task %s: %s\n", task.ID, task.Title)
	return nil
}

// UpdateCommand handles the update command
type UpdateCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{app: app, errors: NewErrorHandler()}
}

// Execute updates a task. Roles without the manage capability may change
// the status only, the same shape the product's edit form offers them.
func (c *UpdateCommand) Execute(ctx context.Context, id string, flags TaskFlags) error {
	role := c.app.api.Session().Role()

	if !rbac.CanManageTasks(role) {
		if flags.Title != "" || flags.Description != "" || flags.DueDate != "" || flags.Priority != "" || flags.AssignedTo != "" {
			return fmt.Errorf("your role can only change a task's status (use --status)")
		}
		if flags.Status == "" {
			return fmt.Errorf("nothing to update: pass --status")
		}

		task, err := c.app.api.UpdateTaskStatus(ctx, id, domain.Status(flags.Status))
		if err != nil {
			return c.errors.Handle("update task", err)
		}
		fmt.Printf("Updated task %s: status is now %s\n", task.ID, task.Status.Label())
		return nil
	}

	// Managers edit the full task; unset flags keep current values.
	current, err := c.app.api.GetTask(ctx, id)
	if err != nil {
		return c.errors.Handle("fetch task", err)
	}

	draft := domain.TaskDraft{
		Title:       valueOr(flags.Title, current.Title),
		Description: valueOr(flags.Description, current.Description),
		DueDate:     valueOr(flags.DueDate, c.app.FormatDate(current.DueDate)),
		Priority:    domain.Priority(valueOr(flags.Priority, string(current.Priority))),
		Status:      domain.Status(valueOr(flags.Status, string(current.Status))),
		AssignedTo:  valueOr(flags.AssignedTo, current.AssignedTo.ID),
	}

	task, err := c.app.api.UpdateTask(ctx, id, draft)
	if err != nil {
		return c.errors.Handle("update task", err)
	}

	fmt.Printf("Updated task %s: %s\n", task.ID, task.Title)
	return nil
}

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app    *App
	errors *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app, errors: NewErrorHandler()}
}

// Execute deletes a task by id
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tb delete <task-id>")
	}

	if !rbac.CanDeleteTasks(c.app.api.Session().Role()) {
		return fmt.Errorf("your role cannot delete tasks")
	}

	if err := c.app.api.DeleteTask(ctx, args[0]); err != nil {
		return c.errors.Handle("delete task", err)
	}

	fmt.Printf("Deleted task %s\n", args[0])
	return nil
}

// valueOr returns value unless it is empty, in which case fallback
func valueOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
