package validation

import (
	"taskboard/internal/domain"
)

// TaskValidator provides validation for task drafts before they are sent
// to the server. The server remains the authority; this check exists to
// avoid a round trip for input the server would reject anyway.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// ValidateDraft validates a task draft for creation or a full update.
// Title, description, due date and assignee are all required.
func (tv *TaskValidator) ValidateDraft(draft domain.TaskDraft) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(draft.Title) {
		validationError.AddRequiredError("title")
	}
	if !tv.validator.IsNonEmptyString(draft.Description) {
		validationError.AddRequiredError("description")
	}
	if !tv.validator.IsNonEmptyString(draft.DueDate) {
		validationError.AddRequiredError("due_date")
	} else if !tv.validator.IsValidDueDate(draft.DueDate) {
		validationError.AddInvalidFormatError("due_date", draft.DueDate, dueDateFormat)
	}
	if !tv.validator.IsNonEmptyString(draft.AssignedTo) {
		validationError.AddRequiredError("assigned_to")
	}

	if draft.Priority != "" && !draft.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", draft.Priority, "must be low, medium or high")
	}
	if draft.Status != "" && !draft.Status.IsValid() {
		validationError.AddInvalidValueError("status", draft.Status, "must be todo, in_progress or completed")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateStatus validates a bare status value, the only field a plain
// user may change on a task
func (tv *TaskValidator) ValidateStatus(status domain.Status) error {
	if !status.IsValid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("status", status, "must be todo, in_progress or completed")
		return validationError
	}
	return nil
}

// ValidateTaskID validates a task identifier
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return validationError
	}
	return nil
}
