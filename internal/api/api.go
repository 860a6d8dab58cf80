package api

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/repository/rest"
	"taskboard/internal/session"
	"taskboard/internal/validation"
)

// API defines the interface for all authenticated application operations.
// Client-side validation runs before any payload leaves the process, but
// the server remains the authority on every mutation.
type API interface {
	// Authentication operations
	Login(ctx context.Context, email, password string) (*domain.UserProfile, error)
	Register(ctx context.Context, username, email, password, confirmPassword string) (*domain.UserProfile, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)

	// Profile operations
	GetProfile(ctx context.Context) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, username, email string) (*domain.UserProfile, error)
	ListUsers(ctx context.Context) ([]*domain.UserProfile, error)

	// Task operations
	ListTasks(ctx context.Context) ([]*domain.Task, error)
	GetTask(ctx context.Context, id string) (*domain.Task, error)
	CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, draft domain.TaskDraft) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// Aggregate operations
	GetStats(ctx context.Context) (*domain.StatsSnapshot, error)

	// Session exposes the session store for capability checks
	Session() *session.Store
}

type apiImpl struct {
	repo           rest.Repository
	sessions       *session.Store
	mapper         *domain.Mapper
	taskValidator  *validation.TaskValidator
	credsValidator *validation.CredentialsValidator
}

// New creates a new API instance.
func New(repo rest.Repository, sessions *session.Store) API {
	return &apiImpl{
		repo:           repo,
		sessions:       sessions,
		mapper:         domain.NewMapper(),
		taskValidator:  validation.NewTaskValidator(),
		credsValidator: validation.NewCredentialsValidator(),
	}
}

// Session returns the session store
func (a *apiImpl) Session() *session.Store {
	return a.sessions
}

// Login validates credentials locally, performs the authentication
// exchange and moves the session to the authenticated state.
func (a *apiImpl) Login(ctx context.Context, email, password string) (*domain.UserProfile, error) {
	if err := a.credsValidator.ValidateLogin(email, password); err != nil {
		return nil, err
	}

	result, err := a.repo.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	user := a.mapper.User.FromWire(result.User)
	if err := a.sessions.Login(ctx, result.Token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. It does not log the new user in; the
// caller follows up with Login.
func (a *apiImpl) Register(ctx context.Context, username, email, password, confirmPassword string) (*domain.UserProfile, error) {
	if err := a.credsValidator.ValidateRegistration(username, email, password, confirmPassword); err != nil {
		return nil, err
	}

	wireUser, err := a.repo.Register(ctx, username, email, password)
	if err != nil {
		return nil, err
	}

	user := a.mapper.User.FromWire(*wireUser)
	return &user, nil
}

// Logout clears the session. Idempotent.
func (a *apiImpl) Logout(ctx context.Context) error {
	return a.sessions.Logout(ctx)
}

// Restore rebuilds the session from the persisted token and confirms the
// profile. Returns true when a token was found.
func (a *apiImpl) Restore(ctx context.Context) (bool, error) {
	return a.sessions.Restore(ctx, func(ctx context.Context) (*domain.UserProfile, error) {
		return a.GetProfile(ctx)
	})
}

// GetProfile fetches the authenticated user's profile and refreshes the
// session's cached copy.
func (a *apiImpl) GetProfile(ctx context.Context) (*domain.UserProfile, error) {
	wireUser, err := a.repo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	user := a.mapper.User.FromWire(*wireUser)
	a.sessions.SetUser(&user)
	return &user, nil
}

// UpdateProfile round-trips a profile change through the server.
func (a *apiImpl) UpdateProfile(ctx context.Context, username, email string) (*domain.UserProfile, error) {
	validationError := validation.NewValidationError()
	if username == "" {
		validationError.AddRequiredError("username")
	}
	if email == "" {
		validationError.AddRequiredError("email")
	}
	if validationError.HasErrors() {
		return nil, validationError
	}

	wireUser, err := a.repo.UpdateProfile(ctx, rest.ProfilePayload{Username: username, Email: email})
	if err != nil {
		return nil, err
	}

	user := a.mapper.User.FromWire(*wireUser)
	a.sessions.SetUser(&user)
	return &user, nil
}

// ListUsers fetches all users for assignment selection.
func (a *apiImpl) ListUsers(ctx context.Context) ([]*domain.UserProfile, error) {
	wireUsers, err := a.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.User.FromWireSlice(wireUsers), nil
}

// ListTasks fetches the task collection. Every call is a fresh fetch;
// no authoritative local cache exists behind this.
func (a *apiImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	wireTasks, err := a.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return a.mapper.Task.FromWireSlice(wireTasks)
}

// GetTask fetches a single task.
func (a *apiImpl) GetTask(ctx context.Context, id string) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}

	wireTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task, err := a.mapper.Task.FromWire(*wireTask)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask validates required fields locally, then creates the task.
func (a *apiImpl) CreateTask(ctx context.Context, draft domain.TaskDraft) (*domain.Task, error) {
	if err := a.taskValidator.ValidateDraft(draft); err != nil {
		return nil, err
	}

	wireTask, err := a.repo.CreateTask(ctx, a.mapper.Task.ToPayload(draft))
	if err != nil {
		return nil, err
	}

	task, err := a.mapper.Task.FromWire(*wireTask)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask validates the draft locally, then updates the task.
func (a *apiImpl) UpdateTask(ctx context.Context, id string, draft domain.TaskDraft) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}
	if err := a.taskValidator.ValidateDraft(draft); err != nil {
		return nil, err
	}

	wireTask, err := a.repo.UpdateTask(ctx, id, a.mapper.Task.ToPayload(draft))
	if err != nil {
		return nil, err
	}

	task, err := a.mapper.Task.FromWire(*wireTask)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus changes only a task's status, the one field a plain
// user may edit. The current task is fetched first so the update sends
// the task's existing fields unchanged.
func (a *apiImpl) UpdateTaskStatus(ctx context.Context, id string, status domain.Status) (*domain.Task, error) {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return nil, err
	}
	if err := a.taskValidator.ValidateStatus(status); err != nil {
		return nil, err
	}

	wireTask, err := a.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	payload := rest.TaskPayload{
		Title:       wireTask.Title,
		Description: wireTask.Description,
		DueDate:     wireTask.DueDate,
		Priority:    wireTask.Priority,
		Status:      string(status),
		AssignedTo:  wireTask.AssignedTo.ID,
	}

	updated, err := a.repo.UpdateTask(ctx, id, payload)
	if err != nil {
		return nil, err
	}

	task, err := a.mapper.Task.FromWire(*updated)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task. The server returns an acknowledgment only;
// callers holding a cached collection remove the task themselves.
func (a *apiImpl) DeleteTask(ctx context.Context, id string) error {
	if err := a.taskValidator.ValidateTaskID(id); err != nil {
		return err
	}
	return a.repo.DeleteTask(ctx, id)
}

// GetStats fetches the server-computed dashboard aggregate.
func (a *apiImpl) GetStats(ctx context.Context) (*domain.StatsSnapshot, error) {
	wireStats, err := a.repo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := a.mapper.Stats.FromWire(*wireStats)
	return &snapshot, nil
}
