package rest

// Wire models mirror the JSON shapes the remote API produces and consumes.
// Conversion to domain models happens in the domain mapper.

// UserRef is the embedded assignee reference on a task.
type UserRef struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// User is the API representation of a user account.
type User struct {
	ID        string `json:"_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// Task is the API representation of a task.
type Task struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	DueDate     string  `json:"dueDate"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	AssignedTo  UserRef `json:"assignedTo"`
	CreatedAt   string  `json:"createdAt"`
}

// Stats is the server-computed dashboard aggregate.
type Stats struct {
	TotalTasks      int     `json:"totalTasks"`
	CompletedTasks  int     `json:"completedTasks"`
	PendingTasks    int     `json:"pendingTasks"`
	TodoTasks       int     `json:"todoTasks"`
	InProgressTasks int     `json:"inProgressTasks"`
	CompletionTrend float64 `json:"completionTrend"`
	PendingTrend    float64 `json:"pendingTrend"`
}

// TaskPayload is the request body for task creation and updates.
// AssignedTo carries the assignee's user id.
type TaskPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	AssignedTo  string `json:"assignedTo"`
}

// ProfilePayload is the request body for a profile update.
type ProfilePayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginResult is the successful authentication exchange response.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Message string `json:"message"`
}
