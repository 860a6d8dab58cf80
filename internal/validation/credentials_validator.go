package validation

const (
	usernameMinLength = 3
	usernameMaxLength = 20
	passwordMinLength = 8
)

// CredentialsValidator provides validation for login and registration
// input, resolved locally before any network call
type CredentialsValidator struct {
	validator *Validator
}

// NewCredentialsValidator creates a new credentials validator
func NewCredentialsValidator() *CredentialsValidator {
	return &CredentialsValidator{
		validator: NewValidator(),
	}
}

// ValidateLogin validates login credentials: a well-formed email address
// and a password of at least eight characters
func (cv *CredentialsValidator) ValidateLogin(email, password string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(email) {
		validationError.AddRequiredError("email")
	} else if !cv.validator.IsValidEmail(email) {
		validationError.AddInvalidFormatError("email", email, "a valid email address")
	}

	if password == "" {
		validationError.AddRequiredError("password")
	} else if !cv.validator.HasMinLength(password, passwordMinLength) {
		validationError.AddInvalidLengthError("password", nil, passwordMinLength, 0)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateRegistration validates registration input. The password must be
// at least eight characters and include uppercase, lowercase, a digit and
// a special character; the confirmation must match.
func (cv *CredentialsValidator) ValidateRegistration(username, email, password, confirmPassword string) error {
	validationError := NewValidationError()

	if !cv.validator.IsNonEmptyString(username) {
		validationError.AddRequiredError("username")
	} else if !cv.validator.IsValidStringLength(username, usernameMinLength, usernameMaxLength) {
		validationError.AddInvalidLengthError("username", username, usernameMinLength, usernameMaxLength)
	}

	if !cv.validator.IsNonEmptyString(email) {
		validationError.AddRequiredError("email")
	} else if !cv.validator.IsValidEmail(email) {
		validationError.AddInvalidFormatError("email", email, "a valid email address")
	}

	if password == "" {
		validationError.AddRequiredError("password")
	} else {
		if !cv.validator.HasMinLength(password, passwordMinLength) {
			validationError.AddInvalidLengthError("password", nil, passwordMinLength, 0)
		}
		if !cv.validator.IsStrongPassword(password) {
			validationError.AddInvalidValueError("password", nil, "must include uppercase, lowercase, number, and special character")
		}
	}

	if confirmPassword == "" {
		validationError.AddRequiredError("confirm_password")
	} else if password != confirmPassword {
		validationError.AddMismatchError("confirm_password", "passwords must match")
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
