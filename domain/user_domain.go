package domain

// DefaultRecipesLimit caps the recipes embedded in a subscription profile
// when the request does not pass recipes_limit.
const DefaultRecipesLimit = 3

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessLogout        = "logout successful"
	MessageSuccessGetUser       = "success get user"
	MessageSuccessGetUsers      = "success get users"
	MessageSuccessSetPassword   = "password changed successfully"
	MessageSuccessResetPassword = "reset password email sent"
	MessageSuccessConfirmReset  = "password reset successfully"
	MessageSuccessGetSubscribed = "success get subscriptions"
	MessageSuccessSubscribe     = "subscribed successfully"
	MessageSuccessUnsubscribe   = "unsubscribed successfully"
	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetUser        = "failed to get user"
	MessageFailedGetUsers       = "failed to get users"
	MessageFailedSetPassword    = "failed to change password"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedGetSubscribed  = "failed to get subscriptions"
	MessageFailedSubscribe      = "failed to subscribe"
	MessageFailedUnsubscribe    = "failed to unsubscribe"

	ErrUserNotFound       = NewNotFoundError("user not found")
	ErrEmailTaken         = NewConflictError("user with this email already exists")
	ErrUsernameTaken      = NewConflictError("user with this username already exists")
	ErrUserExists         = NewConflictError("user with this email or username already exists")
	ErrInvalidCredentials = NewValidationError("", "unable to log in with provided credentials")
	ErrWrongPassword      = NewValidationError("current_password", "invalid password")
	ErrSelfSubscription   = NewValidationError("author", "self-subscription forbidden")

	ErrTokenNotFound = &Error{Kind: ErrAuthenticationRequired, Message: "failed to token not found"}
	ErrTokenExpired  = &Error{Kind: ErrAuthenticationRequired, Message: "token expired"}
	ErrTokenInvalid  = &Error{Kind: ErrAuthenticationRequired, Message: "token invalid"}
)

type (
	RegisterRequest struct {
		Email     string `json:"email" validate:"required,email,max=254"`
		Username  string `json:"username" validate:"required,max=150,username"`
		FirstName string `json:"first_name" validate:"required,max=150"`
		LastName  string `json:"last_name" validate:"required,max=150"`
		Password  string `json:"password" validate:"required,min=8,max=150"`
	}

	RegisterResponse struct {
		Email     string `json:"email"`
		ID        string `json:"id"`
		Username  string `json:"username"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AuthToken string `json:"auth_token"`
	}

	SetPasswordRequest struct {
		NewPassword     string `json:"new_password" validate:"required,min=8,max=150"`
		CurrentPassword string `json:"current_password" validate:"required"`
	}

	ResetPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordConfirmRequest struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"new_password" validate:"required,min=8,max=150"`
	}

	UserProfile struct {
		Email        string `json:"email"`
		ID           string `json:"id"`
		Username     string `json:"username"`
		FirstName    string `json:"first_name"`
		LastName     string `json:"last_name"`
		IsSubscribed bool   `json:"is_subscribed"`
	}

	SubscriptionResponse struct {
		UserProfile
		Recipes      []RecipeSummary `json:"recipes"`
		RecipesCount int64           `json:"recipes_count"`
	}
)
