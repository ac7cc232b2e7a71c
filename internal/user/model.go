package user

// Profile is the authenticated user as returned by /api/users/profile.
type Profile struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the sign-up form. ConfirmPassword is never sent.
type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"-" validate:"eqfield=Password"`
	Username        string `json:"username" validate:"required"`
	Phone           string `json:"phone" validate:"required,numeric"`
	Address         string `json:"address"`
}
