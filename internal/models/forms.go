package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column widths of users.username and books.title, and the bcrypt input limit.
const (
	MaxUsernameLength = 80
	MaxTitleLength    = 255
	MaxPasswordBytes  = 72
)

func checkUsername(field, username string) error {
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return &ValidationError{Field: field, Message: fmt.Sprintf("Username must be at most %d characters.", MaxUsernameLength)}
	}
	return nil
}

func checkPassword(field, password string) error {
	if len(password) > MaxPasswordBytes {
		return &ValidationError{Field: field, Message: fmt.Sprintf("Password must be at most %d bytes.", MaxPasswordBytes)}
	}
	return nil
}

// RegisterForm is the typed body of POST /register.
type RegisterForm struct {
	Username        string
	Password        string
	ConfirmPassword string // optional; checked only when sent
	ConfirmSent     bool
}

// Validate checks required fields and the optional confirmation.
func (f *RegisterForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" {
		return &ValidationError{Field: "username", Message: "Username is required."}
	}
	if err := checkUsername("username", f.Username); err != nil {
		return err
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Message: "Password is required."}
	}
	if err := checkPassword("password", f.Password); err != nil {
		return err
	}
	if f.ConfirmSent && f.Password != f.ConfirmPassword {
		return &ValidationError{Field: "confirm_password", Message: "Passwords do not match."}
	}
	return nil
}

// LoginForm is the typed body of POST /login.
type LoginForm struct {
	Username string
	Password string
}

// Validate checks required fields.
func (f *LoginForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" || f.Password == "" {
		return &ValidationError{Field: "credentials", Message: "Username and password are required."}
	}
	return nil
}

// ProfileForm is the typed body of POST /edit_profile. Empty fields are left unchanged.
type ProfileForm struct {
	NewUsername string
	NewPassword string
}

// Validate requires at least one change and bounds the new values.
func (f *ProfileForm) Validate() error {
	f.NewUsername = strings.TrimSpace(f.NewUsername)
	if f.NewUsername == "" && f.NewPassword == "" {
		return &ValidationError{Field: "profile", Message: "Nothing to update."}
	}
	if err := checkUsername("new_username", f.NewUsername); err != nil {
		return err
	}
	return checkPassword("new_password", f.NewPassword)
}

// BookForm is the typed body of POST /add_book and POST /admin/edit_book/{id}.
type BookForm struct {
	Title string
	Image []byte // nil when no file was uploaded
}

// Validate requires a non-empty title that fits the column.
func (f *BookForm) Validate() error {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return &ValidationError{Field: "title", Message: "Title is required."}
	}
	if utf8.RuneCountInString(f.Title) > MaxTitleLength {
		return &ValidationError{Field: "title", Message: fmt.Sprintf("Title must be at most %d characters.", MaxTitleLength)}
	}
	return nil
}

// AdminUserForm is the typed body of POST /admin/edit_user/{id}.
type AdminUserForm struct {
	Username string
	IsAdmin  bool
}

// Validate requires a username that fits the column.
func (f *AdminUserForm) Validate() error {
	f.Username = strings.TrimSpace(f.Username)
	if f.Username == "" {
		return &ValidationError{Field: "username", Message: "Username is required."}
	}
	return checkUsername("username", f.Username)
}
