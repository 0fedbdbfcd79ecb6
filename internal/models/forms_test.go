package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterForm_Validate(t *testing.T) {
	tests := []struct {
		name      string
		form      RegisterForm
		wantField string
	}{
		{"valid", RegisterForm{Username: " alice ", Password: "pw1"}, ""},
		{"valid with confirmation", RegisterForm{Username: "alice", Password: "pw1", ConfirmPassword: "pw1", ConfirmSent: true}, ""},
		{"missing username", RegisterForm{Username: "  ", Password: "pw1"}, "username"},
		{"missing password", RegisterForm{Username: "alice"}, "password"},
		{"confirmation mismatch", RegisterForm{Username: "alice", Password: "pw1", ConfirmPassword: "pw2", ConfirmSent: true}, "confirm_password"},
		{"username too long", RegisterForm{Username: strings.Repeat("a", MaxUsernameLength+1), Password: "pw1"}, "username"},
		{"password too long", RegisterForm{Username: "alice", Password: strings.Repeat("p", MaxPasswordBytes+1)}, "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				assert.Equal(t, "alice", tt.form.Username)
				return
			}
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestBookForm_Validate(t *testing.T) {
	f := BookForm{Title: "  Go  "}
	assert.NoError(t, f.Validate())
	assert.Equal(t, "Go", f.Title)

	empty := BookForm{Title: " "}
	err := empty.Validate()
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "title: Title is required.", err.Error())
}

func TestProfileForm_Validate(t *testing.T) {
	assert.Error(t, (&ProfileForm{}).Validate())
	assert.NoError(t, (&ProfileForm{NewUsername: "bob"}).Validate())
	assert.NoError(t, (&ProfileForm{NewPassword: "secret"}).Validate())
}

func TestLoginAndAdminForms_Validate(t *testing.T) {
	assert.Error(t, (&LoginForm{Username: "alice"}).Validate())
	assert.NoError(t, (&LoginForm{Username: "alice", Password: "pw"}).Validate())
	assert.Error(t, (&AdminUserForm{Username: ""}).Validate())
	assert.NoError(t, (&AdminUserForm{Username: "carol", IsAdmin: true}).Validate())
}

func TestForms_LengthLimits(t *testing.T) {
	longName := strings.Repeat("a", MaxUsernameLength+1)
	// multi-byte runes count as one character each, like VARCHAR(n)
	fitsName := strings.Repeat("ä", MaxUsernameLength)
	longTitle := strings.Repeat("t", MaxTitleLength+1)
	fitsTitle := strings.Repeat("ж", MaxTitleLength)

	tests := []struct {
		name      string
		form      interface{ Validate() error }
		wantField string
		wantMsg   string
	}{
		{"register name at limit", &RegisterForm{Username: fitsName, Password: "pw"}, "", ""},
		{"register name over limit", &RegisterForm{Username: longName, Password: "pw"}, "username", "Username must be at most 80 characters."},
		{"profile name over limit", &ProfileForm{NewUsername: longName}, "new_username", "Username must be at most 80 characters."},
		{"profile password over limit", &ProfileForm{NewPassword: strings.Repeat("p", MaxPasswordBytes+1)}, "new_password", "Password must be at most 72 bytes."},
		{"admin name at limit", &AdminUserForm{Username: fitsName}, "", ""},
		{"admin name over limit", &AdminUserForm{Username: longName}, "username", "Username must be at most 80 characters."},
		{"title at limit", &BookForm{Title: fitsTitle}, "", ""},
		{"title over limit", &BookForm{Title: longTitle}, "title", "Title must be at most 255 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			assert.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
			assert.Equal(t, tt.wantMsg, verr.Message)
		})
	}
}
