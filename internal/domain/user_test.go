package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupInput_Validate(t *testing.T) {
	valid := SignupInput{Email: "a@b.com", Password: "pw123456", FirstName: "Ann", LastName: "Lee"}
	require.NoError(t, valid.Validate())

	longest := SignupInput{Email: "a@b.com", Password: strings.Repeat("p", MaxPasswordBytes), FirstName: "Ann", LastName: "Lee"}
	require.NoError(t, longest.Validate())

	tests := []struct {
		name  string
		input SignupInput
		msg   string
	}{
		{"missing email", SignupInput{Password: "pw", FirstName: "Ann", LastName: "Lee"}, "Missing required fields"},
		{"missing password", SignupInput{Email: "a@b.com", FirstName: "Ann", LastName: "Lee"}, "Missing required fields"},
		{"blank first name", SignupInput{Email: "a@b.com", Password: "pw", FirstName: "  ", LastName: "Lee"}, "Missing required fields"},
		{"missing last name", SignupInput{Email: "a@b.com", Password: "pw", FirstName: "Ann"}, "Missing required fields"},
		{"bad email", SignupInput{Email: "not-an-email", Password: "pw", FirstName: "Ann", LastName: "Lee"}, "Invalid email address"},
		{"password too long", SignupInput{Email: "a@b.com", Password: strings.Repeat("p", 80), FirstName: "Ann", LastName: "Lee"}, "Password must be at most 72 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			require.Error(t, err)
			var v ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.msg, v.Message)
		})
	}
}

func TestLoginInput_Validate(t *testing.T) {
	assert.NoError(t, (&LoginInput{Email: "a@b.com", Password: "x"}).Validate())

	err := (&LoginInput{Email: "a@b.com"}).Validate()
	var v ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "Missing email or password", v.Message)
}

func TestUser_Validate(t *testing.T) {
	user := &User{ID: "u1", Email: "a@b.com", PasswordHash: "hash", FirstName: "Ann", LastName: "Lee", Role: UserRoleUser}
	assert.NoError(t, user.Validate())
	assert.False(t, user.IsAdmin())

	user.Role = "root"
	assert.Error(t, user.Validate())

	user.Role = UserRoleAdmin
	assert.True(t, user.IsAdmin())

	user.Email = "nope"
	assert.Error(t, user.Validate())
}

func TestUser_Summary(t *testing.T) {
	user := &User{ID: "u1", Email: "a@b.com", PasswordHash: "secret", FirstName: "Ann", LastName: "Lee"}
	assert.Equal(t, UserSummary{ID: "u1", Email: "a@b.com", FirstName: "Ann", LastName: "Lee"}, user.Summary())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  Ann@Example.COM "))
}

func TestDefaultWorkspaceName(t *testing.T) {
	assert.Equal(t, "Ann's Workspace", DefaultWorkspaceName("Ann"))
}

func TestCreateUserRequest_Validate(t *testing.T) {
	req := CreateUserRequest{Email: "a@b.com", Password: "pw123456", FirstName: "Ann", LastName: "Lee", Role: UserRoleAdmin}
	require.NoError(t, req.Validate())

	req.Password = strings.Repeat("p", MaxPasswordBytes+1)
	var v ValidationError
	require.ErrorAs(t, req.Validate(), &v)
	assert.Equal(t, "Password must be at most 72 bytes", v.Message)

	req.Password = "pw123456"
	req.Role = "owner"
	require.ErrorAs(t, req.Validate(), &v)
	assert.Equal(t, "Role must be user or admin", v.Message)
}
