//go:build unit

package user_test

import (
	"testing"

	"frontdesk/internal/domain/user"
	"frontdesk/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewUserBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := user.NewEmail("test@example.com")
		expected := user.NewUser(email, "hashed_password", b.Now)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email is lowercased", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithEmail("  Front.Desk@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "front.desk@example.com", actual.Email().Value())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "valid email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") },
			},
			{
				name:   "empty email",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "invalid format",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") },
				errIs:  user.ErrInvalidEmail,
			},
		})
	})

	t.Run("inactive user", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsInactive().BuildDomain()
		require.NoError(t, err)
		assert.False(t, actual.IsActive())
	})
}

func TestMembershipRole(t *testing.T) {
	usr, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	tests := []struct {
		role  string
		errIs error
	}{
		{role: "admin"},
		{role: "operator"},
		{role: "viewer"},
		{role: "invalid_role", errIs: user.ErrInvalidRole},
		{role: "", errIs: user.ErrInvalidRole},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			m, err := builder.NewUserBuilder().WithRole(tt.role).BuildMembership(usr.ID())
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, usr.ID(), m.UserID)
			assert.Equal(t, "hotel-test", m.HotelID)
		})
	}
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, user.RoleAdmin.AtLeast(user.RoleOperator))
	assert.True(t, user.RoleOperator.AtLeast(user.RoleOperator))
	assert.True(t, user.RoleOperator.AtLeast(user.RoleViewer))
	assert.False(t, user.RoleViewer.AtLeast(user.RoleOperator))
	assert.False(t, user.Role("guest").AtLeast(user.RoleViewer))
	assert.False(t, user.RoleAdmin.AtLeast(user.Role("root")))
}

func TestPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	p, err := user.NewPassword("long-enough")
	require.NoError(t, err)
	assert.Equal(t, "long-enough", p.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewUserBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
