//go:build unit

package client_test

import (
	"testing"
	"time"

	"frontdesk/internal/domain/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	now := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("normalizes profile", func(t *testing.T) {
		c, err := client.NewClient("hotel-a", client.Profile{
			FirstName:  " Ana ",
			LastName:   "Ruiz",
			Email:      "Ana@Example.com",
			DocumentID: " 12345678 ",
		}, now)
		require.NoError(t, err)
		assert.Equal(t, "Ana Ruiz", c.FullName())
		assert.Equal(t, "ana@example.com", c.Profile().Email)
		assert.Equal(t, client.DocumentDNI, c.Profile().DocumentType)
		assert.Equal(t, "12345678", c.Profile().DocumentID)
		assert.True(t, c.Profile().HasDocument())
	})

	tests := []struct {
		name    string
		profile client.Profile
		errIs   error
	}{
		{name: "no email is fine", profile: client.Profile{FirstName: "A", LastName: "B"}},
		{name: "passport", profile: client.Profile{FirstName: "A", LastName: "B", DocumentType: client.DocumentPassport, DocumentID: "X1"}},
		{name: "missing first name", profile: client.Profile{LastName: "B"}, errIs: client.ErrEmptyName},
		{name: "missing last name", profile: client.Profile{FirstName: "A"}, errIs: client.ErrEmptyName},
		{name: "bad email", profile: client.Profile{FirstName: "A", LastName: "B", Email: "a@"}, errIs: client.ErrInvalidEmail},
		{name: "bad document type", profile: client.Profile{FirstName: "A", LastName: "B", DocumentType: "license"}, errIs: client.ErrInvalidDocumentType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := client.NewClient("hotel-a", tt.profile, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}
