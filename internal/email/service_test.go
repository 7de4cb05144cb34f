// internal/email/service_test.go
package email

import (
	"strings"
	"testing"

	"github.com/dwellfix/dwellfix/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceLoadsTemplates(t *testing.T) {
	svc, err := NewService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	_, ok := svc.templates["role_invite"]
	assert.True(t, ok, "role_invite template pair should be loaded at startup")
}

func TestRenderRoleInvite(t *testing.T) {
	svc, err := NewService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	htmlBody, textBody, err := svc.render("role_invite", map[string]string{
		"CompanyName": "Acme Property Group",
		"RoleName":    "Maintenance",
		"Code":        "X4Gp7Q",
		"SignupLink":  "https://app.example.com/signup",
	})
	require.NoError(t, err)
	assert.Contains(t, htmlBody, "X4Gp7Q")
	assert.Contains(t, textBody, "X4Gp7Q")
	assert.True(t, strings.Contains(htmlBody, "Acme Property Group"))
}

func TestSendUnknownTemplate(t *testing.T) {
	svc, err := NewService(&config.Config{}, ProviderSMTP)
	require.NoError(t, err)

	err = svc.Send(Message{To: "someone@example.com", Template: "password_reset"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password_reset")
}
