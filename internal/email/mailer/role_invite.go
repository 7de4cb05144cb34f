// internal/email/mailer/role_invite.go
package mailer

import "github.com/dwellfix/dwellfix/internal/email"

// RoleInviteTemplateData feeds the role_invite template pair.
type RoleInviteTemplateData struct {
	CompanyName string
	RoleName    string
	Code        string
	SignupLink  string
}

// SendRoleInvite mails an invite code that unlocks the given role during
// self-service onboarding.
func SendRoleInvite(s *email.Service, to, companyName, roleName, code, signupLink string) error {
	return s.Send(email.Message{
		To:       to,
		FromName: "Dwellfix",
		Subject:  "You have been invited to " + companyName + " on Dwellfix",
		Template: "role_invite",
		Data: RoleInviteTemplateData{
			CompanyName: companyName,
			RoleName:    roleName,
			Code:        code,
			SignupLink:  signupLink,
		},
	})
}
