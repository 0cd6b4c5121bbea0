package onboard

import (
	"github.com/GuideToIceland/setup/internal/logger"
)

// collectIdentity asks for the email address that labels the generated SSH
// key. The prompt reads from the controlling terminal, not process stdin.
// An empty answer is fatal; there is no retry loop, rerun the setup instead.
func (p *Pipeline) collectIdentity() Result {
	email, err := p.Prompt.Prompt("Enter your work email (it labels your SSH key): ")
	if err != nil {
		return failf("read email: %w", err)
	}
	if email == "" {
		logger.Error("[ERROR] An email address is required. Nothing was changed on this machine.\n")
		return failf("no email address provided")
	}
	p.email = email
	logger.Debug("[DEBUG] Using identity %s\n", email)
	return ok()
}
