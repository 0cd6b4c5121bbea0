package onboard

import (
	"strings"

	"github.com/GuideToIceland/setup/internal/logger"
)

// verifyAccess probes SSH authentication against the remote host exactly
// once. GitHub terminates the connection after printing an authentication
// banner instead of granting a shell, so the probe's exit status is useless;
// only the marker substring in the combined output counts. No retries, the
// one probe decides.
func (p *Pipeline) verifyAccess() Result {
	logger.Info("[INFO] Checking SSH access to %s...\n", p.Profile.Host)
	output, _ := p.RunCmd("", "ssh", "-T", "git@"+p.Profile.Host)
	logger.Debug("[DEBUG] ssh probe output: %s\n", output)

	if strings.Contains(output, p.Profile.SuccessMarker) {
		logger.Info("[INFO] SSH authentication to %s works.\n", p.Profile.Host)
		return ok()
	}

	logger.Error("[ERROR] Could not authenticate to %s over SSH. Likely causes:\n", p.Profile.Host)
	logger.Error("    1. The key was not added to your GitHub account yet.\n")
	logger.Error("    2. The key was added moments ago and has not propagated, wait a minute and rerun.\n")
	logger.Error("    3. A firewall or local SSH configuration is blocking %s.\n", p.Profile.Host)
	return failf("SSH authentication to %s failed", p.Profile.Host)
}
