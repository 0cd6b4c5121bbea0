package onboard

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"

	"github.com/GuideToIceland/setup/internal/logger"
)

// provisionKey makes sure an ed25519 keypair exists at the conventional
// location. An existing public key always wins: it is never regenerated,
// rotated or overwritten, whatever its algorithm or state. When absent, the
// key is generated unattended with an empty passphrase and the collected
// email as its comment.
func (p *Pipeline) provisionKey() Result {
	pubPath := p.Profile.PublicKeyPath(p.Home)
	if _, err := os.Stat(pubPath); err == nil {
		logger.Info("[INFO] SSH key already present at %s, keeping it.\n", pubPath)
		return ok()
	}

	keyDir := p.Profile.KeyDir(p.Home)
	if err := os.MkdirAll(keyDir, 0700); err != nil {
		return failf("create %s: %w", keyDir, err)
	}

	privPath := p.Profile.PrivateKeyPath(p.Home)
	logger.Info("[INFO] Generating a new ed25519 SSH key at %s...\n", privPath)
	output, err := p.RunCmd("", "ssh-keygen", "-t", "ed25519", "-C", p.email, "-f", privPath, "-N", "")
	if err != nil {
		logger.Error("[ERROR] ssh-keygen failed: %v\nOutput: %s\n", err, output)
		return failf("generate SSH key: %w", err)
	}
	return ok()
}

// guideEnrollment prints the public key verbatim together with instructions
// for adding it to the user's GitHub account, then blocks until the user
// confirms. Any answer, including none, unblocks; the following probe is
// what actually checks the enrollment.
func (p *Pipeline) guideEnrollment() Result {
	pubPath := p.Profile.PublicKeyPath(p.Home)
	data, err := os.ReadFile(pubPath)
	if err != nil {
		return failf("read public key %s: %w", pubPath, err)
	}

	fmt.Fprintln(p.Out)
	fmt.Fprintln(p.Out, "Your public SSH key:")
	fmt.Fprintln(p.Out)
	fmt.Fprint(p.Out, string(data))
	fmt.Fprintln(p.Out)

	// Best effort fingerprint so the user can match the key in the GitHub
	// key list. An unparseable key still gets printed and enrolled by hand.
	if key, comment, _, _, perr := ssh.ParseAuthorizedKey(data); perr == nil {
		logger.Info("[INFO] Key fingerprint: %s (%s)\n", ssh.FingerprintSHA256(key), comment)
	} else {
		logger.Debug("[DEBUG] Could not parse public key for a fingerprint: %v\n", perr)
	}

	fmt.Fprintln(p.Out, "Add this key to your GitHub account:")
	fmt.Fprintf(p.Out, "  1. Open %s\n", p.Profile.SettingsURL)
	fmt.Fprintln(p.Out, "  2. Click \"New SSH key\", paste the key shown above and save.")
	fmt.Fprintln(p.Out)

	if _, err := p.Prompt.Prompt("Press Enter once the key is added to GitHub... "); err != nil {
		return failf("wait for enrollment confirmation: %w", err)
	}
	return ok()
}
