// Package profile pins every fixed choice of the onboarding workflow in one
// place: the GitHub organization, the SSH key location, the tools to install
// and the exact strings matched against or written to the user's machine.
// The workflow takes no flags, environment variables or config files, so
// these values are compiled in rather than loaded.
package profile

import (
	"fmt"
	"path/filepath"
)

// Profile describes one onboarding target.
type Profile struct {
	Organization string // GitHub organization owning the repositories
	Host         string // remote source-control host
	DefaultRepo  string // repository cloned when no argument is given

	KeyDirName string // SSH directory name under the user's home
	KeyName    string // base name of the keypair files

	SuccessMarker string // substring the SSH probe prints on successful auth
	SettingsURL   string // where the user enrolls the public key

	TaskInstallerURL string // installer script for the task runner
	InstallSubdir    string // destination for installed binaries, relative to home

	Runtime        string   // language runtime gating the auxiliary tool installs
	RuntimeTools   []string // tools installed through the runtime's package fetch
	PathExportLine string   // exact line appended to the shell startup file

	HooksTool       string // hooks manager looked up on PATH
	HooksConfigFile string // hooks declaration file inside a clone
}

// Default returns the GuideToIceland onboarding profile.
func Default() Profile {
	return Profile{
		Organization: "GuideToIceland",
		Host:         "github.com",
		DefaultRepo:  "monorepo",

		KeyDirName: ".ssh",
		KeyName:    "id_ed25519",

		SuccessMarker: "successfully authenticated",
		SettingsURL:   "https://github.com/settings/keys",

		TaskInstallerURL: "https://taskfile.dev/install.sh",
		InstallSubdir:    filepath.Join(".local", "bin"),

		Runtime:        "python3",
		RuntimeTools:   []string{"pre-commit", "yamllint", "detect-secrets"},
		PathExportLine: `export PATH="$HOME/.local/bin:$PATH"`,

		HooksTool:       "pre-commit",
		HooksConfigFile: ".pre-commit-config.yaml",
	}
}

// ResolveRepository picks the repository to onboard: a non-empty argument is
// used verbatim, anything else falls back to the default. No further
// validation happens here, a bad name simply fails at clone time.
func (p Profile) ResolveRepository(arg string) string {
	if arg != "" {
		return arg
	}
	return p.DefaultRepo
}

// RemoteAddress builds the SSH remote for a repository, e.g.
// git@github.com:GuideToIceland/monorepo.git
func (p Profile) RemoteAddress(repo string) string {
	return fmt.Sprintf("git@%s:%s/%s.git", p.Host, p.Organization, repo)
}

// KeyDir returns the SSH directory for the given home directory.
func (p Profile) KeyDir(home string) string {
	return filepath.Join(home, p.KeyDirName)
}

// PrivateKeyPath returns the private key location under home.
func (p Profile) PrivateKeyPath(home string) string {
	return filepath.Join(p.KeyDir(home), p.KeyName)
}

// PublicKeyPath returns the public key location under home. Its existence is
// the only guard against regenerating a key.
func (p Profile) PublicKeyPath(home string) string {
	return p.PrivateKeyPath(home) + ".pub"
}

// InstallDir returns the binary installation destination under home.
func (p Profile) InstallDir(home string) string {
	return filepath.Join(home, p.InstallSubdir)
}
