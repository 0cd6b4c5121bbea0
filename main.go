package main

import (
	"github.com/GuideToIceland/setup/cmd"
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing
// and execution.
//
// setup is the GuideToIceland developer onboarding tool. Run on a fresh
// machine it performs, in order:
//   - Provisions an ed25519 SSH keypair at the conventional ~/.ssh location,
//     generating one (labeled with the developer's email, no passphrase) only
//     when none exists
//   - Prints the public key with step-by-step instructions for enrolling it
//     on GitHub, and waits until the developer confirms
//   - Probes SSH authentication against GitHub once and aborts with a
//     diagnostic checklist when it does not succeed
//   - Installs the task runner unconditionally, and the pip-provided
//     developer tools (pre-commit, yamllint, detect-secrets) when python3 is
//     available, extending PATH in the shell startup file exactly once
//   - Clones the requested repository (the monorepo by default) over SSH and
//     installs its declared git hooks when pre-commit is present
//
// Error handling strategy:
//   - Fail fast: the first failing step aborts the run with exit code 1,
//     after printing a short checklist of likely causes the developer can
//     act on
//   - Two branches are soft-skipped with a warning instead: a missing
//     language runtime and a missing hooks tool
//   - No rollback; everything the run creates is guarded by existence or
//     exact-line checks, so rerunning after a fix is always safe
//
// Integration points:
//   - Delegates key generation to ssh-keygen, authentication to ssh, cloning
//     to git, tool installation to the official task installer script and to
//     pip; nothing is reimplemented in-process
//   - Supports zsh and bash by detecting the login shell and editing the
//     matching startup file
func main() {
	cmd.Execute()
}
