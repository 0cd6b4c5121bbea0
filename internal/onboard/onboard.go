// Package onboard implements the developer onboarding pipeline: provision an
// SSH key, walk the user through enrolling it with GitHub, verify that
// authentication works, install the standard tooling and clone the target
// repository with its git hooks wired up.
//
// The pipeline is a fixed sequence of steps executed strictly in order. Each
// step returns an explicit Result; the first failure aborts the whole run,
// except for the two branches that are allowed to skip softly (missing
// language runtime, missing hooks tool). Everything a step touches on the
// machine is reached through an injectable collaborator, so the sequence is
// testable without a terminal, a network or the real PATH.
package onboard

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/GuideToIceland/setup/internal/logger"
	"github.com/GuideToIceland/setup/internal/profile"
	"github.com/GuideToIceland/setup/internal/shellrc"
)

// CmdFunc runs an external command and returns its trimmed combined output.
// dir sets the working directory; empty means the current one.
type CmdFunc func(dir, name string, args ...string) (string, error)

// LookupFunc resolves a command name on PATH, exec.LookPath shaped.
type LookupFunc func(name string) (string, error)

// FetchFunc downloads url into the file at dest.
type FetchFunc func(url, dest string) error

// EnsureLineFunc appends a line to a file unless it is already present and
// reports whether it appended.
type EnsureLineFunc func(path, line string) (bool, error)

// Prompter is the interactive channel for identity and confirmation input.
type Prompter interface {
	Prompt(label string) (string, error)
}

// Status classifies the outcome of one pipeline step.
type Status int

const (
	// StatusOK means the step completed and the pipeline continues.
	StatusOK Status = iota
	// StatusSkipped means a non-fatal precondition was missing; the step was
	// skipped with a warning and the pipeline continues.
	StatusSkipped
	// StatusFailed aborts the whole pipeline.
	StatusFailed
)

// Result is the explicit outcome of a step.
type Result struct {
	Status Status
	Detail string // reason for a skip
	Err    error  // cause of a failure
}

func ok() Result {
	return Result{Status: StatusOK}
}

func skipf(format string, a ...any) Result {
	return Result{Status: StatusSkipped, Detail: fmt.Sprintf(format, a...)}
}

func fail(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

func failf(format string, a ...any) Result {
	return Result{Status: StatusFailed, Err: fmt.Errorf(format, a...)}
}

// Step is one named stage of the pipeline.
type Step struct {
	Name string
	Run  func() Result
}

// Pipeline holds the resolved target and the collaborators the steps act
// through. The zero value is not usable; construct with New or fill every
// field (tests do the latter).
type Pipeline struct {
	Profile profile.Profile
	Repo    string // resolved repository name
	Home    string // user home directory
	WorkDir string // directory the clone lands in

	Out        io.Writer // user-facing output such as the key printout
	Prompt     Prompter
	RunCmd     CmdFunc
	Lookup     LookupFunc
	Fetch      FetchFunc
	EnsureLine EnsureLineFunc
	Setenv     func(key, value string) error
	Getenv     func(key string) string

	email string // collected by the identity step, labels the generated key
}

// New builds a pipeline against the real machine: real commands, real PATH
// lookups, real HTTP. repoArg is the optional positional argument; empty
// selects the default repository.
func New(repoArg string, prompt Prompter) (*Pipeline, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	prof := profile.Default()
	return &Pipeline{
		Profile:    prof,
		Repo:       prof.ResolveRepository(repoArg),
		Home:       home,
		WorkDir:    wd,
		Out:        os.Stdout,
		Prompt:     prompt,
		RunCmd:     runCommand,
		Lookup:     exec.LookPath,
		Fetch:      downloadFile,
		EnsureLine: shellrc.EnsureLinePresent,
		Setenv:     os.Setenv,
		Getenv:     os.Getenv,
	}, nil
}

// Steps returns the pipeline stages in execution order. The repository name
// itself is resolved earlier, at construction, since it needs no machine
// access.
func (p *Pipeline) Steps() []Step {
	return []Step{
		{Name: "identity", Run: p.collectIdentity},
		{Name: "ssh key", Run: p.provisionKey},
		{Name: "key enrollment", Run: p.guideEnrollment},
		{Name: "github access", Run: p.verifyAccess},
		{Name: "task runner", Run: p.installTaskRunner},
		{Name: "developer tools", Run: p.installRuntimeTools},
		{Name: "repository clone", Run: p.cloneRepository},
		{Name: "git hooks", Run: p.installHooks},
	}
}

// Execute runs every step in order and stops at the first failure. Skipped
// steps only warn; they never influence the outcome.
func (p *Pipeline) Execute() error {
	return p.run(p.Steps())
}

func (p *Pipeline) run(steps []Step) error {
	logger.Info("[INFO] Setting up %s (%s)\n", p.Repo, p.Profile.RemoteAddress(p.Repo))
	for _, step := range steps {
		logger.Debug("[DEBUG] Step: %s\n", step.Name)
		res := step.Run()
		switch res.Status {
		case StatusSkipped:
			logger.Warn("[WARN] Skipping %s: %s\n", step.Name, res.Detail)
		case StatusFailed:
			return fmt.Errorf("%s: %w", step.Name, res.Err)
		}
	}
	logger.Info("[INFO] All done. %s is ready in ./%s\n", p.Repo, p.Repo)
	return nil
}
