package onboard

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/GuideToIceland/setup/internal/logger"
)

// cloneRepository clones the resolved repository into a directory named
// after it in the working directory. A failed clone is fatal; the generated
// key and any installed tooling stay in place so a rerun resumes cleanly.
func (p *Pipeline) cloneRepository() Result {
	remote := p.Profile.RemoteAddress(p.Repo)
	logger.Info("[INFO] Cloning %s into ./%s...\n", remote, p.Repo)

	output, err := p.RunCmd(p.WorkDir, "git", "clone", remote)
	if err != nil {
		logger.Error("[ERROR] git clone failed: %v\nOutput: %s\n", err, output)
		logger.Error("[ERROR] Likely causes:\n")
		logger.Error("    1. Your SSH key is not enrolled with your GitHub account.\n")
		logger.Error("    2. The repository %s does not exist.\n", p.Repo)
		logger.Error("    3. Your account lacks permission to read %s.\n", p.Repo)
		return failf("clone %s: %w", remote, err)
	}
	return ok()
}

// installHooks registers the git hooks declared by the freshly cloned
// repository. The step is skipped with a warning when the hooks tool is not
// on PATH (the second soft-skip exception); when the tool is present, a
// failed install aborts the run.
func (p *Pipeline) installHooks() Result {
	if _, err := p.Lookup(p.Profile.HooksTool); err != nil {
		return skipf("%s not found on PATH, git hooks were not installed", p.Profile.HooksTool)
	}

	cloneDir := filepath.Join(p.WorkDir, p.Repo)
	output, err := p.RunCmd(cloneDir, p.Profile.HooksTool, "install")
	if err != nil {
		logger.Error("[ERROR] %s install failed: %v\nOutput: %s\n", p.Profile.HooksTool, err, output)
		return failf("install git hooks: %w", err)
	}
	logger.Info("[INFO] Git hooks installed in ./%s\n", p.Repo)

	// Best effort summary of what just got wired up. The declaration file
	// belongs to the repository; problems with it are its maintainers'
	// business, not a setup failure.
	if hooks, sources, err := countHooks(filepath.Join(cloneDir, p.Profile.HooksConfigFile)); err == nil {
		logger.Info("[INFO] %d hooks from %d sources are now active on commit.\n", hooks, sources)
	} else {
		logger.Debug("[DEBUG] No hooks summary: %v\n", err)
	}
	return ok()
}

// countHooks reads a hooks declaration file and returns the number of
// declared hooks and the number of sources declaring them.
func countHooks(path string) (hooks, sources int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, 0, err
	}

	var decl struct {
		Repos []struct {
			Repo  string `yaml:"repo"`
			Hooks []struct {
				ID string `yaml:"id"`
			} `yaml:"hooks"`
		} `yaml:"repos"`
	}
	if err := yaml.Unmarshal(data, &decl); err != nil {
		return 0, 0, err
	}

	for _, repo := range decl.Repos {
		hooks += len(repo.Hooks)
	}
	return hooks, len(decl.Repos), nil
}
