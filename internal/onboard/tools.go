package onboard

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/GuideToIceland/setup/internal/logger"
	"github.com/GuideToIceland/setup/internal/shellrc"
)

// installTaskRunner downloads the task runner's installer script and runs it
// with the installation destination flag. This step is unconditional and any
// failure is fatal: every repository's workflows assume the task runner
// exists.
func (p *Pipeline) installTaskRunner() Result {
	dest := p.Profile.InstallDir(p.Home)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return failf("create %s: %w", dest, err)
	}

	logger.Info("[INFO] Installing the task runner into %s...\n", dest)
	script := filepath.Join(os.TempDir(), "task-install.sh")
	if err := p.Fetch(p.Profile.TaskInstallerURL, script); err != nil {
		return failf("download task installer: %w", err)
	}
	defer func() {
		if rerr := os.Remove(script); rerr != nil {
			logger.Debug("[DEBUG] Could not remove %s: %v\n", script, rerr)
		}
	}()

	output, err := p.RunCmd("", "sh", script, "-b", dest)
	if err != nil {
		logger.Error("[ERROR] task installer failed: %v\nOutput: %s\n", err, output)
		return failf("install task runner: %w", err)
	}
	return ok()
}

// installRuntimeTools installs the auxiliary developer tools through the
// language runtime's package fetch. The whole branch is skipped with a
// warning when the runtime is not on PATH; that is one of the two soft-skip
// exceptions to the fail-fast policy. When the runtime is present, the PATH
// export line is appended to the shell startup file (at most once, guarded
// by an exact-line check) and mirrored into this process's environment so
// the freshly installed tools resolve in the remaining steps.
func (p *Pipeline) installRuntimeTools() Result {
	if _, err := p.Lookup(p.Profile.Runtime); err != nil {
		return skipf("%s not found on PATH, %s will not be installed",
			p.Profile.Runtime, strings.Join(p.Profile.RuntimeTools, ", "))
	}

	rcPath := shellrc.StartupFile(p.Home)
	added, err := p.EnsureLine(rcPath, p.Profile.PathExportLine)
	if err != nil {
		return failf("update %s: %w", rcPath, err)
	}
	if added {
		logger.Info("[INFO] Added %q to %s\n", p.Profile.PathExportLine, rcPath)
	} else {
		logger.Debug("[DEBUG] PATH export already present in %s\n", rcPath)
	}

	// Apply the export to the running process as well; a startup file only
	// helps future shells.
	binDir := p.Profile.InstallDir(p.Home)
	if !pathContains(p.Getenv("PATH"), binDir) {
		if err := p.Setenv("PATH", binDir+string(os.PathListSeparator)+p.Getenv("PATH")); err != nil {
			return failf("extend PATH: %w", err)
		}
	}

	logger.Info("[INFO] Installing %s with %s...\n", strings.Join(p.Profile.RuntimeTools, ", "), p.Profile.Runtime)
	args := append([]string{"-m", "pip", "install", "--user"}, p.Profile.RuntimeTools...)
	output, err := p.RunCmd("", p.Profile.Runtime, args...)
	if err != nil {
		logger.Error("[ERROR] pip install failed: %v\nOutput: %s\n", err, output)
		return failf("install developer tools: %w", err)
	}
	return ok()
}

// pathContains reports whether dir is one of the entries in the PATH-style
// list. A substring match is not enough, /usr/local/bin must not satisfy a
// lookup for /usr/local.
func pathContains(pathList, dir string) bool {
	for _, entry := range strings.Split(pathList, string(os.PathListSeparator)) {
		if entry == dir {
			return true
		}
	}
	return false
}
