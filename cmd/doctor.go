package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/GuideToIceland/setup/internal/logger"
	"github.com/GuideToIceland/setup/internal/profile"
	"github.com/GuideToIceland/setup/internal/shellrc"
)

// doctorCheck is one preflight probe: something the onboarding run relies
// on, whether it is already there and what its absence means.
type doctorCheck struct {
	name     string
	ok       bool
	detail   string
	required bool
}

// doctorCmd reports the machine's readiness without changing anything.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check this machine for the tools onboarding relies on",
	Long: `doctor reports which external tools and artifacts the onboarding run will
find on this machine. It never installs anything, edits no files and makes
no network calls. Run it before setup to preview what the run will do, or
after a failure to see what is missing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home directory: %w", err)
		}

		checks := runDoctorChecks(profile.Default(), exec.LookPath, home)
		if err := renderDoctorReport(cmd.OutOrStdout(), checks); err != nil {
			return err
		}

		missing := countMissingRequired(checks)
		switch {
		case missing > 0:
			logger.Error("[ERROR] %d required tools are missing, setup cannot run yet.\n", missing)
			return fmt.Errorf("%d required tools missing", missing)
		case countMissingOptional(checks) > 0:
			logger.Warn("[WARN] Some optional pieces are absent, setup will install or skip them.\n")
		default:
			logger.Info("[INFO] This machine is ready, run setup to onboard.\n")
		}
		return nil
	},
}

// runDoctorChecks probes everything the pipeline will touch. The lookup is
// injectable so tests can simulate sparse machines.
func runDoctorChecks(prof profile.Profile, lookup func(string) (string, error), home string) []doctorCheck {
	binary := func(name, detail string, required bool) doctorCheck {
		_, err := lookup(name)
		return doctorCheck{name: name, ok: err == nil, detail: detail, required: required}
	}

	checks := []doctorCheck{
		binary("git", "clones the repository", true),
		binary("ssh", "probes authentication against "+prof.Host, true),
		binary("ssh-keygen", "generates the SSH key when absent", true),
		binary("sh", "runs the task runner installer", true),
		binary(prof.Runtime, "installs "+strings.Join(prof.RuntimeTools, ", ")+"; skipped when missing", false),
		binary("task", "installed by setup itself", false),
		binary(prof.HooksTool, "registers git hooks in the clone; skipped when missing", false),
	}

	pubPath := prof.PublicKeyPath(home)
	_, err := os.Stat(pubPath)
	checks = append(checks, doctorCheck{
		name:   "ssh key",
		ok:     err == nil,
		detail: pubPath,
	})

	rcPath := shellrc.StartupFile(home)
	present, err := shellrc.HasLine(rcPath, prof.PathExportLine)
	checks = append(checks, doctorCheck{
		name:   "PATH export",
		ok:     err == nil && present,
		detail: rcPath,
	})

	return checks
}

// renderDoctorReport prints the checks as an aligned table.
func renderDoctorReport(w io.Writer, checks []doctorCheck) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "CHECK\tSTATUS\tDETAIL")
	for _, c := range checks {
		status := "ok"
		if !c.ok {
			status = "absent"
			if c.required {
				status = "missing"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.name, status, c.detail)
	}
	return tw.Flush()
}

func countMissingRequired(checks []doctorCheck) int {
	n := 0
	for _, c := range checks {
		if c.required && !c.ok {
			n++
		}
	}
	return n
}

func countMissingOptional(checks []doctorCheck) int {
	n := 0
	for _, c := range checks {
		if !c.required && !c.ok {
			n++
		}
	}
	return n
}
