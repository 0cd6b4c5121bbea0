package onboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyAccess(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
		want   Status
	}{
		{
			name:   "marker present",
			output: "Hi dev! You've successfully authenticated, but GitHub does not provide shell access.",
			err:    nil,
			want:   StatusOK,
		},
		{
			// The probe never grants a shell, so a non-zero exit with the
			// marker still counts as success.
			name:   "marker present despite non-zero exit",
			output: "You've successfully authenticated, but GitHub does not provide shell access.",
			err:    errors.New("exit status 1"),
			want:   StatusOK,
		},
		{
			name:   "permission denied",
			output: "git@github.com: Permission denied (publickey).",
			err:    errors.New("exit status 255"),
			want:   StatusFailed,
		},
		{
			name:   "empty output",
			output: "",
			err:    errors.New("exit status 255"),
			want:   StatusFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeExec{}
			fake.handler = func(dir, name string, args []string) (string, error) {
				return tt.output, tt.err
			}
			p := newTestPipeline(t, "", &scriptedPrompter{}, fake, lookupWith())

			res := p.verifyAccess()
			assert.Equal(t, tt.want, res.Status)

			probe := fake.find("ssh")
			assert.NotNil(t, probe)
			assert.Equal(t, []string{"-T", "git@github.com"}, probe.args)
			assert.Len(t, fake.calls, 1, "exactly one probe, no retries")
		})
	}
}
