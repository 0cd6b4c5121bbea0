package onboard

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestProvisionKeyReusesExistingKey(t *testing.T) {
	fake := &fakeExec{}
	p := newTestPipeline(t, "", &scriptedPrompter{}, fake, lookupWith())
	writeKeypair(t, p, "old@example.com")
	before, err := os.ReadFile(p.Profile.PublicKeyPath(p.Home))
	require.NoError(t, err)

	// Two runs in a row: presence alone short-circuits generation.
	for i := 0; i < 2; i++ {
		res := p.provisionKey()
		assert.Equal(t, StatusOK, res.Status)
	}

	assert.Empty(t, fake.calls, "ssh-keygen must not run when a key exists")
	after, err := os.ReadFile(p.Profile.PublicKeyPath(p.Home))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestProvisionKeyGeneratesWhenAbsent(t *testing.T) {
	fake := &fakeExec{}
	p := newTestPipeline(t, "", &scriptedPrompter{}, fake, lookupWith())
	p.email = "dev@example.com"
	fake.handler = func(dir, name string, args []string) (string, error) {
		writeKeypair(t, p, "dev@example.com")
		return "", nil
	}

	res := p.provisionKey()
	require.Equal(t, StatusOK, res.Status)

	keygen := fake.find("ssh-keygen")
	require.NotNil(t, keygen)
	assert.Equal(t, []string{
		"-t", "ed25519",
		"-C", "dev@example.com",
		"-f", p.Profile.PrivateKeyPath(p.Home),
		"-N", "",
	}, keygen.args)

	info, err := os.Stat(p.Profile.KeyDir(p.Home))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm(), "SSH directory must be owner-only")
}

func TestProvisionKeyGenerationFailureIsFatal(t *testing.T) {
	fake := &fakeExec{}
	fake.handler = func(dir, name string, args []string) (string, error) {
		return "unknown key type", errors.New("exit status 1")
	}
	p := newTestPipeline(t, "", &scriptedPrompter{}, fake, lookupWith())
	p.email = "dev@example.com"

	res := p.provisionKey()
	assert.Equal(t, StatusFailed, res.Status)
	assert.ErrorContains(t, res.Err, "generate SSH key")
}

func TestGuideEnrollmentPrintsKeyVerbatim(t *testing.T) {
	prompt := &scriptedPrompter{answers: []string{""}}
	p := newTestPipeline(t, "", prompt, &fakeExec{}, lookupWith())

	// A real key so the fingerprint line appears as well.
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	sshPub, err := ssh.NewPublicKey(pub)
	require.NoError(t, err)
	line := string(ssh.MarshalAuthorizedKey(sshPub))
	require.NoError(t, os.MkdirAll(p.Profile.KeyDir(p.Home), 0700))
	require.NoError(t, os.WriteFile(p.Profile.PublicKeyPath(p.Home), []byte(line), 0644))

	res := p.guideEnrollment()
	require.Equal(t, StatusOK, res.Status)

	out := p.Out.(*bytes.Buffer).String()
	assert.Contains(t, out, line, "public key must appear verbatim")
	assert.Contains(t, out, "https://github.com/settings/keys")
	assert.Len(t, prompt.asked, 1, "enrollment must block on one confirmation")
}

func TestGuideEnrollmentAnyAnswerUnblocks(t *testing.T) {
	tests := []struct {
		name   string
		answer string
	}{
		{name: "empty answer", answer: ""},
		{name: "any text", answer: "done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := &scriptedPrompter{answers: []string{tt.answer}}
			p := newTestPipeline(t, "", prompt, &fakeExec{}, lookupWith())
			writeKeypair(t, p, "dev@example.com")

			res := p.guideEnrollment()
			assert.Equal(t, StatusOK, res.Status)
		})
	}
}

func TestGuideEnrollmentMissingKeyIsFatal(t *testing.T) {
	p := newTestPipeline(t, "", &scriptedPrompter{}, &fakeExec{}, lookupWith())

	res := p.guideEnrollment()
	assert.Equal(t, StatusFailed, res.Status)
}
