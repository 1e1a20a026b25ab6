package sandbox_test

import (
	"os/exec"
	"os/user"
	"strconv"
	"testing"

	"github.com/p7-projekt/mozart/internal/sandbox"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardEntry() *logrus.Entry {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log.WithField("test", true)
}

func TestResolve_CurrentUser(t *testing.T) {
	current, err := user.Current()
	require.NoError(t, err)

	sb, err := sandbox.Resolve(current.Username, false)
	require.NoError(t, err)

	wantUID, _ := strconv.ParseUint(current.Uid, 10, 32)
	wantGID, _ := strconv.ParseUint(current.Gid, 10, 32)
	assert.Equal(t, uint32(wantUID), sb.UID)
	assert.Equal(t, uint32(wantGID), sb.GID)
	assert.False(t, sb.NetNSEnabled)
}

func TestResolve_UnknownUserIsError(t *testing.T) {
	_, err := sandbox.Resolve("no-such-mozart-user-xyz", false)
	assert.Error(t, err)
}

func TestApply_SetsCredential(t *testing.T) {
	sb := sandbox.Sandbox{UID: 1000, GID: 1000}
	cmd := exec.Command("true")
	sb.Apply(cmd)

	require.NotNil(t, cmd.SysProcAttr)
	require.NotNil(t, cmd.SysProcAttr.Credential)
	assert.Equal(t, uint32(1000), cmd.SysProcAttr.Credential.Uid)
	assert.Equal(t, uint32(1000), cmd.SysProcAttr.Credential.Gid)
}

func TestString_FormatsIdentity(t *testing.T) {
	sb := sandbox.Sandbox{UID: 42, GID: 7, NetNSEnabled: true}
	assert.Equal(t, "uid=42 gid=7 netns=true", sb.String())
}

func TestWithNamespace_RunsFnDirectlyWhenDisabled(t *testing.T) {
	sb := sandbox.Sandbox{}
	var ran bool
	err := sb.WithNamespace(discardEntry(), func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, ran)
}
