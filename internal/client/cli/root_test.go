package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/lifelog/internal/client/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_FlagsOverrideConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	var opened *config.Config
	a := newFixture("").app
	root := newRootCommand(a, cfg, func(_ context.Context, c *config.Config) error {
		opened = c
		return nil
	})
	root.SetArgs([]string{"-a", "http://api.test:9000", "--db", "/tmp/x.db", "-i", "3", "whoami"})
	require.NoError(t, root.Execute())

	require.NotNil(t, opened)
	assert.Equal(t, "http://api.test:9000", opened.ServerURL)
	assert.Equal(t, "/tmp/x.db", opened.LocalDBPath)
	assert.Equal(t, 3*time.Second, opened.RequestTimeout)
	assert.Empty(t, opened.LogFile)
}

func TestRootCommand_KeepsConfigWithoutFlags(t *testing.T) {
	cfg := &config.Config{ServerURL: "http://from-json", LocalDBPath: "json.db", RequestTimeout: 7 * time.Second}

	var opened config.Config
	root := newRootCommand(newFixture("").app, cfg, func(_ context.Context, c *config.Config) error {
		opened = *c
		return nil
	})
	root.SetArgs([]string{"whoami"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "http://from-json", opened.ServerURL)
	assert.Equal(t, "json.db", opened.LocalDBPath)
	assert.Equal(t, 7*time.Second, opened.RequestTimeout)
}

func TestRootCommand_OpenFailureStopsCommand(t *testing.T) {
	f := newFixture("")
	root := newRootCommand(f.app, &config.Config{}, func(context.Context, *config.Config) error {
		return errors.New("disk full")
	})
	root.SetArgs([]string{"whoami"})
	assert.EqualError(t, root.Execute(), "disk full")
	assert.Empty(t, f.out.String())
}

func TestRootCommand_HasSections(t *testing.T) {
	root := newRootCommand(newFixture("").app, &config.Config{}, nil)
	for _, name := range []string{"login", "register", "logout", "whoami", "dashboard", "journals", "memories", "tastes", "places", "phases", "photos", "shell"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"memories", "--help"})
	require.NoError(t, root.Execute())
	assert.NotContains(t, out.String(), "edit")
}
