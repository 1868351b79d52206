//go:build e2e && unix

package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartsOnDashboard(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "sidebar should render")
	assert.True(t, tf.SeePlain("Dashboard"))
	assert.True(t, tf.SeePlain("Vendors"))
}

func TestStartPathFlag(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp("-p", "/items"))
	require.True(t, tf.Ready())
	assert.True(t, tf.SeePlain("LPG Cylinder 12 kg"))
}

func TestGotoAndFilter(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Goto("/vendors"))
	require.True(t, tf.SeePlain("CV Tabung Jaya"), "vendor list should render")

	require.NoError(t, tf.SendKeys("/"))
	require.True(t, tf.SeePlain("Filter:"))
	require.NoError(t, tf.Type("makmur"))
	require.NoError(t, tf.SendKeys(KeyEnter))

	require.True(t, tf.SeePlain("[Filter: makmur]"), "filter indicator should appear")
	assert.True(t, tf.SeePlain("1 of 4"))
}

func TestUnknownPathSuggestion(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.Goto("/tendrs"))
	assert.True(t, tf.SeePlain("No page at /tendrs"))
	assert.True(t, tf.SeePlain("did you mean /tenders?"))
}

func TestCustomDataset(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	data := tf.WriteFile("data.toml", `
[[vendors]]
id = "a"
code = "X-1"
name = "Acme Cylinders"
category = "Gas"
`)
	require.NoError(t, tf.StartApp("-d", data, "-p", "/vendors"))
	require.True(t, tf.Ready())
	assert.True(t, tf.SeePlain("Acme Cylinders"))
}

func TestQuitLeavesConfigUntouched(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	original := "currency = \"EUR\"\n"
	tf.WriteFile("config.toml", original)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	require.NoError(t, tf.SendKeys("["))
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(3*time.Second))

	saved, err := os.ReadFile(tf.Path("config.toml"))
	require.NoError(t, err)
	assert.Equal(t, original, string(saved))
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())
	require.NoError(t, tf.SendKeys(KeyCtrlC))
	assert.NoError(t, tf.WaitExit(3*time.Second))
}
