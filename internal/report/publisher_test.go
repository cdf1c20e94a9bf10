package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysinfo/internal/config"
	"sysinfo/internal/logger"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.OutputPath = filepath.Join(t.TempDir(), "sysinfo.txt")
	return cfg
}

func TestPublishConsoleMatchesFile(t *testing.T) {
	cfg := testConfig(t)
	var console bytes.Buffer

	NewPublisher(cfg, &console, logger.Discard()).Publish(sampleReport())

	file, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.NotEmpty(t, file)
	assert.Equal(t, console.String(), string(file))
}

func TestPublishTwiceOverwritesFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Console = false
	p := NewPublisher(cfg, &bytes.Buffer{}, logger.Discard())

	big := sampleReport()
	p.Publish(big)
	first, err := os.Stat(cfg.OutputPath)
	require.NoError(t, err)

	small := sampleReport()
	small.Disk.Partitions = nil
	small.Network.Interfaces = nil
	p.Publish(small)

	second, err := os.Stat(cfg.OutputPath)
	require.NoError(t, err)

	want, err := NewRenderer().Bytes(small)
	require.NoError(t, err)
	assert.Less(t, second.Size(), first.Size())
	assert.Equal(t, int64(len(want)), second.Size())
}

func TestPublishFileFailureReportedOnConsole(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "sysinfo.txt")
	var console bytes.Buffer

	NewPublisher(cfg, &console, logger.Discard()).Publish(sampleReport())

	out := console.String()
	assert.Contains(t, out, "Network Information")
	assert.Contains(t, out, "Failed to write report to "+cfg.OutputPath)
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestPublishDestinationsIndependent(t *testing.T) {
	cfg := testConfig(t)
	cfg.WriteFile = false
	var console bytes.Buffer

	NewPublisher(cfg, &console, logger.Discard()).Publish(sampleReport())

	assert.Contains(t, console.String(), "System Information")
	assert.NoFileExists(t, cfg.OutputPath)

	cfg = testConfig(t)
	cfg.Console = false
	console.Reset()

	NewPublisher(cfg, &console, logger.Discard()).Publish(sampleReport())

	assert.Empty(t, console.String())
	assert.FileExists(t, cfg.OutputPath)
}
