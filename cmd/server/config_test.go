package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/haoyan-ts/dexhand-manager/pkg/lib/store"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	require.Equal(t, defaultAddress, cfg.Address)
	require.False(t, cfg.TLS.Enabled)
	require.Equal(t, defaultReadinessGrace, cfg.ReadinessGrace())
	require.Equal(t, defaultStopGrace, cfg.StopGrace())
	require.Equal(t, defaultSweepInterval, cfg.SweepInterval())
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
address: "127.0.0.1:6000"
debug_address: "127.0.0.1:6001"
log:
  level: debug
readiness_grace_ms: 100
stop_grace_ms: 2000
hands:
  - side: left
    arm: piper
    hand: inspire
    command: sleep
    args: ["30"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:6000", cfg.Address)
	require.Equal(t, "127.0.0.1:6001", cfg.Debug)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 100*time.Millisecond, cfg.ReadinessGrace())
	require.Equal(t, 2*time.Second, cfg.StopGrace())

	require.Len(t, cfg.Hands, 1)
	sc, err := cfg.Hands[0].StoreConfig()
	require.NoError(t, err)
	require.Equal(t, store.SideLeft, sc.Side)
	require.Equal(t, store.ArmPiper, sc.Arm)
	require.Equal(t, store.HandInspire, sc.Hand)
	require.Equal(t, "sleep", sc.Command.Command)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `address: "127.0.0.1:6000"`)
	t.Setenv("DHM_ADDRESS", "127.0.0.1:7000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:7000", cfg.Address)
}

func TestLoadConfig_TLSRequiresMaterial(t *testing.T) {
	path := writeConfig(t, `
tls:
  enabled: true
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestStoreConfig_RejectsUnknownValues(t *testing.T) {
	_, err := HandConfig{Side: "middle", Arm: "piper", Hand: "inspire"}.StoreConfig()
	require.Error(t, err)
}
