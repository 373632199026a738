package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleConfig = `modem = "Motorola MB7621"

["Motorola MB7621"]
username = "admin"
password = "hunter2"
url = "http://10.0.0.1/MotoConnection.asp"
auth_url = "http://10.0.0.1/goform/login"
`

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modemstats.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	file, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	require.Equal(t, "Motorola MB7621", file.Modem)

	mc, ok := file.Vendor("Motorola MB7621")
	require.True(t, ok)
	require.Equal(t, "admin", mc.Username)
	require.Equal(t, "hunter2", mc.Password)
	require.Equal(t, "http://10.0.0.1/MotoConnection.asp", mc.URL)
	require.Equal(t, "http://10.0.0.1/goform/login", mc.AuthURL)
}

func TestVendorLookupIsCaseInsensitive(t *testing.T) {
	file, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	_, ok := file.Vendor("MOTOROLA MB7621")
	require.True(t, ok)
	_, ok = file.Vendor("motorola mb7621")
	require.True(t, ok)
	_, ok = file.Vendor("Arris SB6183")
	require.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	require.Error(t, err)
}

func TestLoadPartialSection(t *testing.T) {
	file, err := Load(writeConfig(t, `modem = "Arris SB6183"

["Arris SB6183"]
url = "http://10.0.0.1/RgConnect.asp"
`))
	require.NoError(t, err)

	mc, ok := file.Vendor("Arris SB6183")
	require.True(t, ok)
	require.Empty(t, mc.Username)
	require.Equal(t, "http://10.0.0.1/RgConnect.asp", mc.URL)
}
