package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/mobil-koeln/trex/internal/testutil"
)

// isolate points every lookup at an empty temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"TREX_CONFIG", "TREX_API_URL", "TREX_TIMEOUT", "TREX_COLOR", "TREX_DEBUG_LOG"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeConfig(t *testing.T, path, body string) {
	t.Helper()
	testutil.AssertNil(t, os.MkdirAll(filepath.Dir(path), 0o755))
	testutil.AssertNil(t, os.WriteFile(path, []byte(body), 0o600))
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("trex", pflag.ContinueOnError)
	fs.String("api-url", defaultAPIURL, "")
	fs.Duration("timeout", defaultTimeout, "")
	fs.String("color", ColorAuto, "")
	fs.String("debug-log", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load(nil)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, c, Default())
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "trex", "config.yaml"), "api_url: http://localhost:9000/api\ntimeout: 3s\ncolor: never\n")

	c, err := Load(nil)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, c.APIURL, "http://localhost:9000/api")
	testutil.AssertEqual(t, c.Timeout, 3*time.Second)
	testutil.AssertEqual(t, c.Color, ColorNever)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "elsewhere.yaml")
	writeConfig(t, path, "debug_log: /tmp/trex.log\n")
	t.Setenv("TREX_CONFIG", path)

	c, err := Load(nil)
	testutil.AssertNil(t, err)
	testutil.AssertEqual(t, c.DebugLog, "/tmp/trex.log")
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TREX_CONFIG", filepath.Join(dir, "nope.yaml"))

	_, err := Load(nil)
	testutil.AssertError(t, err)
}

func TestLoad_MalformedConfig(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "trex", "config.yaml"), "api_url: [unterminated\n")

	_, err := Load(nil)
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "read config")
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, filepath.Join(dir, "trex", "config.yaml"), "api_url: http://file.example/api\ntimeout: 3s\ncolor: never\n")
	t.Setenv("TREX_API_URL", "http://env.example/api")
	t.Setenv("TREX_TIMEOUT", "4s")

	fs := testFlags()
	testutil.AssertNil(t, fs.Parse([]string{"--timeout", "5s"}))

	c, err := Load(fs)
	testutil.AssertNil(t, err)
	// env beats file, flag beats env, untouched flag does not shadow file
	testutil.AssertEqual(t, c.APIURL, "http://env.example/api")
	testutil.AssertEqual(t, c.Timeout, 5*time.Second)
	testutil.AssertEqual(t, c.Color, ColorNever)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  string
		val  string
	}{
		{name: "url without scheme", env: "TREX_API_URL", val: "www.trassenfinder.de"},
		{name: "zero timeout", env: "TREX_TIMEOUT", val: "0s"},
		{name: "unknown color", env: "TREX_COLOR", val: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, tt.val)

			_, err := Load(nil)
			testutil.AssertError(t, err)
		})
	}
}

func TestDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	testutil.AssertEqual(t, Dir(), filepath.Join("/xdg", "trex"))

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/u")
	testutil.AssertEqual(t, Dir(), filepath.Join("/home/u", ".config", "trex"))
}
