package config

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/ironsmile/qruuid/src/assert"
	"github.com/ironsmile/qruuid/src/capacity"
)

func TestMergingConfigs(t *testing.T) {
	cfg := Default()
	merged := new(MergedConfig)

	cfg.merge(merged)
	if cfg != Default() {
		t.Errorf("unset values from the merged config have been copied over")
	}

	listen, level, timeout := ":8080", "H", 3
	merged.Listen = &listen
	merged.DefaultLevel = &level
	merged.ReadTimeout = &timeout

	cfg.merge(merged)

	assert.Equal(t, ":8080", cfg.Listen)
	assert.Equal(t, "H", cfg.DefaultLevel)
	assert.Equal(t, 3, cfg.ReadTimeout)
	assert.Equal(t, Default().WriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, true, cfg.Gzip)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "/no/such/config.json")
	assert.NilErr(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadUserFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	const body = `{"listen": "0.0.0.0:80", "default_level": "q", "log_file": "/var/log/qruuid.log"}`
	assert.NilErr(t, afero.WriteFile(fs, "/etc/qruuid/config.json", []byte(body), 0644))

	cfg, err := Load(fs, "/etc/qruuid/config.json")
	assert.NilErr(t, err)
	assert.Equal(t, "0.0.0.0:80", cfg.Listen)
	assert.Equal(t, "/var/log/qruuid.log", cfg.LogFile)
	assert.Equal(t, Default().MaxHeadersSize, cfg.MaxHeadersSize)

	level, err := cfg.Level()
	assert.NilErr(t, err)
	assert.Equal(t, capacity.Q, level)
}

// TestLoadExplicitZeroValues makes sure false and 0 in the user file override
// the defaults instead of being mistaken for missing values.
func TestLoadExplicitZeroValues(t *testing.T) {
	fs := afero.NewMemMapFs()
	const body = `{"gzip": false, "write_timeout": 0}`
	assert.NilErr(t, afero.WriteFile(fs, "/etc/qruuid/config.json", []byte(body), 0644))

	cfg, err := Load(fs, "/etc/qruuid/config.json")
	assert.NilErr(t, err)
	assert.Equal(t, false, cfg.Gzip)
	assert.Equal(t, 0, cfg.WriteTimeout)
	assert.Equal(t, Default().ReadTimeout, cfg.ReadTimeout)
	assert.Equal(t, Default().Listen, cfg.Listen)
}

func TestResolvePaths(t *testing.T) {
	cfg := Default()
	cfg.ResolvePaths("/home/tester/.qruuid")
	assert.Equal(t, "", cfg.LogFile)
	assert.Equal(t, "", cfg.PidFile)

	cfg.LogFile = "logs/qruuid.log"
	cfg.PidFile = "/run/qruuid.pid"
	cfg.ResolvePaths("/home/tester/.qruuid")
	assert.Equal(t, "/home/tester/.qruuid/logs/qruuid.log", cfg.LogFile)
	assert.Equal(t, "/run/qruuid.pid", cfg.PidFile)
}

func TestLoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NilErr(t, afero.WriteFile(fs, "broken.json", []byte(`{"listen":`), 0644))
	assert.NilErr(t, afero.WriteFile(fs, "level.json", []byte(`{"default_level":"X"}`), 0644))
	assert.NilErr(t, afero.WriteFile(fs, "timeout.json", []byte(`{"read_timeout":-1}`), 0644))

	_, err := Load(fs, "broken.json")
	assert.NotNilErr(t, err)

	_, err = Load(fs, "level.json")
	assert.ErrorIs(t, err, capacity.ErrUnknownLevel)

	_, err = Load(fs, "timeout.json")
	assert.NotNilErr(t, err)
}

func TestFindAndParse(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	fs := afero.NewMemMapFs()
	const body = `{"default_level": "L"}`
	assert.NilErr(t, afero.WriteFile(fs, "/home/tester/.qruuid/config.json", []byte(body), 0644))

	cfg, err := FindAndParse(fs)
	assert.NilErr(t, err)
	assert.Equal(t, "L", cfg.DefaultLevel)
}
