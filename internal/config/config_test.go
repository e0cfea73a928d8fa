// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"dario.cat/mergo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:3000"))
	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 3000, a.Port)
	assert.Equal(t, "localhost:3000", a.String())
}

func TestNetAddress_Set_EmptyHost(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set(":3000"))
	assert.Equal(t, ":3000", a.String())
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	cases := []string{"no-port", "host:notanumber", "host:-1", "bad host:80"}
	for _, in := range cases {
		var a NetAddress
		assert.Error(t, a.Set(in), "input %q should not parse", in)
	}
}

func TestNetAddress_String_Unset(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}

func TestValidate_MissingDSN(t *testing.T) {
	cfg := defaultConfig()
	err := cfg.validate()
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestValidate_MissingAddress(t *testing.T) {
	cfg := &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "postgres://localhost/portal"}},
		Session: Session{TTL: time.Hour},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}

func TestValidate_NonPositiveTTL(t *testing.T) {
	cfg := &StructuredConfig{
		Server:  Server{HTTPAddress: ":3000"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/portal"}},
	}
	assert.ErrorIs(t, cfg.validate(), ErrInvalidSessionConfigs)
}

func TestValidate_OK(t *testing.T) {
	cfg := &StructuredConfig{
		Server:  Server{HTTPAddress: ":3000"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/portal"}},
		Session: Session{TTL: time.Hour},
	}
	assert.NoError(t, cfg.validate())
}

// TestMerge_EnvWinsOverDefaults reproduces the merge order used by the
// builder: an earlier non-zero value must not be overridden by defaults.
func TestMerge_EnvWinsOverDefaults(t *testing.T) {
	envCfg := &StructuredConfig{Server: Server{HTTPAddress: ":8081"}}

	merged := new(StructuredConfig)
	for _, cfg := range []*StructuredConfig{envCfg, defaultConfig()} {
		require.NoError(t, mergo.Merge(merged, cfg))
	}

	assert.Equal(t, ":8081", merged.Server.HTTPAddress)
	assert.Equal(t, DefaultSessionTTL, merged.Session.TTL)
}

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://db/portal")
	t.Setenv("SESSION_TTL", "30m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://db/portal", cfg.Storage.DB.DSN)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
}
