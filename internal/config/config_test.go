package config

import (
	"io"
	"log/slog"
	"testing"

	"github.com/reoring/dcmeta"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoader(env map[string]string) (*Loader, afero.Fs) {
	fs := afero.NewMemMapFs()
	return &Loader{
		Fs:     fs,
		Getenv: func(k string) string { return env[k] },
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, fs
}

func TestLoad_Defaults(t *testing.T) {
	l, _ := newTestLoader(nil)
	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	l, _ := newTestLoader(nil)
	_, err := l.Load("missing.yaml")
	assert.Error(t, err)
}

func TestLoad_FileThenDotenvThenEnv(t *testing.T) {
	l, fs := newTestLoader(map[string]string{EnvFormat: "yaml"})
	require.NoError(t, afero.WriteFile(fs, DefaultFile, []byte("namespace: any\nlanguage: true\nformat: json\ninclude_unrecognized: true\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, ".env", []byte("DCMETA_STRICT_LANGUAGE=true\nDCMETA_FORMAT=json\nDCMETA_MESSAGES=ja\n"), 0o644))

	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, "any", cfg.Namespace)
	assert.True(t, cfg.Language)
	assert.True(t, cfg.StrictLanguage)
	assert.True(t, cfg.IncludeUnrecognized)
	assert.Equal(t, "ja", cfg.Messages)
	// process environment wins over .env
	assert.Equal(t, "yaml", cfg.Format)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := map[string]map[string]string{
		"namespace": {EnvNamespace: "resolve"},
		"format":    {EnvFormat: "xml"},
		"bool":      {EnvLanguage: "maybe"},
		"messages":  {EnvMessages: "fr"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			l, _ := newTestLoader(env)
			_, err := l.Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	l, fs := newTestLoader(nil)
	require.NoError(t, afero.WriteFile(fs, "c.yaml", []byte("namespace: [\n"), 0o644))
	_, err := l.Load("c.yaml")
	assert.Error(t, err)
}

func TestClassifierOptions(t *testing.T) {
	cfg := Default()
	cfg.Namespace = "uri"
	c := dcmeta.NewClassifier(cfg.ClassifierOptions(nil)...)
	_, ok := c.From(dcmeta.Element{Namespace: dcmeta.NS(dcmeta.DublinCoreURI), Name: "title"})
	assert.True(t, ok)
	_, ok = c.From(dcmeta.Element{Namespace: dcmeta.NS("dc"), Name: "title"})
	assert.False(t, ok)
}
