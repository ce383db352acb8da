package main

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/reoring/dcmeta/internal/config"
	"github.com/reoring/dcmeta/internal/render"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bookOPF = `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title id="foo" dir="ltr" xml:lang="en">T</dc:title>
    <dc:title dir="up">U</dc:title>
    <dc:creator>Someone</dc:creator>
  </metadata>
</package>`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvNamespace, config.EnvLanguage, config.EnvStrictLang, config.EnvFormat, config.EnvMessages} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)
	cmd := newRootCmd(fs)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}
	return fs
}

func TestClassify_JSON(t *testing.T) {
	fs := memFS(t, map[string]string{"books/a/content.opf": bookOPF})
	out, err := run(t, fs, "classify", "books/**/*.opf", "--lang")
	require.NoError(t, err)

	var recs []render.Record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)

	assert.Equal(t, "books/a/content.opf", recs[0].Source)
	require.NotNil(t, recs[0].ID)
	assert.Equal(t, "foo", *recs[0].ID)
	assert.Equal(t, "ltr", recs[0].Dir)
	assert.Equal(t, "en", recs[0].Lang)

	assert.Nil(t, recs[1].ID)
	assert.Empty(t, recs[1].Dir)
	require.Len(t, recs[1].Issues, 1)
	assert.Equal(t, "up", recs[1].Issues[0].Value)
}

func TestClassify_AllIncludesUnrecognized(t *testing.T) {
	fs := memFS(t, map[string]string{"content.opf": bookOPF})
	out, err := run(t, fs, "classify", "content.opf", "--all")
	require.NoError(t, err)

	var recs []render.Record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 3)
	assert.Equal(t, "unrecognized", recs[2].Kind)
	assert.Equal(t, "unknown_element", recs[2].Reason)
}

func TestClassify_URIMode(t *testing.T) {
	fs := memFS(t, map[string]string{"content.opf": bookOPF})
	out, err := run(t, fs, "classify", "content.opf", "--namespace", "uri")
	require.NoError(t, err)

	var recs []render.Record
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	require.Len(t, recs, 2)
	for _, r := range recs {
		require.NotNil(t, r.Namespace)
		assert.Equal(t, "http://purl.org/dc/elements/1.1/", *r.Namespace)
	}
}

func TestClassify_YAMLFromConfigFile(t *testing.T) {
	fs := memFS(t, map[string]string{
		"content.opf": bookOPF,
		"dcmeta.yaml": "format: yaml\n",
	})
	out, err := run(t, fs, "classify", "content.opf")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: title")
	assert.Contains(t, out, "dir: ltr")
}

func TestClassify_Errors(t *testing.T) {
	fs := memFS(t, map[string]string{"bad.opf": "<package><metadata>"})

	_, err := run(t, fs, "classify", "nothing/*.opf")
	assert.ErrorContains(t, err, "no files match")

	_, err = run(t, fs, "classify", "bad.opf")
	assert.ErrorContains(t, err, "bad.opf")

	_, err = run(t, fs, "classify", "bad.opf", "--format", "xml")
	assert.Error(t, err)

	_, err = run(t, fs, "classify")
	assert.Error(t, err)
}

func TestSchemaCmd(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$schema"`)
	assert.Contains(t, out, `"dir"`)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, afero.NewMemMapFs(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dcmeta dev\n", out)
}

func TestExpand_Dedup(t *testing.T) {
	fs := memFS(t, map[string]string{"/lib/a.opf": "", "/lib/b.opf": ""})
	files, err := expand(fs, []string{"/lib/*.opf", "/lib/a.opf"})
	require.NoError(t, err)
	assert.Equal(t, []string{"/lib/a.opf", "/lib/b.opf"}, files)
}
