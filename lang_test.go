package dcmeta_test

import (
	"testing"

	"github.com/reoring/dcmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewXMLLang_AcceptsAnything(t *testing.T) {
	l := dcmeta.NewXMLLang("!!")
	assert.Equal(t, "!!", l.String())
	_, err := l.Tag()
	assert.Error(t, err)
}

func TestParseXMLLang(t *testing.T) {
	l, err := dcmeta.ParseXMLLang("en-GB")
	require.NoError(t, err)
	tag, err := l.Tag()
	require.NoError(t, err)
	assert.Equal(t, "en-GB", tag.String())

	_, err = dcmeta.ParseXMLLang("!!")
	require.Error(t, err)
	iss, ok := dcmeta.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, dcmeta.CodeInvalidFormat, iss[0].Code)
	assert.Equal(t, "!!", iss[0].InputFragment)
	assert.NotNil(t, iss[0].Cause)
}
