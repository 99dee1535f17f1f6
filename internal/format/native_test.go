package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sweconstraint/pkg/swe"
)

func TestWriteThenReadNativeRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.yaml")
	domains := map[swe.Variable][]string{
		'X': {"ello", "eap"},
	}

	err := WriteNative(path, "helloworld", []string{"hX"}, domains)
	require.NoError(t, err)

	s, patterns, gotDomains, err := ReadNative(path)
	require.NoError(t, err)
	require.Equal(t, "helloworld", s)
	require.Equal(t, []string{"hX"}, patterns)
	require.Equal(t, domains, gotDomains)
}

func TestReadNativeRejectsMultiCharacterDomainKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	contents := "s: abc\npatterns: [\"a\"]\ndomains:\n  XY: [\"a\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	_, _, _, err := ReadNative(path)
	require.ErrorIs(t, err, ErrMalformed)
}
