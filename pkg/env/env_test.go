package env

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefinesStandardKeys(t *testing.T) {
	e := New()
	assert.Equal(t, []string{"CCFLAGS", "CPPPATH", "LIBPATH", "LIBS", "LINKFLAGS"}, e.Keys())
	for _, key := range StandardKeys() {
		assert.Empty(t, e.Values(key), key)
	}
	assert.Equal(t, DefaultJobs, e.Jobs())
}

func TestAppendKeepsOrder(t *testing.T) {
	e := New()
	e.Append(IncludePath, "#include", "#libsqlite3")
	e.Append(IncludePath, "/usr/include/boost-1_42", "")
	e.Append(IncludePath, "#include")

	assert.Equal(t, []string{"#include", "#libsqlite3", "/usr/include/boost-1_42", "#include"}, e.Values(IncludePath))

	got := e.Values(IncludePath)
	got[0] = "mutated"
	assert.Equal(t, "#include", e.Values(IncludePath)[0], "Values returns a copy")
}

func TestAppendUnique(t *testing.T) {
	e := New()
	e.AppendUnique(LibraryPath, "/usr/lib", "/usr/local/lib", "/usr/lib")
	assert.Equal(t, []string{"/usr/lib", "/usr/local/lib"}, e.Values(LibraryPath))
}

func TestZeroValueEnvironment(t *testing.T) {
	var e Environment
	e.Append(Libraries, "pthread")
	assert.Equal(t, []string{"pthread"}, e.Values(Libraries))
	assert.Contains(t, e.Keys(), CCFlags)
}

func TestAddLibrary(t *testing.T) {
	e := New()
	e.AddLibrary("boost_system-gcc43-mt-1_39", "/usr/lib")
	e.AddLibrary("boost_thread-gcc43-mt-1_39", "/usr/lib")
	e.AddLibrary("boost_system-gcc43-mt-1_39", "")

	assert.Equal(t, []string{"/usr/lib"}, e.Values(LibraryPath))
	assert.True(t, e.HasLibrary("boost_thread-gcc43-mt-1_39"))
	assert.False(t, e.HasLibrary("boost_regex"))
	assert.Equal(t, []string{"boost_system-gcc43-mt-1_39", "boost_thread-gcc43-mt-1_39"}, e.ListLibraryNames())
}

func TestFlags(t *testing.T) {
	e := New()
	e.Append(CCFlags, "-O3")
	e.Append(IncludePath, "/usr/include/boost-1_42")
	e.AddLibrary("boost_system", "/usr/lib")
	e.Append(Libraries, "pthread")
	e.Append(LinkFlags, "-static")

	flags := e.Flags()
	assert.Equal(t, []string{"-I/usr/include/boost-1_42"}, flags.IncludeFlags)
	assert.Equal(t, []string{"-L/usr/lib"}, flags.LibraryFlags)
	assert.Equal(t, []string{"-lboost_system", "-lpthread"}, flags.LinkFlags)
	assert.Equal(t, "-O3 -I/usr/include/boost-1_42 -L/usr/lib -lboost_system -lpthread -static", e.String())
}

func TestSetJobs(t *testing.T) {
	e := New()
	e.SetJobs(8)
	assert.Equal(t, 8, e.Jobs())
	e.SetJobs(0)
	assert.Equal(t, 8, e.Jobs())
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := New()
	e.SetJobs(4)
	e.Append(CCFlags, "-O3")
	e.Append(IncludePath, "/usr/include/boost-1_42")
	e.AddLibrary("boost_system-gcc43-mt-1_39", "/usr/lib")

	for _, format := range []Format{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, e.Snapshot("posix").Encode(&buf, format))

			s, err := DecodeSnapshot(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, "posix", s.Platform)

			back := s.Environment()
			assert.Equal(t, 4, back.Jobs())
			assert.Equal(t, e.String(), back.String())
		})
	}
}

func TestSaveLoadSnapshot(t *testing.T) {
	e := New()
	e.Append(Libraries, "ws2_32")

	path := filepath.Join(t.TempDir(), "out", "env.json")
	require.NoError(t, e.Snapshot("windows").Save(path))

	s, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, "windows", s.Platform)
	assert.Equal(t, []string{"ws2_32"}, s.Vars[Libraries])

	err = e.Snapshot("windows").Save(filepath.Join(t.TempDir(), "env.ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = FormatFromPath("env")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
