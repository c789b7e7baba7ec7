package registry

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arc-language/depfind/pkg/platform"
)

func TestEmbeddedDefinitions(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Equal(t, []string{"boost", "winsdk"}, r.Names())

	boost, err := r.Load("boost")
	require.NoError(t, err)

	for _, id := range platform.Supported() {
		target, err := boost.Target(id)
		require.NoError(t, err, id)
		assert.NotEmpty(t, target.HeaderRoots, id)
		assert.NotEmpty(t, target.LibraryRoots, id)

		p, err := target.HeaderMatcher()
		require.NoError(t, err)
		require.NotNil(t, p)
	}

	posix, err := boost.Target(platform.POSIX)
	require.NoError(t, err)
	assert.Equal(t, []string{"/usr/local/include", "/usr/include"}, posix.HeaderRoots)
	assert.Equal(t, []string{"/usr/local/lib", "/usr/lib"}, posix.LibraryRoots)
	assert.Equal(t, "boost_system", posix.LibraryStem("system"))

	darwin, err := boost.Target(platform.Darwin)
	require.NoError(t, err)
	marker, err := darwin.MarkerMatcher()
	require.NoError(t, err)
	require.NotNil(t, marker)
	assert.True(t, marker.Match("boost"))
	assert.False(t, marker.Match("boost-1_42"))
	assert.Empty(t, posix.HeaderMarker)

	winsdk, err := r.Load("winsdk")
	require.NoError(t, err)
	_, err = winsdk.Target(platform.POSIX)
	assert.ErrorIs(t, err, platform.ErrUnsupportedPlatform)

	win, err := winsdk.Target(platform.Windows)
	require.NoError(t, err)
	lib, err := win.LibDirMatcher()
	require.NoError(t, err)
	assert.True(t, lib.Match("Lib"))
}

func TestLoadUnknown(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	_, err = r.Load("openssl")
	assert.ErrorIs(t, err, ErrUnknownDependency)
}

func TestFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"zlib.toml": {Data: []byte(`
[platforms.posix]
header_roots = ["/opt/include"]
header_regexp = "zlib-[0-9]+"
library_roots = ["/opt/lib"]
`)},
	}

	r, err := FromFS(fsys)
	require.NoError(t, err)

	entry, err := r.Load("zlib")
	require.NoError(t, err, "name falls back to the file name")

	target, err := entry.Target(platform.POSIX)
	require.NoError(t, err)
	assert.Equal(t, "z", target.LibraryStem("z"))

	p, err := target.HeaderMatcher()
	require.NoError(t, err)
	assert.True(t, p.Match("zlib-128"))
	assert.False(t, p.Match("zlib-128-old"))

	dir, err := target.LibDirMatcher()
	require.NoError(t, err)
	assert.Nil(t, dir)
}

func TestFromFSErrors(t *testing.T) {
	_, err := FromFS(fstest.MapFS{"bad.toml": {Data: []byte("name = ")}})
	assert.Error(t, err)

	_, err = FromFS(fstest.MapFS{
		"a.toml": {Data: []byte(`name = "dup"`)},
		"b.toml": {Data: []byte(`name = "dup"`)},
	})
	assert.Error(t, err)
}
