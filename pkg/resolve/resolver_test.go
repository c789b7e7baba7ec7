package resolve

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arc-language/depfind/pkg/platform"
	"github.com/arc-language/depfind/pkg/registry"
)

// fakeRoot mirrors an absolute install path such as /usr/local/include
// under a temporary directory.
func fakeRoot(t *testing.T, base, abs string) string {
	t.Helper()
	return filepath.Join(base, filepath.FromSlash(abs))
}

func boostEntry(base string, id platform.ID) *registry.Entry {
	return &registry.Entry{
		Name: "boost",
		Platforms: map[string]registry.Target{
			string(id): {
				HeaderRoots:     []string{filepath.Join(base, "usr", "local", "include"), filepath.Join(base, "usr", "include")},
				HeaderPattern:   "boost-[0-9]_[0-9][0-9]",
				LibraryRoots:    []string{filepath.Join(base, "usr", "local", "lib"), filepath.Join(base, "usr", "lib")},
				LibraryTemplate: "boost_%s",
			},
		},
	}
}

func TestNewRejectsUnknownPlatform(t *testing.T) {
	_, err := New(platform.ID("vms"))
	assert.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
}

func TestHeaderPathFallsThrough(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(fakeRoot(t, base, "/usr/local/include/openssl"), 0755))
	require.NoError(t, os.MkdirAll(fakeRoot(t, base, "/usr/include/boost-1_42"), 0755))

	r, err := New(platform.POSIX)
	require.NoError(t, err)

	got, err := r.HeaderPath(boostEntry(base, platform.POSIX))
	require.NoError(t, err)
	assert.Equal(t, fakeRoot(t, base, "/usr/include/boost-1_42"), got)
}

func TestHeaderPathFirstRootWins(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(fakeRoot(t, base, "/usr/local/include/boost-1_44"), 0755))
	require.NoError(t, os.MkdirAll(fakeRoot(t, base, "/usr/include/boost-1_42"), 0755))

	r, err := New(platform.POSIX)
	require.NoError(t, err)

	dep := boostEntry(base, platform.POSIX)
	first, err := r.HeaderPath(dep)
	require.NoError(t, err)
	assert.Equal(t, fakeRoot(t, base, "/usr/local/include/boost-1_44"), first)

	second, err := r.HeaderPath(dep)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestHeaderPathExhausted(t *testing.T) {
	base := t.TempDir()

	core, logs := observer.New(zap.DebugLevel)
	r, err := New(platform.POSIX, WithLogger(zap.New(core)))
	require.NoError(t, err)

	got, err := r.HeaderPath(boostEntry(base, platform.POSIX))
	assert.Empty(t, got)
	require.ErrorIs(t, err, ErrNotFound)

	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Equal(t, "boost", exhausted.Dependency)
	assert.Equal(t, KindHeaders, exhausted.Kind)
	assert.Equal(t, platform.POSIX, exhausted.Platform)
	require.Len(t, exhausted.Tried, 2)
	assert.Equal(t, filepath.Join(base, "usr", "local", "include"), exhausted.Tried[0].Root)
	assert.Equal(t, "boost-[0-9]_[0-9][0-9]", exhausted.Tried[1].Pattern)
	assert.Contains(t, err.Error(), filepath.Join(base, "usr", "include"))

	assert.Equal(t, 2, logs.FilterMessage("no match").Len())
	assert.Equal(t, 1, logs.FilterMessage("resolution exhausted").Len())
}

func TestHeaderPathPlatformMissing(t *testing.T) {
	r, err := New(platform.Windows)
	require.NoError(t, err)

	_, err = r.HeaderPath(boostEntry(t.TempDir(), platform.POSIX))
	assert.ErrorIs(t, err, platform.ErrUnsupportedPlatform)
}

func TestLibraryName(t *testing.T) {
	base := t.TempDir()
	libDir := fakeRoot(t, base, "/usr/lib")
	require.NoError(t, os.MkdirAll(libDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "libboost_system-gcc43-mt-1_39.so"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "libboost_filesystem-gcc43-mt-1_39.so"), nil, 0644))

	r, err := New(platform.POSIX)
	require.NoError(t, err)

	lib, err := r.LibraryName(boostEntry(base, platform.POSIX), "system")
	require.NoError(t, err)
	assert.Equal(t, "boost_system-gcc43-mt-1_39", lib.Name)
	assert.Equal(t, filepath.Join(libDir, "libboost_system-gcc43-mt-1_39.so"), lib.Path)
	assert.Equal(t, libDir, lib.Dir)
	require.NotNil(t, lib.Version)
	assert.Equal(t, "1.39.0", lib.Version.String())
}

func TestLibraryNameNested(t *testing.T) {
	base := t.TempDir()
	nested := fakeRoot(t, base, "/usr/local/lib/boost/x86_64")
	require.NoError(t, os.MkdirAll(nested, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "libboost_thread.a"), nil, 0644))

	r, err := New(platform.Darwin)
	require.NoError(t, err)

	lib, err := r.LibraryName(boostEntry(base, platform.Darwin), "thread")
	require.NoError(t, err)
	assert.Equal(t, "boost_thread", lib.Name)
	assert.Nil(t, lib.Version)
}

func TestLibraryNameExhausted(t *testing.T) {
	base := t.TempDir()
	r, err := New(platform.POSIX)
	require.NoError(t, err)

	_, err = r.LibraryName(boostEntry(base, platform.POSIX), "regex")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "libboost_regex*")

	_, err = r.LibraryName(boostEntry(base, platform.POSIX), "")
	assert.Error(t, err)
}

func TestLibraryPath(t *testing.T) {
	base := t.TempDir()
	sdk := filepath.Join(base, "Program Files", "Microsoft SDKs", "Windows")
	require.NoError(t, os.MkdirAll(filepath.Join(sdk, "Include"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(sdk, "Lib"), 0755))

	dep := &registry.Entry{
		Name: "winsdk",
		Platforms: map[string]registry.Target{
			"windows": {
				HeaderRoots:   []string{sdk},
				HeaderPattern: "Include",
				LibDirRoots:   []string{sdk},
				LibDirPattern: "Lib",
			},
		},
	}

	r, err := New(platform.Windows)
	require.NoError(t, err)

	inc, err := r.HeaderPath(dep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sdk, "Include"), inc)

	lib, err := r.LibraryPath(dep)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(sdk, "Lib"), lib)

	require.NoError(t, os.Remove(filepath.Join(sdk, "Lib")))
	_, err = r.LibraryPath(dep)
	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, KindLibraryDir, exhausted.Kind)
}

func homebrewEntry(t *testing.T, base string) *registry.Entry {
	t.Helper()
	reg, err := registry.New()
	require.NoError(t, err)
	boost, err := reg.Load("boost")
	require.NoError(t, err)

	target, err := boost.Target(platform.Darwin)
	require.NoError(t, err)
	rebase := func(roots []string) []string {
		out := make([]string, len(roots))
		for i, root := range roots {
			out[i] = fakeRoot(t, base, root)
		}
		return out
	}
	target.HeaderRoots = rebase(target.HeaderRoots)
	target.LibraryRoots = rebase(target.LibraryRoots)
	return &registry.Entry{Name: boost.Name, Platforms: map[string]registry.Target{"darwin": *target}}
}

func TestHeaderPathMarker(t *testing.T) {
	base := t.TempDir()
	include := fakeRoot(t, base, "/usr/local/include")
	require.NoError(t, os.MkdirAll(filepath.Join(include, "boost"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(include, "boost", "version.hpp"), nil, 0644))
	lib := fakeRoot(t, base, "/usr/local/lib")
	require.NoError(t, os.MkdirAll(lib, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(lib, "libboost_system-mt.dylib"), nil, 0644))

	r, err := New(platform.Darwin)
	require.NoError(t, err)
	dep := homebrewEntry(t, base)

	got, err := r.HeaderPath(dep)
	require.NoError(t, err)
	assert.Equal(t, include, got)

	l, err := r.LibraryName(dep, "system")
	require.NoError(t, err)
	assert.Equal(t, "boost_system-mt", l.Name)
}

func TestHeaderPathVersionedBeforeMarker(t *testing.T) {
	base := t.TempDir()
	include := fakeRoot(t, base, "/opt/homebrew/include")
	require.NoError(t, os.MkdirAll(filepath.Join(include, "boost"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(include, "boost-1_44"), 0755))

	r, err := New(platform.Darwin)
	require.NoError(t, err)

	got, err := r.HeaderPath(homebrewEntry(t, base))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(include, "boost-1_44"), got)
}

func TestHeaderPathMarkerExhausted(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(fakeRoot(t, base, "/usr/local/include/boostish"), 0755))

	r, err := New(platform.Darwin)
	require.NoError(t, err)

	_, err = r.HeaderPath(homebrewEntry(t, base))
	var exhausted *ExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Len(t, exhausted.Tried, 4)
	assert.Contains(t, err.Error(), "boost/ in "+fakeRoot(t, base, "/usr/local/include"))
}
