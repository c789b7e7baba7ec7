// depfind.go
package depfind

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/arc-language/depfind/pkg/core"
	"github.com/arc-language/depfind/pkg/env"
	"github.com/arc-language/depfind/pkg/platform"
	"github.com/arc-language/depfind/pkg/registry"
	"github.com/arc-language/depfind/pkg/resolve"
)

// Boost is the registry name of the external library set every target uses
const Boost = "boost"

// Re-export types for convenience
type (
	Config      = core.Config
	Environment = env.Environment
	Library     = resolve.Library
	Platform    = platform.ID
	// RegistryEntry is the candidate table for one dependency
	RegistryEntry = registry.Entry
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Manager locates dependencies for one platform and records them in a
// build environment. It only ever appends to the environments it is given.
type Manager struct {
	config   *core.Config
	resolver *resolve.Resolver
	registry *registry.Registry
	logger   *zap.Logger
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger, which is also handed to the resolver
func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRegistry replaces the compiled-in dependency definitions
func WithRegistry(r *registry.Registry) Option {
	return func(m *Manager) {
		m.registry = r
	}
}

// NewManager creates a Manager for the configured platform, or the
// detected one when the config leaves it empty
func NewManager(cfg *core.Config, opts ...Option) (*Manager, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	m := &Manager{
		config: cfg,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}

	id, err := m.platformID()
	if err != nil {
		return nil, &Error{Op: "init", Err: err}
	}

	m.resolver, err = resolve.New(id, resolve.WithLogger(m.logger))
	if err != nil {
		return nil, &Error{Op: "init", Err: err}
	}

	if m.registry == nil {
		m.registry, err = registry.New()
		if err != nil {
			return nil, &Error{Op: "init", Err: err}
		}
	}

	m.logger.Debug("manager ready", zap.String("platform", id.String()))
	return m, nil
}

func (m *Manager) platformID() (platform.ID, error) {
	if m.config.Platform != "" {
		return platform.Parse(m.config.Platform)
	}
	return platform.Detect()
}

// Platform returns the platform dependencies are located for
func (m *Manager) Platform() platform.ID {
	return m.resolver.Platform()
}

// Config returns the configuration in use
func (m *Manager) Config() *core.Config {
	return m.config
}

// Dependencies returns the names of every known dependency
func (m *Manager) Dependencies() []string {
	return m.registry.Names()
}

// Dependency returns the definition for name
func (m *Manager) Dependency(name string) (*RegistryEntry, error) {
	entry, err := m.registry.Load(name)
	if err != nil {
		return nil, &Error{Op: "lookup", Dependency: name, Err: err}
	}
	return entry, nil
}

// IncludePath returns the Boost header directory. When a minimum version
// is configured the headers must satisfy it.
func (m *Manager) IncludePath() (string, error) {
	dep, err := m.Dependency(Boost)
	if err != nil {
		return "", err
	}

	dir, err := m.resolver.HeaderPath(dep)
	if err != nil {
		return "", &Error{Op: "include", Dependency: Boost, Err: err}
	}

	if err := m.checkVersion(dir); err != nil {
		return "", &Error{Op: "include", Dependency: Boost, Err: err}
	}
	return dir, nil
}

// LibraryName resolves a Boost library by its logical name, e.g.
// "system" to boost_system-gcc43-mt-1_39
func (m *Manager) LibraryName(name string) (*Library, error) {
	dep, err := m.Dependency(Boost)
	if err != nil {
		return nil, err
	}

	lib, err := m.resolver.LibraryName(dep, name)
	if err != nil {
		return nil, &Error{Op: "library", Dependency: Boost, Err: err}
	}
	return lib, nil
}

// Setup adds what every target needs: the job count, project paths, the
// Boost headers, the platform SDK directories, and the platform's base
// compiler flags and libraries.
func (m *Manager) Setup(e *env.Environment) error {
	e.DefineKeys()
	e.SetJobs(m.config.Jobs)

	e.Append(env.IncludePath, m.config.IncludePaths...)
	e.Append(env.LibraryPath, m.config.LibraryPaths...)

	include, err := m.IncludePath()
	if err != nil {
		return err
	}
	e.Append(env.IncludePath, include)

	conv := m.resolver.Conventions()
	for _, name := range conv.SystemDeps {
		if err := m.systemDep(e, name); err != nil {
			return err
		}
	}

	e.Append(env.CCFlags, conv.CCFlags...)
	e.Append(env.Libraries, conv.Libs...)

	m.logger.Debug("setup complete",
		zap.Int("jobs", e.Jobs()),
		zap.String("include", include))
	return nil
}

func (m *Manager) systemDep(e *env.Environment, name string) error {
	dep, err := m.Dependency(name)
	if err != nil {
		return err
	}

	libDir, err := m.resolver.LibraryPath(dep)
	if err != nil {
		return &Error{Op: "setup", Dependency: name, Err: err}
	}
	includeDir, err := m.resolver.HeaderPath(dep)
	if err != nil {
		return &Error{Op: "setup", Dependency: name, Err: err}
	}

	e.Append(env.LibraryPath, libDir)
	e.Append(env.IncludePath, includeDir)
	return nil
}

// Library resolves each Boost library and links it. Nothing is appended
// unless every name resolves.
func (m *Manager) Library(e *env.Environment, names ...string) error {
	libs := make([]*Library, 0, len(names))
	for _, name := range names {
		lib, err := m.LibraryName(name)
		if err != nil {
			return err
		}
		libs = append(libs, lib)
	}

	for _, lib := range libs {
		e.AddLibrary(lib.Name, lib.Dir)
	}
	return nil
}

// SetupStatic adds the linker flags for a static build
func (m *Manager) SetupStatic(e *env.Environment) error {
	conv := m.resolver.Conventions()
	if !conv.StaticSupported() {
		return &Error{Op: "static", Err: fmt.Errorf("%w on %s", ErrStaticUnsupported, conv.ID)}
	}
	e.Append(env.LinkFlags, conv.StaticLinkFlags...)
	return nil
}

// Networking links the platform's socket library, if it has one
func (m *Manager) Networking(e *env.Environment) {
	e.Append(env.Libraries, m.resolver.Conventions().NetworkLibs...)
}

// RandomNumber links the platform's random number library, if it has one
func (m *Manager) RandomNumber(e *env.Environment) {
	e.Append(env.Libraries, m.resolver.Conventions().RandomLibs...)
}

// Configure runs everything the config asks for, in order: setup,
// features, libraries, then static linking.
func (m *Manager) Configure(e *env.Environment) error {
	if err := m.Setup(e); err != nil {
		return err
	}

	for _, feature := range m.config.Features {
		if feature != core.FeatureNetworking && feature != core.FeatureRandomNumber {
			return &Error{Op: "configure", Err: fmt.Errorf("%w: unknown feature %q", core.ErrInvalidConfig, feature)}
		}
	}
	// Each feature links once, however often it is listed
	if m.config.HasFeature(core.FeatureNetworking) {
		m.Networking(e)
	}
	if m.config.HasFeature(core.FeatureRandomNumber) {
		m.RandomNumber(e)
	}

	if len(m.config.Libraries) > 0 {
		if err := m.Library(e, m.config.Libraries...); err != nil {
			return err
		}
	}

	if m.config.Static {
		return m.SetupStatic(e)
	}
	return nil
}

func (m *Manager) checkVersion(dir string) error {
	constraint, err := m.config.VersionConstraint()
	if err != nil || constraint == nil {
		return err
	}

	v := resolve.HeaderVersion(dir)
	if v == nil {
		return fmt.Errorf("%w: no version in %s, want %s", ErrVersionMismatch, dir, constraint)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: found %s in %s, want %s", ErrVersionMismatch, v, dir, constraint)
	}
	return nil
}

// IsNotFound reports whether err means a dependency could not be located
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
