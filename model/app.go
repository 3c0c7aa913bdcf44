package model

import (
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// App is the semantic model of one application and its .adef file.
type App struct {
	DefFile *tree.DefFile

	// Dir is the absolute path of the directory containing the .adef file.
	Dir string

	// Name is the identifier-safe form of the .adef file's base name.
	Name string

	// WorkingDir is the application's build directory relative to the
	// build root.
	WorkingDir string

	Version string

	IsSandboxed  bool
	StartTrigger StartMode

	CpuShare              SetOnceInt
	MaxFileSystemBytes    SetOnceInt
	MaxMemoryBytes        SetOnceInt
	MaxMQueueBytes        SetOnceInt
	MaxQueuedSignals      SetOnceInt
	MaxThreads            SetOnceInt
	MaxSecureStorageBytes SetOnceInt

	WatchdogAction  SetOnceString
	WatchdogTimeout SetOnceInt

	// Components holds every component used by the application, directly
	// or through sub-components, in discovery order.
	Components []*Component

	Executables map[string]*Executable

	ProcessEnvs []*ProcessEnv

	groups     []string
	groupIndex map[string]struct{}

	BundledFiles []*FileSystemObject
	BundledDirs  []*FileSystemObject

	RequiredFiles   []*FileSystemObject
	RequiredDirs    []*FileSystemObject
	RequiredDevices []*FileSystemObject

	// ConfigTrees maps configuration tree names to the access permissions
	// the application requires on them.
	ConfigTrees map[string]Permissions

	// ExternServerInterfaces and ExternClientInterfaces index interface
	// instances marked extern by their external name.
	ExternServerInterfaces map[string]*ApiServerInterfaceInstance
	ExternClientInterfaces map[string]*ApiClientInterfaceInstance

	// PreBuiltServerInterfaces and PreBuiltClientInterfaces index the
	// interfaces of pre-built binaries declared directly by the
	// application, by interface name.
	PreBuiltServerInterfaces map[string]*ApiServerInterfaceInstance
	PreBuiltClientInterfaces map[string]*ApiClientInterfaceInstance
}

// NewApp creates an application model rooted at the given parse tree with
// the default sandbox limits applied.
func NewApp(f *tree.DefFile) *App {
	name := pkg.GetIdentifierSafeName(pkg.RemoveSuffix(pkg.GetLastNode(f.Path), ".adef"))

	return &App{
		DefFile:               f,
		Dir:                   pkg.MakeAbsolute(pkg.GetContainingDir(f.Path)),
		Name:                  name,
		WorkingDir:            "app/" + name,
		IsSandboxed:           true,
		StartTrigger:          StartAuto,
		CpuShare:              NewSetOnceInt(1024),
		MaxFileSystemBytes:    NewSetOnceInt(128 * 1024),
		MaxMemoryBytes:        NewSetOnceInt(40000 * 1024),
		MaxMQueueBytes:        NewSetOnceInt(512),
		MaxQueuedSignals:      NewSetOnceInt(100),
		MaxThreads:            NewSetOnceInt(20),
		MaxSecureStorageBytes: NewSetOnceInt(8192),

		Executables: map[string]*Executable{},
		ConfigTrees: map[string]Permissions{},

		ExternServerInterfaces: map[string]*ApiServerInterfaceInstance{},
		ExternClientInterfaces: map[string]*ApiClientInterfaceInstance{},

		PreBuiltServerInterfaces: map[string]*ApiServerInterfaceInstance{},
		PreBuiltClientInterfaces: map[string]*ApiClientInterfaceInstance{},

		groupIndex: map[string]struct{}{},
	}
}

// AddGroup adds the app's user to a group. Duplicates are ignored.
func (a *App) AddGroup(name string) {
	if _, ok := a.groupIndex[name]; ok {
		return
	}

	a.groupIndex[name] = struct{}{}
	a.groups = append(a.groups, name)
}

// Groups returns the app's supplementary groups in declaration order.
func (a *App) Groups() []string { return a.groups }

// ConfigFilePath returns the path of the app's root.cfg file relative to
// the build's working directory.
func (a *App) ConfigFilePath() string {
	return a.WorkingDir + "/staging/root.cfg"
}

// FindComponentInstance finds the component instance for a given exe name
// and component name.
func (a *App) FindComponentInstance(exeTok, componentTok *tree.Token) (*ComponentInstance, *tree.Error) {
	exeName := exeTok.Text
	componentName := componentTok.Text

	for _, exe := range a.Executables {
		if exe.Name != exeName {
			continue
		}

		for _, instance := range exe.ComponentInstances {
			if instance.Component.Name == componentName {
				return instance, nil
			}
		}

		return nil, tree.ErrorAt(tree.SemanticError, componentTok,
			"Component '%s' not found in executable '%s'.", componentName, exeName)
	}

	return nil, tree.ErrorAt(tree.SemanticError, exeTok,
		"Executable '%s' not defined in application.", exeName)
}

// FindServerInterface finds the server interface instance for a given
// internal exe.component.interface specification. Interfaces of pre-built
// binaries are matched by their full name first.
func (a *App) FindServerInterface(exeTok, componentTok, ifTok *tree.Token) (*ApiServerInterfaceInstance, *tree.Error) {
	fullName := exeTok.Text + "." + componentTok.Text + "." + ifTok.Text

	if instance, ok := a.ExternServerInterfaces[fullName]; ok {
		return instance, nil
	}

	componentInstance, err := a.FindComponentInstance(exeTok, componentTok)
	if err != nil {
		return nil, err
	}

	instance := componentInstance.FindServerInterface(ifTok.Text)
	if instance == nil {
		return nil, tree.ErrorAt(tree.SemanticError, ifTok,
			"Server interface '%s' not found in component '%s' in executable '%s'.",
			ifTok.Text, componentTok.Text, exeTok.Text)
	}

	return instance, nil
}

// FindClientInterface finds the client interface instance for a given
// internal exe.component.interface specification.
func (a *App) FindClientInterface(exeTok, componentTok, ifTok *tree.Token) (*ApiClientInterfaceInstance, *tree.Error) {
	fullName := exeTok.Text + "." + componentTok.Text + "." + ifTok.Text

	if instance, ok := a.PreBuiltClientInterfaces[fullName]; ok {
		return instance, nil
	}

	componentInstance, err := a.FindComponentInstance(exeTok, componentTok)
	if err != nil {
		return nil, err
	}

	instance := componentInstance.FindClientInterface(ifTok.Text)
	if instance == nil {
		return nil, tree.ErrorAt(tree.SemanticError, ifTok,
			"Client interface '%s' not found in component '%s' in executable '%s'.",
			ifTok.Text, componentTok.Text, exeTok.Text)
	}

	return instance, nil
}

// FindExternalClientInterface finds the client interface instance with the
// given external name, checking interfaces marked extern before those of
// pre-built binaries.
func (a *App) FindExternalClientInterface(ifTok *tree.Token) (*ApiClientInterfaceInstance, *tree.Error) {
	if instance, ok := a.ExternClientInterfaces[ifTok.Text]; ok {
		return instance, nil
	}

	if instance, ok := a.PreBuiltClientInterfaces[ifTok.Text]; ok {
		return instance, nil
	}

	return nil, tree.ErrorAt(tree.SemanticError, ifTok,
		"App '%s' has no external client-side interface named '%s'", a.Name, ifTok.Text)
}

// FindComponent returns the already-modelled component with the given
// directory path, or nil.
func (a *App) FindComponent(dir string) *Component {
	for _, c := range a.Components {
		if c.Dir == dir {
			return c
		}
	}

	return nil
}
