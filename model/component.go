package model

import (
	"github.com/ardnew/mkdef/tree"
)

// Component is the semantic model of one component directory and its
// Component.cdef file.
type Component struct {
	DefFile *tree.DefFile

	Name string
	Dir  string

	// WorkingDir is the component's build directory relative to the build
	// root.
	WorkingDir string

	// Lib is the path of the component's shared library relative to the
	// build working directory, empty for components with no compiled code.
	Lib string

	CSources   []string
	CxxSources []string

	JavaPackages []string

	CFlags   []string
	CxxFlags []string
	LdFlags  []string

	TypesOnlyApis []*ApiTypesOnlyInterface
	ClientApis    []*ApiClientInterface
	ServerApis    []*ApiServerInterface

	// ClientUsetypesApis and ServerUsetypesApis are the .api files included
	// (directly or transitively) by this component's client and server
	// interface files.
	ClientUsetypesApis []*ApiFile
	ServerUsetypesApis []*ApiFile

	RequiredFiles   []*FileSystemObject
	RequiredDirs    []*FileSystemObject
	RequiredDevices []*FileSystemObject

	RequiredLibs []string

	SubComponents []*Component

	BundledFiles []*FileSystemObject
	BundledDirs  []*FileSystemObject
}

// NewComponent creates a component model rooted at the given parse tree.
// The component's name is the name of its directory.
func NewComponent(f *tree.DefFile, name, dir string) *Component {
	return &Component{
		DefFile:    f,
		Name:       name,
		Dir:        dir,
		WorkingDir: "component/" + name,
	}
}

// HasCOrCxxCode reports whether the component has compiled sources and so
// produces a shared library.
func (c *Component) HasCOrCxxCode() bool {
	return len(c.CSources) > 0 || len(c.CxxSources) > 0
}

// HasCode reports whether the component has any sources at all.
func (c *Component) HasCode() bool {
	return c.HasCOrCxxCode() || len(c.JavaPackages) > 0
}

// ComponentInstance is one instantiation of a component inside one
// executable, carrying the per-instance IPC interface instances.
type ComponentInstance struct {
	Exe       *Executable
	Component *Component

	ClientApis []*ApiClientInterfaceInstance
	ServerApis []*ApiServerInterfaceInstance
}

// NewComponentInstance instantiates a component inside an executable,
// creating an interface instance for each of the component's client and
// server interfaces.
func NewComponentInstance(exe *Executable, c *Component) *ComponentInstance {
	instance := &ComponentInstance{Exe: exe, Component: c}

	for _, api := range c.ClientApis {
		instance.ClientApis = append(instance.ClientApis,
			&ApiClientInterfaceInstance{ComponentInstance: instance, If: api})
	}

	for _, api := range c.ServerApis {
		instance.ServerApis = append(instance.ServerApis,
			&ApiServerInterfaceInstance{ComponentInstance: instance, If: api})
	}

	return instance
}

// FindClientInterface returns the client interface instance with the given
// internal name, or nil.
func (i *ComponentInstance) FindClientInterface(name string) *ApiClientInterfaceInstance {
	for _, instance := range i.ClientApis {
		if instance.If.InternalName == name {
			return instance
		}
	}

	return nil
}

// FindServerInterface returns the server interface instance with the given
// internal name, or nil.
func (i *ComponentInstance) FindServerInterface(name string) *ApiServerInterfaceInstance {
	for _, instance := range i.ServerApis {
		if instance.If.InternalName == name {
			return instance
		}
	}

	return nil
}
