package model

import (
	"strings"

	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// ApiFile represents one IPC interface definition (.api) file. Each
// canonical path has exactly one ApiFile object, shared by every interface
// that references it, so the include graph below it is modelled once.
type ApiFile struct {
	Path string

	// DefaultPrefix is the interface name used when none is given
	// explicitly: the file's base name without the ".api" suffix.
	DefaultPrefix string

	// IsIncluded marks files pulled in through a USETYPES declaration of
	// another .api file.
	IsIncluded bool

	// Includes lists the files this one pulls in through USETYPES, in
	// declaration order.
	Includes []*ApiFile
}

// NewApiFile creates an ApiFile for the given path.
func NewApiFile(path string) *ApiFile {
	return &ApiFile{
		Path:          path,
		DefaultPrefix: strings.TrimSuffix(pkg.GetLastNode(path), ".api"),
	}
}

// CodeGenDir returns the directory, relative to the build working
// directory, where generated client/server code for this interface lands.
func (f *ApiFile) CodeGenDir() string {
	return "api/" + f.DefaultPrefix
}

// ApiInterface ties an interface name to the .api file that defines it, on
// behalf of the component that declares it. A nil Component marks a
// pre-built interface declared directly by an application.
type ApiInterface struct {
	ApiFile      *ApiFile
	Component    *Component
	InternalName string
}

// ApiTypesOnlyInterface is a client-side interface declared [types-only]:
// the component uses the interface's types but no IPC code is generated.
type ApiTypesOnlyInterface struct {
	ApiInterface
}

// ApiClientInterface is a client-side IPC interface declared by a
// component.
type ApiClientInterface struct {
	ApiInterface

	ManualStart bool
	Optional    bool
}

// ApiServerInterface is a server-side IPC interface declared by a
// component.
type ApiServerInterface struct {
	ApiInterface

	Async       bool
	ManualStart bool
	Direct      bool
}

// ApiClientInterfaceInstance is one client interface of one component
// instance inside one executable.
type ApiClientInterfaceInstance struct {
	ComponentInstance *ComponentInstance
	If                *ApiClientInterface

	// Name is the interface's external name: the extern alias when marked
	// extern, otherwise empty.
	Name string

	// ExternMark is the parse tree token that marked the interface extern,
	// nil when it isn't.
	ExternMark *tree.Token

	// Binding is the binding that satisfies this interface, nil while
	// unbound.
	Binding *Binding
}

// ApiServerInterfaceInstance is one server interface of one component
// instance inside one executable.
type ApiServerInterfaceInstance struct {
	ComponentInstance *ComponentInstance
	If                *ApiServerInterface

	Name       string
	ExternMark *tree.Token
}
