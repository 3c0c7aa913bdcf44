package model

import "github.com/ardnew/mkdef/tree"

// Executable is one program built from a list of component instances.
type Executable struct {
	App *App

	// Item is the executables section entry that defined this executable.
	Item *tree.Item

	Name string

	// Path is the executable's output path relative to the application's
	// working directory.
	Path string

	ComponentInstances []*ComponentInstance

	HasCOrCxxCode bool
	HasJavaCode   bool
}

// NewExecutable creates an executable owned by the given application.
func NewExecutable(app *App, name string) *Executable {
	return &Executable{
		App:  app,
		Name: name,
		Path: "staging/read-only/bin/" + name,
	}
}

// AddComponentInstance instantiates the component inside the executable
// and records what kinds of code the executable will link.
func (e *Executable) AddComponentInstance(c *Component) *ComponentInstance {
	instance := NewComponentInstance(e, c)
	e.ComponentInstances = append(e.ComponentInstances, instance)

	if c.HasCOrCxxCode() {
		e.HasCOrCxxCode = true
	}

	if len(c.JavaPackages) > 0 {
		e.HasJavaCode = true
	}

	return instance
}

// MainObjectFile returns the path, relative to the build working directory,
// of the generated main object for this executable.
func (e *Executable) MainObjectFile() string {
	return "obj/" + e.Name + "/_main.c.o"
}
