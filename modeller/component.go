package modeller

import (
	"github.com/ardnew/mkdef/envvar"
	"github.com/ardnew/mkdef/fsys"
	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/parser"
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// defFileName is the name of the definition file inside every component
// directory.
const defFileName = "Component.cdef"

// GetComponent returns the component model for a component named by a
// token, searching the given extra directories before the configured
// source path. Each component directory is modelled once; later references
// share the object. It returns nil without error when environment variable
// substitution of the token leaves an empty name.
func (c *Context) GetComponent(tok *tree.Token, extraSearchDirs []string) (*model.Component, *tree.Error) {
	name, err := substitute(tok)
	if err != nil {
		return nil, err
	}

	if name == "" {
		return nil, nil
	}

	searchList := append(append([]string{}, extraSearchDirs...), c.Params.SourceDirs...)

	dir := fsys.FindDirectory(c.Params.FS, name, searchList)
	if dir == "" {
		return nil, tree.ErrorAt(tree.SemanticError, tok,
			"Couldn't find component '%s'.", name)
	}

	dir = pkg.MakeAbsolute(dir)

	if component, ok := c.components[dir]; ok {
		if component == nil {
			return nil, tree.ErrorAt(tree.SemanticError, tok,
				"Component dependency loop detected: '%s'.", name)
		}

		return component, nil
	}

	// Mark the directory in-progress so sub-component cycles are caught.
	c.components[dir] = nil

	component, cerr := c.modelComponent(tok, pkg.GetLastNode(dir), dir)
	if cerr != nil {
		delete(c.components, dir)

		return nil, cerr
	}

	c.components[dir] = component

	return component, nil
}

func (c *Context) modelComponent(tok *tree.Token, name, dir string) (*model.Component, *tree.Error) {
	cdefPath := pkg.Combine(dir, defFileName)

	if !c.Params.FS.FileExists(cdefPath) {
		return nil, tree.ErrorAt(tree.SemanticError, tok,
			"Couldn't find file '%s'.", cdefPath)
	}

	f, err := parser.ParseComponent(cdefPath)
	if err != nil {
		return nil, err
	}

	restore, rerr := envvar.SetCurDir(dir)
	if rerr != nil {
		return nil, tree.NewError(tree.InternalError, rerr.Error())
	}
	defer restore()

	component := model.NewComponent(f, name, dir)

	for _, section := range f.Sections {
		if err := c.addCdefSection(component, section); err != nil {
			return nil, err
		}
	}

	if component.HasCOrCxxCode() {
		component.Lib = component.WorkingDir + "/libComponent_" + name + ".so"
	}

	return component, nil
}

func (c *Context) addCdefSection(component *model.Component, section tree.Content) *tree.Error {
	switch s := section.(type) {
	case *tree.TokenListSection:
		return c.addCdefListSection(component, s)

	case *tree.ComplexSection:
		return c.addCdefComplexSection(component, s)
	}

	return nil
}

func (c *Context) addCdefListSection(component *model.Component, s *tree.TokenListSection) *tree.Error {
	switch s.Name() {
	case "cflags", "cxxflags", "ldflags":
		for _, tok := range s.Contents {
			flag, err := substitute(tok)
			if err != nil {
				return err
			}

			switch s.Name() {
			case "cflags":
				component.CFlags = append(component.CFlags, flag)
			case "cxxflags":
				component.CxxFlags = append(component.CxxFlags, flag)
			case "ldflags":
				component.LdFlags = append(component.LdFlags, flag)
			}
		}

	case "sources":
		for _, tok := range s.Contents {
			if err := c.addSource(component, tok); err != nil {
				return err
			}
		}

	case "javaPackage":
		for _, tok := range s.Contents {
			component.JavaPackages = append(component.JavaPackages, tok.Text)
		}
	}

	return nil
}

func (c *Context) addSource(component *model.Component, tok *tree.Token) *tree.Error {
	name, err := substitute(tok)
	if err != nil {
		return err
	}

	if name == "" {
		return nil
	}

	searchList := append([]string{component.Dir}, c.Params.SourceDirs...)

	path := fsys.FindFile(c.Params.FS, name, searchList)
	if path == "" {
		return tree.ErrorAt(tree.SemanticError, tok,
			"Couldn't find source file '%s'.", name)
	}

	switch {
	case pkg.HasSuffix(path, ".c"):
		component.CSources = append(component.CSources, path)
	case pkg.HasSuffix(path, ".cpp"), pkg.HasSuffix(path, ".cc"), pkg.HasSuffix(path, ".cxx"):
		component.CxxSources = append(component.CxxSources, path)
	default:
		return tree.ErrorAt(tree.SemanticError, tok,
			"Unrecognized source file type '%s'.", name)
	}

	return nil
}

func (c *Context) addCdefComplexSection(component *model.Component, s *tree.ComplexSection) *tree.Error {
	switch s.Name() {
	case "bundles":
		return c.addComponentBundles(component, s)
	case "provides":
		return c.addProvidesSection(component, s)
	case "requires":
		return c.addComponentRequires(component, s)
	}

	return nil
}

// addComponentBundles walks the "file" and "dir" subsections of a .cdef
// "bundles:" section. Each subsection's items already carry the right tag.
func (c *Context) addComponentBundles(component *model.Component, s *tree.ComplexSection) *tree.Error {
	for _, sub := range s.Items {
		subsection, ok := sub.(*tree.ComplexSection)
		if !ok {
			continue
		}

		for _, content := range subsection.Items {
			item, ok := content.(*tree.Item)
			if !ok {
				continue
			}

			obj, err := GetBundledItem(item)
			if err != nil {
				return err
			}

			switch item.Tag {
			case tree.BundledFileItem:
				component.BundledFiles = append(component.BundledFiles, obj)
			case tree.BundledDirItem:
				component.BundledDirs = append(component.BundledDirs, obj)
			}
		}
	}

	return nil
}

func (c *Context) addProvidesSection(component *model.Component, s *tree.ComplexSection) *tree.Error {
	for _, sub := range s.Items {
		subsection, ok := sub.(*tree.ComplexSection)
		if !ok {
			continue
		}

		for _, content := range subsection.Items {
			if item, ok := content.(*tree.Item); ok {
				if err := c.addServerApi(component, item); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (c *Context) addComponentRequires(component *model.Component, s *tree.ComplexSection) *tree.Error {
	for _, sub := range s.Items {
		switch subsection := sub.(type) {
		case *tree.TokenListSection:
			if err := c.addRequiredList(component, subsection); err != nil {
				return err
			}

		case *tree.ComplexSection:
			for _, content := range subsection.Items {
				item, ok := content.(*tree.Item)
				if !ok {
					continue
				}

				if err := c.addRequiredItem(component, item); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addRequiredList handles the "lib" and "component" subsections, whose
// items are bare paths.
func (c *Context) addRequiredList(component *model.Component, s *tree.TokenListSection) *tree.Error {
	for _, tok := range s.Contents {
		switch s.Name() {
		case "lib":
			lib, err := substitute(tok)
			if err != nil {
				return err
			}

			component.RequiredLibs = append(component.RequiredLibs, lib)

		case "component":
			sub, err := c.GetComponent(tok, []string{component.Dir})
			if err != nil {
				return err
			}

			if sub != nil {
				component.SubComponents = append(component.SubComponents, sub)
			}
		}
	}

	return nil
}

func (c *Context) addRequiredItem(component *model.Component, item *tree.Item) *tree.Error {
	switch item.Tag {
	case tree.RequiredAPIItem:
		return c.addClientApi(component, item)

	case tree.RequiredFileItem:
		obj, err := GetRequiredFileOrDir(item)
		if err != nil {
			return err
		}

		component.RequiredFiles = append(component.RequiredFiles, obj)

	case tree.RequiredDirItem:
		obj, err := GetRequiredFileOrDir(item)
		if err != nil {
			return err
		}

		component.RequiredDirs = append(component.RequiredDirs, obj)

	case tree.RequiredDeviceItem:
		obj, err := GetRequiredDevice(item)
		if err != nil {
			return err
		}

		component.RequiredDevices = append(component.RequiredDevices, obj)
	}

	return nil
}

// apiItemParts splits an api item's contents into its optional alias, its
// file path token, and its trailing IPC option tokens.
func apiItemParts(item *tree.Item) (alias string, pathTok *tree.Token, options []*tree.Token) {
	contents := item.Contents

	if contents[0].Kind == tree.Name || contents[0].Kind == tree.DottedName {
		alias = contents[0].Text
		contents = contents[1:]
	}

	return alias, contents[0], contents[1:]
}

// findApiFile resolves an api item's file path against the interface
// search path and registers the .api file.
func (c *Context) findApiFile(pathTok *tree.Token) (*model.ApiFile, *tree.Error) {
	name, err := substitute(pathTok)
	if err != nil {
		return nil, err
	}

	path := fsys.FindFile(c.Params.FS, name, c.Params.InterfaceDirs)
	if path == "" {
		return nil, tree.ErrorAt(tree.SemanticError, pathTok,
			"Couldn't find file '%s'.", name)
	}

	return c.GetApiFile(path, c.Params.InterfaceDirs, pathTok)
}

func (c *Context) addClientApi(component *model.Component, item *tree.Item) *tree.Error {
	alias, pathTok, options := apiItemParts(item)

	apiFile, err := c.findApiFile(pathTok)
	if err != nil {
		return err
	}

	internalName := alias
	if internalName == "" {
		internalName = apiFile.DefaultPrefix
	}

	iface := model.ApiInterface{
		ApiFile:      apiFile,
		Component:    component,
		InternalName: internalName,
	}

	var typesOnly, manualStart, optional bool

	for _, opt := range options {
		switch opt.Text {
		case "[types-only]":
			typesOnly = true
		case "[manual-start]":
			manualStart = true
		case "[optional]":
			optional = true
		}
	}

	if typesOnly {
		if manualStart {
			return tree.ErrorAt(tree.SemanticError, item.FirstToken(),
				"Can't use [types-only] with [manual-start].")
		}

		component.TypesOnlyApis = append(component.TypesOnlyApis,
			&model.ApiTypesOnlyInterface{ApiInterface: iface})
	} else {
		component.ClientApis = append(component.ClientApis,
			&model.ApiClientInterface{
				ApiInterface: iface,
				ManualStart:  manualStart,
				Optional:     optional,
			})
	}

	component.ClientUsetypesApis = append(component.ClientUsetypesApis, apiFile.Includes...)

	return nil
}

func (c *Context) addServerApi(component *model.Component, item *tree.Item) *tree.Error {
	alias, pathTok, options := apiItemParts(item)

	apiFile, err := c.findApiFile(pathTok)
	if err != nil {
		return err
	}

	internalName := alias
	if internalName == "" {
		internalName = apiFile.DefaultPrefix
	}

	iface := &model.ApiServerInterface{
		ApiInterface: model.ApiInterface{
			ApiFile:      apiFile,
			Component:    component,
			InternalName: internalName,
		},
	}

	for _, opt := range options {
		switch opt.Text {
		case "[async]":
			iface.Async = true
		case "[manual-start]":
			iface.ManualStart = true
		case "[direct]":
			iface.Direct = true
		}
	}

	component.ServerApis = append(component.ServerApis, iface)
	component.ServerUsetypesApis = append(component.ServerUsetypesApis, apiFile.Includes...)

	return nil
}
