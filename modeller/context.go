// Package modeller builds the semantic model of applications and
// components from their parse trees.
package modeller

import (
	"github.com/ardnew/mkdef/fsys"
	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/params"
	"github.com/ardnew/mkdef/parser"
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// Context carries the state shared by one modelling run: the build
// parameters and the registry of .api files seen so far. Interfaces that
// reference the same .api file share one object, so its include graph is
// scanned once.
type Context struct {
	Params *params.Params

	apiFiles   map[string]*model.ApiFile
	components map[string]*model.Component
}

// NewContext creates a modelling context for one build.
func NewContext(p *params.Params) *Context {
	return &Context{
		Params:     p,
		apiFiles:   map[string]*model.ApiFile{},
		components: map[string]*model.Component{},
	}
}

// ApiFiles returns every .api file object registered so far, in no
// particular order.
func (c *Context) ApiFiles() map[string]*model.ApiFile { return c.apiFiles }

// GetApiFile returns the ApiFile object for a .api file path, creating and
// registering it on first sight. Creation scans the file for USETYPES
// declarations and resolves each one the same way, so the whole include
// graph below the file is registered with it. The given token locates any
// resolution errors.
func (c *Context) GetApiFile(apiFile string, searchList []string, tok *tree.Token) (*model.ApiFile, *tree.Error) {
	if f, ok := c.apiFiles[apiFile]; ok {
		return f, nil
	}

	f := model.NewApiFile(apiFile)
	c.apiFiles[apiFile] = f

	handler := func(dependency string) *tree.Error {
		// Suffixes are not required in USETYPES declarations.
		if !pkg.HasSuffix(dependency, ".api") {
			dependency += ".api"
		}

		// Look in the directory of the including file before the search path.
		dir := pkg.GetContainingDir(f.Path)

		includedPath := fsys.FindFile(c.Params.FS, dependency, []string{dir})
		if includedPath == "" {
			includedPath = fsys.FindFile(c.Params.FS, dependency, searchList)
			if includedPath == "" {
				return tree.ErrorAt(tree.SemanticError, tok,
					"Can't find dependent .api file: '%s'.", dependency)
			}
		}

		included, err := c.GetApiFile(includedPath, searchList, tok)
		if err != nil {
			return err
		}

		included.IsIncluded = true
		f.Includes = append(f.Includes, included)

		return nil
	}

	if err := parser.GetDependencies(apiFile, handler); err != nil {
		return nil, err
	}

	return f, nil
}
