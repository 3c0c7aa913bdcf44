package ninja

import (
	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// permissionsToModeFlags renders a permission set as the chmod mode flags
// applied when a file lands in the staging area.
func permissionsToModeFlags(p model.Permissions) string {
	executableFlag := "-x"
	if p.IsExecutable() {
		executableFlag = "+x"
	}

	flags := "u+rw" + executableFlag +
		",g+r" + executableFlag +
		",o" + executableFlag

	if p.IsReadable() {
		flags += "+r"
	} else {
		flags += "-r"
	}

	if p.IsWriteable() {
		flags += "+w"
	} else {
		flags += "-w"
	}

	return flags
}

// stagingDest maps a bundled object's target path to its location in the
// app's staging area. Writeable objects stage separately so the installer
// can move them out of the read-only image.
func stagingDest(app *model.App, obj *model.FileSystemObject) string {
	dest := "$builddir/" + app.WorkingDir + "/staging"

	if obj.Permissions.IsWriteable() {
		dest += "/writeable"
	} else {
		dest += "/read-only"
	}

	return dest + obj.Dest
}

// fileBundleStatement emits the statement bundling a single file into the
// staging area, recording its destination in the bundled set. Re-bundling
// the same destination from the same source with the same permissions is a
// no-op; anything else conflicts.
func (g *Generator) fileBundleStatement(obj *model.FileSystemObject, bundled *model.FileSystemObjectSet) *tree.Error {
	existing, added := bundled.Add(obj)
	if !added {
		if existing.Src != obj.Src {
			return tree.ErrorAt(tree.SemanticError, obj.Item.FirstToken(),
				"error: Cannot bundle file '%s' with destination '%s' since it"+
					" conflicts with existing bundled file '%s'.",
				obj.Src, obj.Dest, existing.Src)
		}

		if existing.Permissions != obj.Permissions {
			return tree.ErrorAt(tree.SemanticError, obj.Item.FirstToken(),
				"error: Cannot bundle file '%s'.  It is already bundled with"+
					" different permissions.", obj.Src)
		}

		return nil
	}

	g.printf("build %s : BundleFile %s\n", obj.Dest, obj.Src)
	g.printf("  modeFlags = %s\n", permissionsToModeFlags(obj.Permissions))

	return nil
}

// dirBundleStatements emits the statements bundling a directory's contents
// into the staging area, recursing into subdirectories. Only a directory
// named by a bundles entry materializes when empty; empty subdirectories
// found while walking produce no statement of their own.
func (g *Generator) dirBundleStatements(obj *model.FileSystemObject, bundled *model.FileSystemObjectSet) *tree.Error {
	return g.bundleDir(obj, bundled, true)
}

func (g *Generator) bundleDir(obj *model.FileSystemObject, bundled *model.FileSystemObjectSet, explicit bool) *tree.Error {
	entries, err := g.Params.FS.ListDir(obj.Src)
	if err != nil {
		if !g.Params.FS.DirExists(obj.Src) {
			return tree.ErrorAt(tree.SemanticError, obj.Item.FirstToken(),
				"Not a directory: '%s'.", obj.Src)
		}

		return tree.ErrorAt(tree.SemanticError, obj.Item.FirstToken(),
			"Can't access file or directory '%s'", obj.Src).Wrap(err)
	}

	if len(entries) == 0 {
		if explicit {
			g.printf("build %s : MakeDir\n", obj.Dest)
		}

		return nil
	}

	for _, entry := range entries {
		entryObj := &model.FileSystemObject{
			Src:         pkg.Combine(obj.Src, entry),
			Dest:        pkg.Combine(obj.Dest, entry),
			Permissions: obj.Permissions,
			Item:        obj.Item,
		}

		switch {
		case g.Params.FS.DirExists(entryObj.Src):
			if err := g.bundleDir(entryObj, bundled, false); err != nil {
				return err
			}

		case g.Params.FS.FileExists(entryObj.Src):
			if err := g.fileBundleStatement(entryObj, bundled); err != nil {
				return err
			}

		default:
			return tree.ErrorAt(tree.SemanticError, obj.Item.FirstToken(),
				"File system object is not a directory or a file: '%s'.",
				entryObj.Src)
		}
	}

	return nil
}

// stagingBundleStatements emits the bundle statements for everything that
// lands in the app's staging area: the app's own bundled items first (so
// they override component items), then each component's bundled items and
// library, then the executables.
func (g *Generator) stagingBundleStatements(app *model.App, bundled *model.FileSystemObjectSet) *tree.Error {
	for _, obj := range app.BundledFiles {
		if err := g.fileBundleStatement(staged(app, obj), bundled); err != nil {
			return err
		}
	}

	for _, obj := range app.BundledDirs {
		if err := g.dirBundleStatements(staged(app, obj), bundled); err != nil {
			return err
		}
	}

	for _, component := range app.Components {
		for _, obj := range component.BundledFiles {
			if err := g.fileBundleStatement(staged(app, obj), bundled); err != nil {
				return err
			}
		}

		for _, obj := range component.BundledDirs {
			if err := g.dirBundleStatements(staged(app, obj), bundled); err != nil {
				return err
			}
		}

		if component.HasCOrCxxCode() {
			lib := "$builddir/" + component.Lib
			dest := "$builddir/" + app.WorkingDir + "/staging/read-only/lib/" +
				pkg.GetLastNode(component.Lib)

			perms := model.Permissions{}
			perms.SetReadable()
			perms.SetExecutable()

			g.printf("build %s : BundleFile %s\n", dest, lib)
			g.printf("  modeFlags = %s\n\n", permissionsToModeFlags(perms))

			bundled.Add(&model.FileSystemObject{
				Src:         lib,
				Dest:        dest,
				Permissions: perms,
			})
		}
	}

	for _, name := range sortedKeys(app.Executables) {
		exe := app.Executables[name]

		perms := model.Permissions{}
		perms.SetReadable()
		perms.SetExecutable()

		dest := "$builddir/" + app.WorkingDir + "/staging/read-only/bin/" +
			exe.Name

		g.printf("build %s : BundleFile %s\n", dest, g.exeOutputPath(app, exe))
		g.printf("  modeFlags = %s\n\n", permissionsToModeFlags(perms))
	}

	return nil
}

// staged returns a copy of obj with its destination mapped into the app's
// staging area.
func staged(app *model.App, obj *model.FileSystemObject) *model.FileSystemObject {
	return &model.FileSystemObject{
		Src:         obj.Src,
		Dest:        stagingDest(app, obj),
		Permissions: obj.Permissions,
		Item:        obj.Item,
	}
}
