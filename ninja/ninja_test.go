package ninja

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/params"
	"github.com/ardnew/mkdef/tree"
)

func TestPermissionsToModeFlags(t *testing.T) {
	perms := func(spec string) model.Permissions {
		var p model.Permissions

		for _, c := range spec {
			switch c {
			case 'r':
				p.SetReadable()
			case 'w':
				p.SetWriteable()
			case 'x':
				p.SetExecutable()
			}
		}

		return p
	}

	tests := []struct {
		spec     string
		expected string
	}{
		{"", "u+rw-x,g+r-x,o-x-r-w"},
		{"r", "u+rw-x,g+r-x,o-x+r-w"},
		{"w", "u+rw-x,g+r-x,o-x-r+w"},
		{"rx", "u+rw+x,g+r+x,o+x+r-w"},
		{"rw", "u+rw-x,g+r-x,o-x+r+w"},
		{"rwx", "u+rw+x,g+r+x,o+x+r+w"},
	}

	for _, tt := range tests {
		t.Run("["+tt.spec+"]", func(t *testing.T) {
			assert.Equal(t, tt.expected, permissionsToModeFlags(perms(tt.spec)))
		})
	}
}

func TestStagingDest(t *testing.T) {
	app := model.NewApp(tree.NewDefFile("myApp.adef"))

	readOnly := &model.FileSystemObject{Dest: "/cfg/a.txt"}
	readOnly.Permissions.SetReadable()

	assert.Equal(t, "$builddir/app/myApp/staging/read-only/cfg/a.txt",
		stagingDest(app, readOnly))

	writeable := &model.FileSystemObject{Dest: "/cfg/a.txt"}
	writeable.Permissions.SetWriteable()

	assert.Equal(t, "$builddir/app/myApp/staging/writeable/cfg/a.txt",
		stagingDest(app, writeable))
}

func bundleObject(src, dest, permSpec string) *model.FileSystemObject {
	obj := &model.FileSystemObject{
		Src:  src,
		Dest: dest,
		Item: tree.NewItem(tree.BundledFileItem,
			&tree.Token{Kind: tree.FilePath, Text: src, Line: 1}),
	}

	for _, c := range permSpec {
		switch c {
		case 'r':
			obj.Permissions.SetReadable()
		case 'w':
			obj.Permissions.SetWriteable()
		case 'x':
			obj.Permissions.SetExecutable()
		}
	}

	return obj
}

func TestFileBundleStatement(t *testing.T) {
	g := NewGenerator(params.New(), nil)
	bundled := &model.FileSystemObjectSet{}

	require.Nil(t, g.fileBundleStatement(bundleObject("host/a", "/bin/a", "r"), bundled))
	assert.Contains(t, g.String(), "build /bin/a : BundleFile host/a\n")
	assert.Contains(t, g.String(), "  modeFlags = u+rw-x,g+r-x,o-x+r-w\n")

	// The same source with the same permissions is a silent no-op.
	before := g.String()
	require.Nil(t, g.fileBundleStatement(bundleObject("host/a", "/bin/a", "r"), bundled))
	assert.Equal(t, before, g.String())

	// A different source for the same destination conflicts.
	err := g.fileBundleStatement(bundleObject("host/other", "/bin/a", "r"), bundled)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(),
		"Cannot bundle file 'host/other' with destination '/bin/a' since it"+
			" conflicts with existing bundled file 'host/a'.")

	// The same source with different permissions conflicts.
	err = g.fileBundleStatement(bundleObject("host/a", "/bin/a", "rw"), bundled)
	require.NotNil(t, err)
	assert.Contains(t, err.Error(),
		"Cannot bundle file 'host/a'.  It is already bundled with different permissions.")
}

func TestDirBundleStatements(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vacant"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "top.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "nested.txt"), []byte("y"), 0o644))

	g := NewGenerator(params.New(), nil)
	bundled := &model.FileSystemObjectSet{}

	require.Nil(t, g.dirBundleStatements(bundleObject(root, "/data", "r"), bundled))

	script := g.String()
	assert.Contains(t, script, "build /data/top.txt : BundleFile "+
		filepath.Join(root, "top.txt")+"\n")
	assert.Contains(t, script, "build /data/sub/nested.txt : BundleFile "+
		filepath.Join(root, "sub", "nested.txt")+"\n")
	assert.Equal(t, 2, bundled.Len())

	// Empty subdirectories found while walking produce nothing.
	assert.NotContains(t, script, "MakeDir")
}

func TestDirBundleStatementsEmptyDir(t *testing.T) {
	g := NewGenerator(params.New(), nil)

	require.Nil(t, g.dirBundleStatements(
		bundleObject(t.TempDir(), "/empty", "r"), &model.FileSystemObjectSet{}))
	assert.Contains(t, g.String(), "build /empty : MakeDir\n")
}

// memFS serves a fixed directory tree so bundling walks never touch the
// host file system.
type memFS struct {
	dirs  map[string][]string
	files map[string]bool
}

func (m memFS) FileExists(path string) bool { return m.files[path] }

func (m memFS) DirExists(path string) bool {
	_, ok := m.dirs[path]

	return ok
}

func (m memFS) ListDir(path string) ([]string, error) {
	entries, ok := m.dirs[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	return entries, nil
}

func TestDirBundleStatementsSubstitutedFS(t *testing.T) {
	p := params.New()
	p.FS = memFS{
		dirs: map[string][]string{
			"virt":     {"a.txt", "sub"},
			"virt/sub": {"b.txt"},
		},
		files: map[string]bool{
			"virt/a.txt":     true,
			"virt/sub/b.txt": true,
		},
	}

	g := NewGenerator(p, nil)
	bundled := &model.FileSystemObjectSet{}

	require.Nil(t, g.dirBundleStatements(bundleObject("virt", "/data", "r"), bundled))

	script := g.String()
	assert.Contains(t, script, "build /data/a.txt : BundleFile virt/a.txt\n")
	assert.Contains(t, script, "build /data/sub/b.txt : BundleFile virt/sub/b.txt\n")
	assert.Equal(t, 2, bundled.Len())

	err := g.dirBundleStatements(bundleObject("ghost", "/data", "r"),
		&model.FileSystemObjectSet{})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Not a directory: 'ghost'.")
}

func TestDirBundleStatementsNotADir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	g := NewGenerator(params.New(), nil)

	err := g.dirBundleStatements(bundleObject(path, "/data", "r"),
		&model.FileSystemObjectSet{})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Not a directory: '"+path+"'.")
}

// makeTestApp assembles a small modelled application by hand: one
// component with a C source, one executable using it, and one bundled
// file.
func makeTestApp(t *testing.T, root string) *model.App {
	t.Helper()

	app := model.NewApp(tree.NewDefFile(filepath.Join(root, "myApp.adef")))
	app.Version = "1.2.3"

	c := model.NewComponent(
		tree.NewDefFile(filepath.Join(root, "comp", "Component.cdef")),
		"comp", filepath.Join(root, "comp"))
	c.CSources = []string{filepath.Join(root, "comp", "main.c")}
	c.CFlags = []string{"-DFOO"}
	c.RequiredLibs = []string{"pthread"}
	c.Lib = c.WorkingDir + "/libComponent_comp.so"

	app.Components = []*model.Component{c}

	exe := model.NewExecutable(app, "main")
	exe.AddComponentInstance(c)
	app.Executables["main"] = exe

	bundled := bundleObject(filepath.Join(root, "data.txt"), "/cfg/data.txt", "r")
	app.BundledFiles = []*model.FileSystemObject{bundled}

	return app
}

func generatorParams(root string) *params.Params {
	p := params.New()
	p.WorkingDir = filepath.Join(root, "_build")
	p.OutputDir = root
	p.Target = "wp76xx"
	p.CFlags = "-O2"
	p.Args = []string{"mkdef", "myApp.adef", "-t", "wp76xx"}
	p.Toolchain.CCompiler = "arm-gcc"
	p.Toolchain.CxxCompiler = "arm-g++"

	return p
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	app := makeTestApp(t, root)
	p := generatorParams(root)

	require.Nil(t, Generate(app, nil, p))

	data, err := os.ReadFile(filepath.Join(p.WorkingDir, "build.ninja"))
	require.NoError(t, err)

	script := string(data)

	assert.True(t, strings.HasPrefix(script,
		"# Build script for application 'myApp'\n"))
	assert.Contains(t, script, "# == Auto-generated file.  Do not edit. ==\n")

	// File-level variables.
	assert.Contains(t, script, "builddir ="+p.WorkingDir+"\n")
	assert.Contains(t, script, "cc = arm-gcc\n")
	assert.Contains(t, script, "cxx = arm-g++\n")
	assert.Contains(t, script, "cFlags = -O2 -I "+p.WorkingDir+"\n")
	assert.Contains(t, script, "target = wp76xx\n")

	// Rules.
	for _, rule := range []string{
		"rule CompileC\n", "rule CompileCxx\n", "rule Link\n", "rule CopyFile\n",
		"rule BundleFile\n", "rule MakeDir\n", "rule MakeAppInfoProperties\n",
		"rule PackApp\n", "rule BinPackApp\n", "rule RegenNinjaScript\n",
	} {
		assert.Contains(t, script, rule)
	}

	// Component compile and link statements, with the component's own
	// flags layered over the file-level ones.
	obj := "$builddir/component/comp/obj/main.c.o"
	assert.Contains(t, script,
		"build "+obj+" : CompileC "+filepath.Join(root, "comp", "main.c")+"\n")
	assert.Contains(t, script, "  cFlags = $cFlags -DFOO\n")
	assert.Contains(t, script,
		"build $builddir/component/comp/libComponent_comp.so : Link "+obj+"\n")
	assert.Contains(t, script, "  linkFlags = -shared -fPIC\n")
	assert.Contains(t, script, "  ldFlags = $ldFlags -lpthread\n")

	// Executable main generation, compile, and link.
	assert.Contains(t, script,
		"build $builddir/app/myApp/obj/main/_main.c.o : CompileC"+
			" $builddir/app/myApp/src/main/_main.c\n")
	assert.Contains(t, script,
		"build $builddir/app/myApp/bin/main : Link"+
			" $builddir/app/myApp/obj/main/_main.c.o"+
			" $builddir/component/comp/libComponent_comp.so\n")

	// Staged bundles: the app's file, the component library, and the
	// executable.
	assert.Contains(t, script,
		"build $builddir/app/myApp/staging/read-only/cfg/data.txt : BundleFile "+
			filepath.Join(root, "data.txt")+"\n")
	assert.Contains(t, script,
		"build $builddir/app/myApp/staging/read-only/lib/libComponent_comp.so :"+
			" BundleFile $builddir/component/comp/libComponent_comp.so\n")
	assert.Contains(t, script,
		"build $builddir/app/myApp/staging/read-only/bin/main : BundleFile"+
			" $builddir/app/myApp/bin/main\n")

	// info.properties depends on everything staged.
	assert.Contains(t, script,
		"build $builddir/app/myApp/staging/info.properties : MakeAppInfoProperties |")
	assert.Contains(t, script, "  version = 1.2.3\n")

	// Update pack.
	assert.Contains(t, script, "build "+filepath.Join(root, "myApp")+
		".$target.update: PackApp $builddir/app/myApp/staging/info.properties\n")
	assert.Contains(t, script, "  adefPath = "+app.DefFile.Path+"\n")

	// Regeneration statement.
	assert.Contains(t, script, "  generator = 1\n")
	assert.Contains(t, script, "  command = mkdef myApp.adef -t wp76xx\n")
	assert.Contains(t, script, "build "+filepath.Join(p.WorkingDir, "build.ninja")+
		": RegenNinjaScript | "+app.Components[0].DefFile.Path+" "+app.DefFile.Path+"\n")

	// The generated executable main calls the component's init function.
	main, err := os.ReadFile(filepath.Join(p.WorkingDir, "app/myApp/src/main/_main.c"))
	require.NoError(t, err)
	assert.Contains(t, string(main), "extern void comp_ComponentInit(void);")
	assert.Contains(t, string(main), "comp_ComponentInit();")
}

func TestGenerateCodeGenOnly(t *testing.T) {
	root := t.TempDir()
	app := makeTestApp(t, root)
	p := generatorParams(root)
	p.CodeGenOnly = true

	require.Nil(t, Generate(app, nil, p))

	data, err := os.ReadFile(filepath.Join(p.WorkingDir, "build.ninja"))
	require.NoError(t, err)

	script := string(data)

	// Only rules and the regeneration statement are emitted.
	assert.Contains(t, script, "rule CompileC\n")
	assert.Contains(t, script, "rule RegenNinjaScript\n")
	assert.NotContains(t, script, " : CompileC ")
	assert.NotContains(t, script, "PackApp $builddir")
}

func TestGenerateBinPack(t *testing.T) {
	root := t.TempDir()
	app := makeTestApp(t, root)
	p := generatorParams(root)
	p.BinPack = true

	apiFiles := map[string]*model.ApiFile{
		"/itf/le_cfg.api": model.NewApiFile("/itf/le_cfg.api"),
		"/itf/greet.api":  model.NewApiFile("/itf/greet.api"),
	}

	require.Nil(t, Generate(app, apiFiles, p))

	data, err := os.ReadFile(filepath.Join(p.WorkingDir, "build.ninja"))
	require.NoError(t, err)

	script := string(data)

	// Interface files are copied in alongside the staged tree, in sorted
	// order, as order-only dependencies of the pack.
	assert.Contains(t, script,
		"build $builddir/myApp/interfaces/greet.api: CopyFile /itf/greet.api\n")
	assert.Contains(t, script,
		"build $builddir/myApp/interfaces/le_cfg.api: CopyFile /itf/le_cfg.api\n")
	assert.Contains(t, script, "build "+filepath.Join(root, "myApp")+
		".$target.app: BinPackApp $builddir/app/myApp/staging/info.properties"+
		" || $builddir/myApp/interfaces/greet.api"+
		" $builddir/myApp/interfaces/le_cfg.api\n")
	assert.Contains(t, script, "  stagingDir = $builddir/app/myApp/staging\n")
}
