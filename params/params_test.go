package params

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFinalizeSearchPaths(t *testing.T) {
	t.Setenv(InterfacePathVar, "/env/itf1:/env/itf2")
	t.Setenv(SourcePathVar, "")

	p := New()
	p.InterfaceDirs = []string{"/cli/itf"}
	p.FinalizeSearchPaths()

	if got := strings.Join(p.InterfaceDirs, ":"); got != "/cli/itf:/env/itf1:/env/itf2" {
		t.Errorf("InterfaceDirs = %q, want %q", got, "/cli/itf:/env/itf1:/env/itf2")
	}

	// The current directory always leads the source search path.
	if len(p.SourceDirs) == 0 || p.SourceDirs[0] != "." {
		t.Errorf("SourceDirs = %v, want leading \".\"", p.SourceDirs)
	}
}

func TestFinalizeSearchPathsDropsEmptyEntries(t *testing.T) {
	t.Setenv(SourcePathVar, "/env/src::")

	p := New()
	p.SourceDirs = []string{"/cli/src"}
	p.FinalizeSearchPaths()

	if got := strings.Join(p.SourceDirs, ":"); got != ".:/cli/src:/env/src" {
		t.Errorf("SourceDirs = %q, want %q", got, ".:/cli/src:/env/src")
	}
}

func TestFinalizeSearchPathsKeepsExplicitDot(t *testing.T) {
	t.Setenv(SourcePathVar, "")

	p := New()
	p.SourceDirs = []string{".", "/cli/src"}
	p.FinalizeSearchPaths()

	if got := strings.Join(p.SourceDirs, ":"); got != ".:/cli/src" {
		t.Errorf("SourceDirs = %q, want %q", got, ".:/cli/src")
	}
}

func writeTargetsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "targets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write targets file: %v", err)
	}

	return path
}

func TestResolveToolchain(t *testing.T) {
	path := writeTargetsFile(t, `
wp76xx:
  cc: /opt/swi/bin/arm-gcc
  cxx: /opt/swi/bin/arm-g++
  sysroot: /opt/swi/sysroots/armv7a
  ld: /opt/swi/bin/arm-ld
  ar: /opt/swi/bin/arm-ar
`)

	p := New()
	p.Target = "wp76xx"

	if err := p.ResolveToolchain(path); err != nil {
		t.Fatalf("ResolveToolchain failed: %v", err)
	}

	if p.Toolchain.CCompiler != "/opt/swi/bin/arm-gcc" {
		t.Errorf("CCompiler = %q", p.Toolchain.CCompiler)
	}

	if p.Toolchain.Sysroot != "/opt/swi/sysroots/armv7a" {
		t.Errorf("Sysroot = %q", p.Toolchain.Sysroot)
	}
}

func TestResolveToolchainLocalhostFallback(t *testing.T) {
	path := writeTargetsFile(t, "wp76xx:\n  cc: arm-gcc\n")

	p := New()

	if err := p.ResolveToolchain(path); err != nil {
		t.Fatalf("ResolveToolchain failed: %v", err)
	}

	// localhost falls back to the host toolchain when the configuration
	// doesn't name it.
	if p.Toolchain.CCompiler != "gcc" || p.Toolchain.CxxCompiler != "g++" {
		t.Errorf("unexpected fallback toolchain: %+v", p.Toolchain)
	}
}

func TestResolveToolchainUnknownTarget(t *testing.T) {
	path := writeTargetsFile(t, "wp76xx:\n  cc: arm-gcc\n")

	p := New()
	p.Target = "ar758x"

	err := p.ResolveToolchain(path)
	if err == nil {
		t.Fatal("ResolveToolchain succeeded for an unlisted target")
	}

	if !strings.Contains(err.Error(), `target "ar758x" not present`) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestResolveToolchainMalformedFile(t *testing.T) {
	path := writeTargetsFile(t, ":\n\t- not yaml")

	p := New()
	p.Target = "wp76xx"

	if err := p.ResolveToolchain(path); err == nil {
		t.Fatal("ResolveToolchain succeeded with a malformed targets file")
	}
}
