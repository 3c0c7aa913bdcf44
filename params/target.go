package params

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/mkdef/pkg"
)

// targetsFile is the base name of the target configuration file.
const targetsFile = "targets.yaml"

// Toolchain holds the file system paths of the build tools for one target.
type Toolchain struct {
	CCompiler   string `yaml:"cc"`
	CxxCompiler string `yaml:"cxx"`
	Sysroot     string `yaml:"sysroot,omitempty"`
	Linker      string `yaml:"ld"`
	Archiver    string `yaml:"ar"`
	Assembler   string `yaml:"as,omitempty"`
	Strip       string `yaml:"strip,omitempty"`
	Objcopy     string `yaml:"objcopy,omitempty"`
	Readelf     string `yaml:"readelf,omitempty"`
}

// defaultToolchain is the toolchain used for the localhost target when no
// target configuration overrides it.
func defaultToolchain() Toolchain {
	return Toolchain{
		CCompiler:   "gcc",
		CxxCompiler: "g++",
		Linker:      "ld",
		Archiver:    "ar",
		Assembler:   "as",
		Strip:       "strip",
		Objcopy:     "objcopy",
		Readelf:     "readelf",
	}
}

// Targets maps target names to their toolchains, as declared in a
// targets.yaml file.
type Targets map[string]Toolchain

// LoadTargets reads a target configuration file.
func LoadTargets(path string) (Targets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read target configuration: %w", err)
	}

	var targets Targets
	if err := yaml.Unmarshal(data, &targets); err != nil {
		return nil, fmt.Errorf("failed to parse target configuration %q: %w", path, err)
	}

	return targets, nil
}

// ResolveToolchain selects the toolchain for p.Target. Explicit paths take
// precedence: the given file, then targets.yaml in the user configuration
// directory. The localhost target falls back to the host toolchain when no
// configuration names it.
func (p *Params) ResolveToolchain(path string) error {
	if path == "" {
		path = filepath.Join(pkg.ConfigDir(), targetsFile)

		if _, err := os.Stat(path); err != nil {
			if p.Target == "localhost" {
				p.Toolchain = defaultToolchain()

				return nil
			}

			return fmt.Errorf("no target configuration found for target %q", p.Target)
		}
	}

	targets, err := LoadTargets(path)
	if err != nil {
		return err
	}

	chain, ok := targets[p.Target]
	if !ok {
		if p.Target == "localhost" {
			p.Toolchain = defaultToolchain()

			return nil
		}

		return fmt.Errorf("target %q not present in %q", p.Target, path)
	}

	p.Toolchain = chain

	return nil
}
