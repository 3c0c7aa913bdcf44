package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/mkdef/tree"
)

func writeDefFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}

	return path
}

func parseSection(t *testing.T, parse SectionParser, input string) tree.Content {
	t.Helper()

	l := newTestLexer(input)

	section, err := parse(l)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", input, err)
	}

	return section
}

func itemTexts(item *tree.Item) []string {
	texts := make([]string, len(item.Contents))
	for i, tok := range item.Contents {
		texts[i] = tok.Text
	}

	return texts
}

func TestParseApp(t *testing.T) {
	path := writeDefFile(t, "test.adef", `
// A test application.
sandboxed: true
version: 1.0.0
start: auto

executables:
{
	myExe = ( myComponent helper/util )
}

processes:
{
	run:
	{
		( myExe )
		named = ( myExe --flag )
	}

	faultAction: restart
	priority: medium
	maxFileBytes: 100K
}

bindings:
{
	myExe.myComponent.le_cfg -> <root>.le_cfg
}

bundles:
{
	file:
	{
		[rx] scripts/run.sh /bin/run.sh
	}
}
`)

	file, err := ParseApp(path)
	if err != nil {
		t.Fatalf("ParseApp failed: %v", err)
	}

	names := make([]string, 0, len(file.Sections))

	for _, section := range file.Sections {
		named, ok := section.(interface{ Name() string })
		if !ok {
			t.Fatalf("section %T has no name", section)
		}

		names = append(names, named.Name())
	}

	expected := "sandboxed,version,start,executables,processes,bindings,bundles"
	if got := strings.Join(names, ","); got != expected {
		t.Errorf("sections = %q, want %q", got, expected)
	}
}

func TestParseAppUnknownSection(t *testing.T) {
	path := writeDefFile(t, "bad.adef", "sandboxd: true\n")

	_, err := ParseApp(path)
	if err == nil {
		t.Fatal("ParseApp succeeded with an unknown section")
	}

	msg := err.Error()

	if !strings.Contains(msg, "Unrecognized section name 'sandboxd'.") {
		t.Errorf("unexpected error: %v", err)
	}

	// A close valid name should be suggested.
	if !strings.Contains(msg, "Did you mean 'sandboxed'?") {
		t.Errorf("expected a suggestion in: %v", err)
	}
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contents []string
	}{
		{
			"internal to internal",
			"bindings: { cli.comp.le_cfg -> srv.other.le_cfg }",
			[]string{"cli", "comp", "le_cfg", "srv", "other", "le_cfg"},
		},
		{
			"internal to app",
			"bindings: { cli.comp.le_cfg -> configTree.le_cfg }",
			[]string{"cli", "comp", "le_cfg", "configTree", "le_cfg"},
		},
		{
			"internal to user",
			"bindings: { cli.comp.le_cfg -> <root>.le_cfg }",
			[]string{"cli", "comp", "le_cfg", "<root>", "le_cfg"},
		},
		{
			"prebuilt client to user",
			"bindings: { *.le_data -> <root>.le_data }",
			[]string{"*", "le_data", "<root>", "le_data"},
		},
		{
			"internal to prebuilt server",
			"bindings: { cli.comp.le_data -> *.le_data }",
			[]string{"cli", "comp", "le_data", "*", "le_data"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := parseSection(t, parseAdefSection, tt.input)

			complex, ok := section.(*tree.ComplexSection)
			if !ok {
				t.Fatalf("section type %T, want ComplexSection", section)
			}

			if len(complex.Items) != 1 {
				t.Fatalf("parsed %d bindings, want 1", len(complex.Items))
			}

			item, ok := complex.Items[0].(*tree.Item)
			if !ok {
				t.Fatalf("item type %T, want Item", complex.Items[0])
			}

			if item.Tag != tree.BindingItem {
				t.Errorf("tag = %v, want BindingItem", item.Tag)
			}

			got := strings.Join(itemTexts(item), ",")
			want := strings.Join(tt.contents, ",")

			if got != want {
				t.Errorf("contents = %q, want %q", got, want)
			}
		})
	}
}

func TestParseExecutables(t *testing.T) {
	section := parseSection(t, parseAdefSection,
		"executables: { app = ( comp1 sub/comp2 ) empty = ( ) }")

	complex := section.(*tree.ComplexSection)
	if len(complex.Items) != 2 {
		t.Fatalf("parsed %d executables, want 2", len(complex.Items))
	}

	app := complex.Items[0].(*tree.Item)
	if app.Name() != "app" {
		t.Errorf("first executable name = %q, want %q", app.Name(), "app")
	}

	if got := strings.Join(itemTexts(app), ","); got != "comp1,sub/comp2" {
		t.Errorf("components = %q, want %q", got, "comp1,sub/comp2")
	}

	empty := complex.Items[1].(*tree.Item)
	if len(empty.Contents) != 0 {
		t.Errorf("empty executable has %d components", len(empty.Contents))
	}
}

func TestParseTokenListSection(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contents []string
	}{
		{"ordered", "groups: { audio wheel video }", []string{"audio", "wheel", "video"}},
		{"empty", "groups: { }", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := parseSection(t, parseAdefSection, tt.input)

			list, ok := section.(*tree.TokenListSection)
			if !ok {
				t.Fatalf("section type %T, want TokenListSection", section)
			}

			var got []string
			for _, token := range list.Contents {
				got = append(got, token.Text)
			}

			if strings.Join(got, ",") != strings.Join(tt.contents, ",") {
				t.Errorf("contents = %q, want %q", got, tt.contents)
			}
		})
	}
}

func TestParseBundledFile(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contents []string
	}{
		{
			"with permissions",
			"bundles: { file: { [rwx] host/path /target/path } }",
			[]string{"[rwx]", "host/path", "/target/path"},
		},
		{
			"without permissions",
			"bundles: { file: { host/path /target/path } }",
			[]string{"host/path", "/target/path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			section := parseSection(t, parseAdefSection, tt.input)

			bundles := section.(*tree.ComplexSection)
			sub := bundles.Items[0].(*tree.ComplexSection)

			if sub.Name() != "file" {
				t.Fatalf("subsection = %q, want %q", sub.Name(), "file")
			}

			item := sub.Items[0].(*tree.Item)
			if item.Tag != tree.BundledFileItem {
				t.Errorf("tag = %v, want BundledFileItem", item.Tag)
			}

			got := strings.Join(itemTexts(item), ",")
			want := strings.Join(tt.contents, ",")

			if got != want {
				t.Errorf("contents = %q, want %q", got, want)
			}
		})
	}
}

func TestParseRunProcess(t *testing.T) {
	section := parseSection(t, parseAdefSection,
		"processes: { run: { ( exe1 arg1 k=v ) proc = ( exe2 ) } }")

	processes := section.(*tree.ComplexSection)
	run := processes.Items[0].(*tree.ComplexSection)

	anonymous := run.Items[0].(*tree.Item)
	if got := strings.Join(itemTexts(anonymous), ","); got != "exe1,arg1,k=v" {
		t.Errorf("anonymous process contents = %q", got)
	}

	named := run.Items[1].(*tree.Item)
	if got := strings.Join(itemTexts(named), ","); got != "proc,exe2" {
		t.Errorf("named process contents = %q", got)
	}
}

func TestParseWatchdogTimeout(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		text    string
		message string
	}{
		{"integer", "watchdogTimeout: 30000", "30000", ""},
		{"never", "watchdogTimeout: never", "never", ""},
		{"bad word", "watchdogTimeout: sometimes", "",
			"Invalid watchdog timeout value 'sometimes'."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLexer(tt.input)

			section, err := parseAdefSection(l)
			if tt.message != "" {
				if err == nil {
					t.Fatalf("parse of %q succeeded, want error", tt.input)
				}

				if !strings.Contains(err.Error(), tt.message) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.message)
				}

				return
			}

			if err != nil {
				t.Fatalf("parse of %q failed: %v", tt.input, err)
			}

			simple := section.(*tree.SimpleSection)
			if simple.Text() != tt.text {
				t.Errorf("timeout = %q, want %q", simple.Text(), tt.text)
			}
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{"priority: idle", ""},
		{"priority: medium", ""},
		{"priority: rt1", ""},
		{"priority: rt32", ""},
		{"priority: rt33", "out of range"},
		{"priority: rt0", "out of range"},
		{"priority: urgent", "Invalid priority 'urgent'."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l := newTestLexer("processes: { " + tt.input + " }")

			_, err := parseAdefSection(l)
			if tt.message == "" {
				if err != nil {
					t.Fatalf("parse of %q failed: %v", tt.input, err)
				}

				return
			}

			if err == nil {
				t.Fatalf("parse of %q succeeded, want error", tt.input)
			}

			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.message)
			}
		})
	}
}

func TestParseExtern(t *testing.T) {
	section := parseSection(t, parseAdefSection, `extern:
{
	myExe.myComp.le_data
	alias = myExe.myComp.le_cfg
	requires: { itf.api [optional] }
	provides: { srv = other.api [async] }
}`)

	extern := section.(*tree.ComplexSection)
	if len(extern.Items) != 4 {
		t.Fatalf("parsed %d extern items, want 4", len(extern.Items))
	}

	plain := extern.Items[0].(*tree.Item)
	if got := strings.Join(itemTexts(plain), ","); got != "myExe,myComp,le_data" {
		t.Errorf("plain extern contents = %q", got)
	}

	aliased := extern.Items[1].(*tree.Item)
	if got := strings.Join(itemTexts(aliased), ","); got != "alias,myExe,myComp,le_cfg" {
		t.Errorf("aliased extern contents = %q", got)
	}

	required := extern.Items[2].(*tree.ComplexSection)
	reqItem := required.Items[0].(*tree.Item)

	if reqItem.Tag != tree.RequiredAPIItem {
		t.Errorf("tag = %v, want RequiredAPIItem", reqItem.Tag)
	}

	if got := strings.Join(itemTexts(reqItem), ","); got != "itf.api,[optional]" {
		t.Errorf("required prebuilt contents = %q", got)
	}

	provided := extern.Items[3].(*tree.ComplexSection)
	provItem := provided.Items[0].(*tree.Item)

	if got := strings.Join(itemTexts(provItem), ","); got != "srv,other.api,[async]" {
		t.Errorf("provided prebuilt contents = %q", got)
	}
}

func TestParseComponent(t *testing.T) {
	path := writeDefFile(t, "Component.cdef", `
sources:
{
	main.c
	helper.cpp
}

cflags: { -DDEBUG=1 -Wall }

provides:
{
	api: { myItf = interfaces/myItf.api [manual-start] }
}

requires:
{
	api: { le_cfg.api [types-only] }
	lib: { pthread }
	component: { ../shared }
}
`)

	file, err := ParseComponent(path)
	if err != nil {
		t.Fatalf("ParseComponent failed: %v", err)
	}

	if len(file.Sections) != 4 {
		t.Fatalf("parsed %d sections, want 4", len(file.Sections))
	}

	sources := file.Sections[0].(*tree.TokenListSection)
	if len(sources.Contents) != 2 || sources.Contents[1].Text != "helper.cpp" {
		t.Errorf("unexpected sources: %+v", sources.Contents)
	}

	cflags := file.Sections[1].(*tree.TokenListSection)
	if got := cflags.Contents[0].Text; got != "-DDEBUG=1" {
		t.Errorf("first cflag = %q, want %q", got, "-DDEBUG=1")
	}
}

func TestParseComponentUnknownSection(t *testing.T) {
	path := writeDefFile(t, "Component.cdef", "source: { main.c }\n")

	_, err := ParseComponent(path)
	if err == nil {
		t.Fatal("ParseComponent succeeded with an unknown section")
	}

	if !strings.Contains(err.Error(), "Did you mean 'sources'?") {
		t.Errorf("expected a suggestion in: %v", err)
	}
}

func TestParseApiItemAlias(t *testing.T) {
	section := parseSection(t, parseCdefSection,
		"requires: { api: { cfg = le_cfg.api [manual-start] [optional] } }")

	requires := section.(*tree.ComplexSection)
	api := requires.Items[0].(*tree.ComplexSection)
	item := api.Items[0].(*tree.Item)

	if got := strings.Join(itemTexts(item), ","); got != "cfg,le_cfg.api,[manual-start],[optional]" {
		t.Errorf("api item contents = %q", got)
	}

	// The alias token is retyped from file path to name.
	if item.Contents[0].Kind != tree.Name {
		t.Errorf("alias kind = %v, want Name", item.Contents[0].Kind)
	}
}

func TestParseTokenListUnterminated(t *testing.T) {
	l := newTestLexer("sources: { main.c")

	_, err := parseCdefSection(l)
	if err == nil {
		t.Fatal("parse of unterminated section succeeded")
	}

	if !strings.Contains(err.Error(), "Unexpected end-of-file before end of sources section") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetDependencies(t *testing.T) {
	path := writeDefFile(t, "test.api", `
// USETYPES commented.api
USETYPES le_cfg.api
/* USETYPES blockComment.api */
USETYPES other

FUNCTION DoThing();
`)

	var deps []string

	err := GetDependencies(path, func(name string) *tree.Error {
		deps = append(deps, name)

		return nil
	})
	if err != nil {
		t.Fatalf("GetDependencies failed: %v", err)
	}

	if got := strings.Join(deps, ","); got != "le_cfg.api,other" {
		t.Errorf("dependencies = %q, want %q", got, "le_cfg.api,other")
	}
}

func TestGetDependenciesMissingName(t *testing.T) {
	path := writeDefFile(t, "bad.api", "USETYPES\n")

	err := GetDependencies(path, func(string) *tree.Error { return nil })
	if err == nil {
		t.Fatal("GetDependencies succeeded with a dangling USETYPES")
	}

	if !strings.Contains(err.Error(), "Missing interface name after USETYPES.") {
		t.Errorf("unexpected error: %v", err)
	}
}
