package parser

import (
	"github.com/ardnew/mkdef/tree"
)

// adefSectionNames are the section names accepted at the top level of a
// .adef file.
var adefSectionNames = []string{
	"bindings", "bundles", "components", "cpuShare", "executables", "extern",
	"groups", "maxFileSystemBytes", "maxMemoryBytes", "maxMQueueBytes",
	"maxQueuedSignals", "maxSecureStorageBytes", "maxThreads", "processes",
	"requires", "sandboxed", "start", "version", "watchdogAction",
	"watchdogTimeout",
}

// ParseApp parses an application definition (.adef) file and returns its
// parse tree.
func ParseApp(path string) (*tree.DefFile, *tree.Error) {
	l, err := OpenLexer(path)
	if err != nil {
		return nil, err
	}

	if err := ParseFile(l, parseAdefSection); err != nil {
		return nil, err
	}

	return l.File(), nil
}

// parseAdefSection parses one top-level section of a .adef file.
func parseAdefSection(l *Lexer) (tree.Content, *tree.Error) {
	name, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	switch name.Text {
	case "bindings":
		return ParseComplexSection(l, name, parseBinding)

	case "bundles":
		return ParseComplexSection(l, name, ParseBundlesSubsection)

	case "components":
		return ParseTokenListSection(l, name, tree.FilePath)

	case "cpuShare",
		"maxFileSystemBytes", "maxMemoryBytes", "maxMQueueBytes",
		"maxQueuedSignals", "maxSecureStorageBytes", "maxThreads":
		return ParseSimpleSection(l, name, tree.Integer)

	case "executables":
		return ParseComplexSection(l, name, parseExecutable)

	case "extern":
		return ParseComplexSection(l, name, parseExternItem)

	case "groups":
		return ParseTokenListSection(l, name, tree.GroupName)

	case "processes":
		return ParseComplexSection(l, name, parseProcessesSubsection)

	case "requires":
		return ParseComplexSection(l, name, parseAdefRequiresSubsection)

	case "sandboxed":
		return ParseSimpleSection(l, name, tree.Boolean)

	case "start":
		return ParseSimpleSection(l, name, tree.Name)

	case "version":
		return ParseSimpleSection(l, name, tree.FilePath)

	case "watchdogAction":
		return ParseWatchdogAction(l, name)

	case "watchdogTimeout":
		return ParseWatchdogTimeout(l, name)

	default:
		return nil, l.errUnknownSection(name.Text, adefSectionNames)
	}
}

// parseBinding parses one binding item inside a "bindings:" section:
// "client -> server". The client side is "exe.component.interface" or
// "*.interface" (pre-built client). The server side is
// "exe.component.interface" (internal), "*.interface" (pre-built server), or
// "agent.interface" where the agent is an app name or a "<user>" name. The
// item's contents hold the client tokens followed by the server tokens; the
// dots and arrow are pulled but not stored.
func parseBinding(l *Lexer) (tree.Content, *tree.Error) {
	var item *tree.Item

	if l.IsMatch(tree.Star) {
		star, err := l.Pull(tree.Star)
		if err != nil {
			return nil, err
		}

		item = tree.NewItem(tree.BindingItem, star)
		item.AddContent(star)

		if _, err := l.Pull(tree.Dot); err != nil {
			return nil, err
		}

		ifName, err := l.Pull(tree.Name)
		if err != nil {
			return nil, err
		}

		item.AddContent(ifName)
	} else {
		exe, err := l.Pull(tree.Name)
		if err != nil {
			return nil, err
		}

		item = tree.NewItem(tree.BindingItem, exe)
		item.AddContent(exe)

		for i := 0; i < 2; i++ {
			if _, err := l.Pull(tree.Dot); err != nil {
				return nil, err
			}

			part, err := l.Pull(tree.Name)
			if err != nil {
				return nil, err
			}

			item.AddContent(part)
		}
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.Arrow); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if err := parseBindingServerSide(l, item); err != nil {
		return nil, err
	}

	item.SetLastToken(item.Contents[len(item.Contents)-1])

	return item, nil
}

// parseBindingServerSide parses the server half of a binding, appending its
// tokens to the item. The leading token is lexed as an IPC agent; a second
// dot reveals the internal "exe.component.interface" form, in which case the
// agent token is retyped as a plain name.
func parseBindingServerSide(l *Lexer, item *tree.Item) *tree.Error {
	if l.IsMatch(tree.Star) {
		star, err := l.Pull(tree.Star)
		if err != nil {
			return err
		}

		item.AddContent(star)

		if _, err := l.Pull(tree.Dot); err != nil {
			return err
		}

		ifName, err := l.Pull(tree.Name)
		if err != nil {
			return err
		}

		item.AddContent(ifName)

		return nil
	}

	agent, err := l.Pull(tree.IPCAgent)
	if err != nil {
		return err
	}

	if _, err := l.Pull(tree.Dot); err != nil {
		return err
	}

	second, err := l.Pull(tree.Name)
	if err != nil {
		return err
	}

	if l.IsMatch(tree.Dot) {
		// Three names: an internal exe.component.interface specification.
		if err := agent.ConvertToName(); err != nil {
			return err
		}

		if _, err := l.Pull(tree.Dot); err != nil {
			return err
		}

		third, pullErr := l.Pull(tree.Name)
		if pullErr != nil {
			return pullErr
		}

		item.AddContent(agent)
		item.AddContent(second)
		item.AddContent(third)

		return nil
	}

	item.AddContent(agent)
	item.AddContent(second)

	return nil
}

// parseExecutable parses one executable item inside an "executables:"
// section: "name = ( componentPath* )".
func parseExecutable(l *Lexer) (tree.Content, *tree.Error) {
	name, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	return ParseTokenListNamedItem(l, name, tree.ExecutableItem, tree.FilePath)
}

// parseExternItem parses one item inside an "extern:" section. An item is
// either a pre-built interface subsection ("requires:" or "provides:") or an
// external interface declaration "[alias =] exe.component.interface".
func parseExternItem(l *Lexer) (tree.Content, *tree.Error) {
	first, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	switch first.Text {
	case "requires":
		return ParseComplexSection(l, first, func(l *Lexer) (tree.Content, *tree.Error) {
			return parsePreBuiltInterface(l, tree.RequiredAPIItem, tree.ClientIPCOption)
		})

	case "provides":
		return ParseComplexSection(l, first, func(l *Lexer) (tree.Content, *tree.Error) {
			return parsePreBuiltInterface(l, tree.ProvidedAPIItem, tree.ServerIPCOption)
		})
	}

	item := tree.NewItem(tree.ExternAPIItem, first)

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	exe := first

	// An '=' makes the first name an alias for the interface.
	if l.IsMatch(tree.Equals) {
		item.AddContent(first)

		if _, err := l.Pull(tree.Equals); err != nil {
			return nil, err
		}

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}

		exe, err = l.Pull(tree.Name)
		if err != nil {
			return nil, err
		}
	}

	item.AddContent(exe)

	for i := 0; i < 2; i++ {
		if _, err := l.Pull(tree.Dot); err != nil {
			return nil, err
		}

		part, err := l.Pull(tree.Name)
		if err != nil {
			return nil, err
		}

		item.AddContent(part)
	}

	item.SetLastToken(item.Contents[len(item.Contents)-1])

	return item, nil
}

// parsePreBuiltInterface parses one item inside an "extern:" section's
// "requires:" or "provides:" subsection: "[interfaceName =] apiFilePath"
// with optional trailing IPC option tokens. The interface name, when
// present, is lexed as a file path and retyped as a dotted name.
func parsePreBuiltInterface(
	l *Lexer,
	tag tree.ItemTag,
	optionKind tree.Kind,
) (tree.Content, *tree.Error) {
	var alias *tree.Token

	apiFilePath, err := l.Pull(tree.FilePath)
	if err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if l.IsMatch(tree.Equals) {
		if _, err := apiFilePath.ConvertToDottedName(); err != nil {
			return nil, err
		}

		alias = apiFilePath

		if _, err := l.Pull(tree.Equals); err != nil {
			return nil, err
		}

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}

		apiFilePath, err = l.Pull(tree.FilePath)
		if err != nil {
			return nil, err
		}

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	first := apiFilePath
	if alias != nil {
		first = alias
	}

	item := tree.NewItem(tag, first)

	if alias != nil {
		item.AddContent(alias)
	}

	item.AddContent(apiFilePath)

	for l.IsMatch(optionKind) {
		option, err := l.Pull(optionKind)
		if err != nil {
			return nil, err
		}

		item.AddContent(option)

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// processesSubsectionNames are the subsection names accepted inside a
// "processes:" section.
var processesSubsectionNames = []string{
	"envVars", "faultAction", "maxCoreDumpFileBytes", "maxFileBytes",
	"maxFileDescriptors", "maxLockedMemoryBytes", "maxStackBytes", "priority",
	"run", "watchdogAction", "watchdogTimeout",
}

// parseProcessesSubsection parses one subsection of a "processes:" section.
func parseProcessesSubsection(l *Lexer) (tree.Content, *tree.Error) {
	name, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	switch name.Text {
	case "run":
		return ParseComplexSection(l, name, parseRunProcess)

	case "envVars":
		return ParseSimpleNamedItemListSection(l, name, tree.EnvVarItem, tree.FilePath)

	case "faultAction":
		return ParseFaultAction(l, name)

	case "priority":
		return ParsePriority(l, name)

	case "maxCoreDumpFileBytes", "maxFileBytes", "maxFileDescriptors",
		"maxLockedMemoryBytes", "maxStackBytes":
		return ParseSimpleSection(l, name, tree.Integer)

	case "watchdogAction":
		return ParseWatchdogAction(l, name)

	case "watchdogTimeout":
		return ParseWatchdogTimeout(l, name)

	default:
		return nil, l.errUnknownSubsection(name.Text, "processes", processesSubsectionNames)
	}
}

// parseRunProcess parses one process item inside a "run:" subsection:
// either "( exePath arg* )" or "procName = ( exePath arg* )". When no
// process name is given, the item opens with the parenthesis and the
// executable path doubles as the process name.
func parseRunProcess(l *Lexer) (tree.Content, *tree.Error) {
	var item *tree.Item

	if l.IsMatch(tree.OpenParen) {
		open, err := l.Pull(tree.OpenParen)
		if err != nil {
			return nil, err
		}

		item = tree.NewItem(tree.RunProcessItem, open)
	} else {
		name, err := l.Pull(tree.Name)
		if err != nil {
			return nil, err
		}

		item = tree.NewItem(tree.RunProcessItem, name)
		item.AddContent(name)

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}

		if _, err := l.Pull(tree.Equals); err != nil {
			return nil, err
		}

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}

		if _, err := l.Pull(tree.OpenParen); err != nil {
			return nil, err
		}
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	exePath, err := l.Pull(tree.FilePath)
	if err != nil {
		return nil, err
	}

	item.AddContent(exePath)

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	for !l.IsMatch(tree.CloseParen) {
		if l.IsMatch(tree.EndOfFile) {
			name := item.FirstToken()

			return nil, l.errSyntax(
				"Unexpected end-of-file before end of process specification"+
					" starting at line %d character %d.", name.Line, name.Column)
		}

		arg, err := l.Pull(tree.Arg)
		if err != nil {
			return nil, err
		}

		item.AddContent(arg)

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	closing, err := l.Pull(tree.CloseParen)
	if err != nil {
		return nil, err
	}

	item.SetLastToken(closing)

	return item, nil
}

// adefRequiresSubsectionNames are the subsection names accepted inside a
// .adef "requires:" section.
var adefRequiresSubsectionNames = []string{"configTree", "device", "dir", "file"}

// parseAdefRequiresSubsection parses one subsection of a .adef "requires:"
// section.
func parseAdefRequiresSubsection(l *Lexer) (tree.Content, *tree.Error) {
	name, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	switch name.Text {
	case "file":
		return ParseComplexSection(l, name, ParseRequiredFile)

	case "dir":
		return ParseComplexSection(l, name, ParseRequiredDir)

	case "device":
		return ParseComplexSection(l, name, ParseRequiredDevice)

	case "configTree":
		return ParseComplexSection(l, name, parseRequiredConfigTree)

	default:
		return nil, l.errUnknownSubsection(name.Text, "requires", adefRequiresSubsectionNames)
	}
}

// parseRequiredConfigTree parses one item inside a "configTree:" subsection:
// an optional permissions token followed by a tree name, where a lone '.'
// names the application's own tree.
func parseRequiredConfigTree(l *Lexer) (tree.Content, *tree.Error) {
	var permissions *tree.Token

	if l.IsMatch(tree.FilePermissions) {
		tok, err := l.Pull(tree.FilePermissions)
		if err != nil {
			return nil, err
		}

		permissions = tok

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	kind := tree.Name
	if l.IsMatch(tree.Dot) {
		kind = tree.Dot
	}

	treeName, err := l.Pull(kind)
	if err != nil {
		return nil, err
	}

	first := treeName
	if permissions != nil {
		first = permissions
	}

	item := tree.NewItem(tree.RequiredConfigTreeItem, first)

	if permissions != nil {
		item.AddContent(permissions)
	}

	item.AddContent(treeName)

	return item, nil
}
