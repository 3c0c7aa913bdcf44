package modeller

import (
	"fmt"
	"strings"

	"github.com/ardnew/mkdef/envvar"
	"github.com/ardnew/mkdef/fsys"
	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/parser"
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// GetApp builds the semantic model for the application whose .adef file is
// at the given path.
func (c *Context) GetApp(adefPath string) (*model.App, *tree.Error) {
	// Point CURDIR at the directory containing this file for the duration.
	restore, rerr := envvar.SetCurDir(pkg.GetContainingDir(adefPath))
	if rerr != nil {
		return nil, tree.NewError(tree.InternalError, rerr.Error())
	}
	defer restore()

	f, err := parser.ParseApp(adefPath)
	if err != nil {
		return nil, err
	}

	app := model.NewApp(f)

	// Bindings and processes are modelled at the end, once every interface
	// has been instantiated in every executable. Extern marks likewise.
	var (
		processesSections []*tree.ComplexSection
		bindingsSections  []*tree.ComplexSection
		externInterfaces  []*tree.Item
	)

	for _, section := range f.Sections {
		switch s := section.(type) {
		case *tree.SimpleSection:
			if err := c.addAdefSimpleSection(app, s); err != nil {
				return nil, err
			}

		case *tree.TokenListSection:
			if err := c.addAdefListSection(app, s); err != nil {
				return nil, err
			}

		case *tree.ComplexSection:
			switch s.Name() {
			case "bindings":
				bindingsSections = append(bindingsSections, s)
			case "processes":
				processesSections = append(processesSections, s)
			case "bundles":
				if err := c.addBundledItems(app, s); err != nil {
					return nil, err
				}
			case "executables":
				if err := c.addExecutables(app, s); err != nil {
					return nil, err
				}
			case "extern":
				var err *tree.Error

				externInterfaces, err = c.addExternSection(app, s, externInterfaces)
				if err != nil {
					return nil, err
				}
			case "requires":
				if err := c.addAppRequiredItems(app, s); err != nil {
					return nil, err
				}
			}
		}
	}

	for _, s := range processesSections {
		if err := c.addProcessesSection(app, s); err != nil {
			return nil, err
		}
	}

	if err := makeInterfacesExternal(app, externInterfaces); err != nil {
		return nil, err
	}

	for _, s := range bindingsSections {
		if err := addBindings(app, s); err != nil {
			return nil, err
		}
	}

	ensurePathIsSet(app)

	return app, nil
}

func (c *Context) addAdefSimpleSection(app *model.App, s *tree.SimpleSection) *tree.Error {
	switch s.Name() {
	case "cpuShare":
		return setPositive(&app.CpuShare, s, "cpuShare")
	case "maxFileSystemBytes":
		return setNonNegative(&app.MaxFileSystemBytes, s, "maxFileSystemBytes")
	case "maxMemoryBytes":
		return setPositive(&app.MaxMemoryBytes, s, "maxMemoryBytes")
	case "maxMQueueBytes":
		return setNonNegative(&app.MaxMQueueBytes, s, "maxMQueueBytes")
	case "maxQueuedSignals":
		return setNonNegative(&app.MaxQueuedSignals, s, "maxQueuedSignals")
	case "maxThreads":
		return setPositive(&app.MaxThreads, s, "maxThreads")
	case "maxSecureStorageBytes":
		return setNonNegative(&app.MaxSecureStorageBytes, s, "maxSecureStorageBytes")

	case "sandboxed":
		app.IsSandboxed = s.Text() != "false" && s.Text() != "off"

	case "start":
		switch s.Text() {
		case "auto":
			app.StartTrigger = model.StartAuto
		case "manual":
			app.StartTrigger = model.StartManual
		}

	case "version":
		version := s.Text()
		if strings.HasPrefix(version, "$") {
			var err *tree.Error

			if version, err = substitute(s.Content); err != nil {
				return err
			}
		}

		app.Version = version

	case "watchdogAction":
		if app.WatchdogAction.IsSet() {
			return tree.ErrorAt(tree.SemanticError, s.NameToken(),
				"Only one watchdogAction section allowed.")
		}

		app.WatchdogAction.Set(s.Text())

	case "watchdogTimeout":
		return setWatchdogTimeout(&app.WatchdogTimeout, s)
	}

	return nil
}

// setWatchdogTimeout sets a watchdog timeout from its section, which holds
// either an integer or the word "never".
func setWatchdogTimeout(timeout *model.SetOnceInt, s *tree.SimpleSection) *tree.Error {
	if timeout.IsSet() {
		return tree.ErrorAt(tree.SemanticError, s.NameToken(),
			"Only one watchdogTimeout section allowed.")
	}

	if s.Content.Kind == tree.Name {
		timeout.Set(model.WatchdogTimeoutNever) // watchdog disabled

		return nil
	}

	v, err := GetInt(s)
	if err != nil {
		return err
	}

	timeout.Set(v)

	return nil
}

func setNonNegative(limit *model.SetOnceInt, s *tree.SimpleSection, name string) *tree.Error {
	v, err := GetNonNegativeInt(s)
	if err != nil {
		return err
	}

	if !limit.Set(v) {
		return tree.ErrorAt(tree.SemanticError, s.NameToken(),
			"Only one %s section allowed.", name)
	}

	return nil
}

func setPositive(limit *model.SetOnceInt, s *tree.SimpleSection, name string) *tree.Error {
	v, err := GetPositiveInt(s)
	if err != nil {
		return err
	}

	if !limit.Set(v) {
		return tree.ErrorAt(tree.SemanticError, s.NameToken(),
			"Only one %s section allowed.", name)
	}

	return nil
}

func (c *Context) addAdefListSection(app *model.App, s *tree.TokenListSection) *tree.Error {
	switch s.Name() {
	case "components":
		for _, tok := range s.Contents {
			component, err := c.GetComponent(tok, []string{app.Dir})
			if err != nil {
				return err
			}

			// Skip when substitution leaves an empty name.
			if component != nil && app.FindComponent(component.Dir) == nil {
				app.Components = append(app.Components, component)
			}
		}

	case "groups":
		for _, tok := range s.Contents {
			app.AddGroup(tok.Text)
		}
	}

	return nil
}

// addBundledItems models an application's "bundles:" section, verifying
// that each bundled file or directory exists on the build host.
func (c *Context) addBundledItems(app *model.App, s *tree.ComplexSection) *tree.Error {
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

			// A relative source path is relative to the directory containing
			// the .adef file.
			if !pkg.IsAbsolute(obj.Src) {
				obj.Src = pkg.Combine(app.Dir, obj.Src)
			}

			switch item.Tag {
			case tree.BundledFileItem:
				switch {
				case c.Params.FS.FileExists(obj.Src):
					app.BundledFiles = append(app.BundledFiles, obj)
				case fsys.AnythingExists(obj.Src):
					return tree.ErrorAt(tree.SemanticError, item.FirstToken(),
						"Not a regular file: '%s'", obj.Src)
				default:
					return tree.ErrorAt(tree.SemanticError, item.FirstToken(),
						"File not found: '%s'", obj.Src)
				}

			case tree.BundledDirItem:
				switch {
				case c.Params.FS.DirExists(obj.Src):
					app.BundledDirs = append(app.BundledDirs, obj)
				case fsys.AnythingExists(obj.Src):
					return tree.ErrorAt(tree.SemanticError, item.FirstToken(),
						"Not a directory: '%s'", obj.Src)
				default:
					return tree.ErrorAt(tree.SemanticError, item.FirstToken(),
						"Directory not found: '%s'", obj.Src)
				}
			}
		}
	}

	return nil
}

// addExecutables models an "executables:" section, instantiating each
// executable's components.
func (c *Context) addExecutables(app *model.App, s *tree.ComplexSection) *tree.Error {
	for _, content := range s.Items {
		item, ok := content.(*tree.Item)
		if !ok {
			continue
		}

		exe := model.NewExecutable(app, item.Name())
		exe.Item = item

		for _, tok := range item.Contents {
			component, err := c.GetComponent(tok, []string{app.Dir})
			if err != nil {
				return err
			}

			if component == nil {
				continue
			}

			if app.FindComponent(component.Dir) == nil {
				app.Components = append(app.Components, component)
			}

			exe.AddComponentInstance(component)
		}

		if exe.HasJavaCode {
			exe.Path += ".jar"
		}

		if _, ok := app.Executables[exe.Name]; ok {
			return tree.ErrorAt(tree.SemanticError, item.NameToken(),
				"Duplicate executable found: %s", exe.Name)
		}

		if !exe.HasCOrCxxCode && !exe.HasJavaCode {
			return tree.ErrorAt(tree.SemanticError, item.NameToken(),
				"Executable doesn't contain any components that have source code files.")
		}

		app.Executables[exe.Name] = exe
	}

	return nil
}

// addExternSection collects the extern interface items for later
// processing, and models the pre-built interfaces of its "requires:" and
// "provides:" subsections immediately.
func (c *Context) addExternSection(
	app *model.App,
	s *tree.ComplexSection,
	interfaces []*tree.Item,
) ([]*tree.Item, *tree.Error) {
	for _, content := range s.Items {
		switch item := content.(type) {
		case *tree.Item:
			interfaces = append(interfaces, item)

		case *tree.ComplexSection:
			if err := c.modelPreBuiltInterfaces(app, item); err != nil {
				return nil, err
			}
		}
	}

	return interfaces, nil
}

// getPreBuiltInterface resolves the API file and interface name of a
// pre-built interface entry.
func (c *Context) getPreBuiltInterface(item *tree.Item) (string, *model.ApiFile, *tree.Error) {
	contents := item.Contents

	var (
		interfaceName string
		pathTok       *tree.Token
	)

	// When the first content token is a dotted name it's the interface
	// name, and the API file path follows.
	if contents[0].Kind == tree.DottedName {
		interfaceName = contents[0].Text
		pathTok = contents[1]

		name, err := substitute(pathTok)
		if err != nil {
			return "", nil, err
		}

		path := fsys.FindFile(c.Params.FS, name, c.Params.InterfaceDirs)
		if path == "" {
			return "", nil, tree.ErrorAt(tree.SemanticError, pathTok,
				"Couldn't find file '%s'.", pathTok.Text)
		}

		apiFile, err := c.GetApiFile(path, c.Params.InterfaceDirs, contents[0])
		if err != nil {
			return "", nil, err
		}

		return interfaceName, apiFile, nil
	}

	pathTok = contents[0]

	name, err := substitute(pathTok)
	if err != nil {
		return "", nil, err
	}

	path := fsys.FindFile(c.Params.FS, name, c.Params.InterfaceDirs)
	if path == "" {
		return "", nil, tree.ErrorAt(tree.SemanticError, pathTok,
			"Couldn't find file, '%s'.", name)
	}

	apiFile, err := c.GetApiFile(path, c.Params.InterfaceDirs, contents[0])
	if err != nil {
		return "", nil, err
	}

	return apiFile.DefaultPrefix, apiFile, nil
}

// modelPreBuiltInterfaces models one "requires:" or "provides:" subsection
// of an "extern:" section: the IPC interfaces of pre-built binaries
// bundled with the app.
func (c *Context) modelPreBuiltInterfaces(app *model.App, s *tree.ComplexSection) *tree.Error {
	for _, content := range s.Items {
		item, ok := content.(*tree.Item)
		if !ok {
			continue
		}

		interfaceName, apiFile, err := c.getPreBuiltInterface(item)
		if err != nil {
			return err
		}

		// The component is unknown for pre-built binaries.
		iface := model.ApiInterface{ApiFile: apiFile, InternalName: interfaceName}

		switch s.Name() {
		case "requires":
			app.PreBuiltClientInterfaces[interfaceName] = &model.ApiClientInterfaceInstance{
				If:   &model.ApiClientInterface{ApiInterface: iface},
				Name: interfaceName,
			}

		case "provides":
			app.PreBuiltServerInterfaces[interfaceName] = &model.ApiServerInterfaceInstance{
				If:   &model.ApiServerInterface{ApiInterface: iface},
				Name: interfaceName,
			}
		}
	}

	return nil
}

// addConfigTree gives the application access permissions on a
// configuration tree. A lone "." names the app's own tree.
func addConfigTree(app *model.App, item *tree.Item) *tree.Error {
	contents := item.Contents

	var permissions model.Permissions

	treeNameTok := contents[0]
	if treeNameTok.Kind == tree.FilePermissions {
		permissions = GetPermissions(treeNameTok)
		treeNameTok = contents[1]
	} else {
		permissions.SetReadable() // read-only by default
	}

	treeName := treeNameTok.Text
	if treeNameTok.Kind == tree.Dot {
		treeName = app.Name
	}

	if _, ok := app.ConfigTrees[treeName]; ok {
		return tree.ErrorAt(tree.SemanticError, treeNameTok,
			"Configuration tree '%s' appears in application more than once.", treeName)
	}

	app.ConfigTrees[treeName] = permissions

	return nil
}

// addAppRequiredItems models an application's "requires:" section.
func (c *Context) addAppRequiredItems(app *model.App, s *tree.ComplexSection) *tree.Error {
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

			switch item.Tag {
			case tree.RequiredFileItem:
				obj, err := GetRequiredFileOrDir(item)
				if err != nil {
					return err
				}

				app.RequiredFiles = append(app.RequiredFiles, obj)

			case tree.RequiredDirItem:
				obj, err := GetRequiredFileOrDir(item)
				if err != nil {
					return err
				}

				app.RequiredDirs = append(app.RequiredDirs, obj)

			case tree.RequiredDeviceItem:
				obj, err := GetRequiredDevice(item)
				if err != nil {
					return err
				}

				app.RequiredDevices = append(app.RequiredDevices, obj)

			case tree.RequiredConfigTreeItem:
				if err := addConfigTree(app, item); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addProcesses models one "run:" subsection's processes into a process
// environment. An unnamed process takes its name from the executable path.
func addProcesses(env *model.ProcessEnv, s *tree.ComplexSection) *tree.Error {
	for _, content := range s.Items {
		item, ok := content.(*tree.Item)
		if !ok {
			continue
		}

		process := &model.Process{Item: item}
		env.Processes = append(env.Processes, process)

		contents := item.Contents

		process.Name = contents[0].Text
		if item.FirstToken().Kind != tree.OpenParen {
			contents = contents[1:]
		}

		process.ExePath = pkg.Unquote(contents[0].Text)

		for _, tok := range contents[1:] {
			process.Args = append(process.Args, pkg.Unquote(tok.Text))
		}
	}

	return nil
}

// addProcessesSection models one "processes:" section into a new process
// environment on the app.
func (c *Context) addProcessesSection(app *model.App, s *tree.ComplexSection) *tree.Error {
	env := model.NewProcessEnv()
	app.ProcessEnvs = append(app.ProcessEnvs, env)

	for _, sub := range s.Items {
		switch subsection := sub.(type) {
		case *tree.ComplexSection:
			switch subsection.Name() {
			case "run":
				if err := addProcesses(env, subsection); err != nil {
					return err
				}

			case "envVars":
				for _, content := range subsection.Items {
					item, ok := content.(*tree.Item)
					if !ok {
						continue
					}

					value, err := substitute(item.Contents[0])
					if err != nil {
						return err
					}

					env.EnvVars[item.Name()] = value
				}
			}

		case *tree.SimpleSection:
			if err := addProcessEnvSetting(env, subsection); err != nil {
				return err
			}
		}
	}

	return nil
}

func addProcessEnvSetting(env *model.ProcessEnv, s *tree.SimpleSection) *tree.Error {
	switch s.Name() {
	case "faultAction":
		env.FaultAction.Set(s.Text())

	case "priority":
		env.StartPriority.Set(s.Text())

	case "maxCoreDumpFileBytes":
		v, err := GetNonNegativeInt(s)
		if err != nil {
			return err
		}

		env.MaxCoreDumpFileBytes.Set(v)

	case "maxFileBytes":
		v, err := GetNonNegativeInt(s)
		if err != nil {
			return err
		}

		env.MaxFileBytes.Set(v)

	case "maxFileDescriptors":
		v, err := GetPositiveInt(s)
		if err != nil {
			return err
		}

		env.MaxFileDescriptors.Set(v)

	case "maxLockedMemoryBytes":
		v, err := GetNonNegativeInt(s)
		if err != nil {
			return err
		}

		env.MaxLockedMemoryBytes.Set(v)

	case "maxStackBytes":
		v, err := GetPositiveInt(s)
		if err != nil {
			return err
		}

		env.MaxStackBytes.Set(v)

	case "watchdogAction":
		env.WatchdogAction.Set(s.Text())

	case "watchdogTimeout":
		return setWatchdogTimeout(&env.WatchdogTimeout, s)
	}

	return nil
}

// markInterfaceExternal marks an interface instance externally visible for
// binding at the system level.
func markExternal(externMark **tree.Token, name *string, nameTok *tree.Token) *tree.Error {
	if *externMark != nil {
		return tree.ErrorAt(tree.SemanticError, nameTok,
			"Same interface marked 'extern' more than once. Previously done at line %d.",
			(*externMark).Line)
	}

	*externMark = nameTok
	*name = nameTok.Text

	return nil
}

// makeInterfaceExternal marks a single API interface instance externally
// visible to other apps under the given name.
func makeInterfaceExternal(app *model.App, nameTok, exeTok, componentTok, ifTok *tree.Token) *tree.Error {
	name := nameTok.Text

	_, haveServer := app.ExternServerInterfaces[name]
	_, haveClient := app.ExternClientInterfaces[name]

	if haveServer || haveClient {
		return tree.ErrorAt(tree.SemanticError, nameTok,
			"Duplicate external interface name: '%s'.", name)
	}

	componentInstance, err := app.FindComponentInstance(exeTok, componentTok)
	if err != nil {
		return err
	}

	// The interface may be on either side.
	serverIf := componentInstance.FindServerInterface(ifTok.Text)
	clientIf := componentInstance.FindClientInterface(ifTok.Text)

	if clientIf == nil && serverIf == nil {
		return tree.ErrorAt(tree.SemanticError, nameTok,
			"Interface '%s' not found in component '%s' in executable '%s'.",
			ifTok.Text, componentTok.Text, exeTok.Text)
	}

	if clientIf != nil {
		if err := markExternal(&clientIf.ExternMark, &clientIf.Name, nameTok); err != nil {
			return err
		}

		app.ExternClientInterfaces[name] = clientIf
	} else {
		if err := markExternal(&serverIf.ExternMark, &serverIf.Name, nameTok); err != nil {
			return err
		}

		app.ExternServerInterfaces[name] = serverIf
	}

	return nil
}

// makeInterfacesExternal processes the collected extern interface items.
// This runs after all components and executables have been modelled.
func makeInterfacesExternal(app *model.App, interfaces []*tree.Item) *tree.Error {
	for _, item := range interfaces {
		tokens := item.Contents

		// Four content tokens carry an explicit external name; three export
		// the interface under its internal name.
		var err *tree.Error

		if len(tokens) == 4 {
			err = makeInterfaceExternal(app, tokens[0], tokens[1], tokens[2], tokens[3])
		} else {
			err = makeInterfaceExternal(app, tokens[2], tokens[0], tokens[1], tokens[2])
		}

		if err != nil {
			return err
		}
	}

	return nil
}

// getBindingServerSide extracts the server-side details of a binding item.
// Starting at startIndex, the server spec is one of:
//
//	NAME NAME NAME  internal binding
//	IPC_AGENT NAME  external binding to an app or non-app user
//	STAR NAME       internal binding to a pre-built binary server
func getBindingServerSide(binding *model.Binding, tokens []*tree.Token, startIndex int, app *model.App) *tree.Error {
	switch tokens[startIndex].Kind {
	case tree.IPCAgent:
		serverAgentName := tokens[startIndex].Text
		binding.ServerIfName = tokens[startIndex+1].Text

		if serverAgentName[0] == '<' { // non-app user
			binding.ServerType = model.ExternalUserAgent
			binding.ServerAgentName = RemoveAngleBrackets(serverAgentName)
		} else {
			binding.ServerType = model.ExternalAppAgent
			binding.ServerAgentName = serverAgentName
		}

	case tree.Star:
		binding.ServerType = model.InternalAgent
		binding.ServerAgentName = app.Name
		binding.ServerIfName = tokens[startIndex+1].Text

	default:
		serverIf, err := app.FindServerInterface(
			tokens[startIndex], tokens[startIndex+1], tokens[startIndex+2])
		if err != nil {
			return err
		}

		binding.ServerType = model.InternalAgent
		binding.ServerAgentName = app.Name
		binding.ServerIfName = serverIf.Name
	}

	return nil
}

// addBindings models one "bindings:" section. This runs after the
// executables are modelled and the extern marks are processed.
func addBindings(app *model.App, s *tree.ComplexSection) *tree.Error {
	for _, content := range s.Items {
		item, ok := content.(*tree.Item)
		if !ok {
			continue
		}

		tokens := item.Contents

		// Bindings in .adef files are always for the app's own client-side
		// interfaces.
		binding := &model.Binding{
			ClientType:      model.InternalAgent,
			ClientAgentName: app.Name,
			Token:           item.FirstToken(),
		}

		if tokens[0].Kind == tree.Star {
			// A binding of a pre-built client interface with a given name.
			binding.ClientIfName = tokens[1].Text

			if err := getBindingServerSide(binding, tokens, 2, app); err != nil {
				return err
			}

			iface, ok := app.PreBuiltClientInterfaces[binding.ClientIfName]
			if !ok {
				return tree.ErrorAt(tree.SemanticError, tokens[1],
					"No such client-side pre-built interface '%s'.", binding.ClientIfName)
			}

			if iface.Binding != nil {
				return tree.ErrorAt(tree.SemanticError, tokens[1],
					"Duplicate binding of pre-built client-side interface '%s'."+
						" Previous binding is at line %d.",
					binding.ClientIfName, iface.Binding.Token.Line)
			}

			iface.Binding = binding

			continue
		}

		clientIf, err := app.FindClientInterface(tokens[0], tokens[1], tokens[2])
		if err != nil {
			return err
		}

		binding.ClientIfName = clientIf.Name

		if err := getBindingServerSide(binding, tokens, 3, app); err != nil {
			return err
		}

		if clientIf.Binding != nil {
			return tree.ErrorAt(tree.SemanticError, tokens[0],
				"Client interface bound more than once.")
		}

		clientIf.Binding = binding
	}

	return nil
}

// ensurePathIsSet gives every process environment a PATH variable. The
// default depends on whether the application is sandboxed.
func ensurePathIsSet(app *model.App) {
	defaultPath := "/usr/local/bin:/usr/bin:/bin"
	if !app.IsSandboxed {
		defaultPath = "/legato/systems/current/apps/" + app.Name + "/read-only/bin:" + defaultPath
	}

	for _, env := range app.ProcessEnvs {
		if _, ok := env.EnvVars["PATH"]; !ok {
			env.EnvVars["PATH"] = defaultPath
		}
	}
}

// CheckForLimitsConflicts returns a warning for each process limit that a
// tighter app-wide limit will override.
func CheckForLimitsConflicts(app *model.App) []string {
	var warnings []string

	maxMemoryBytes := app.MaxMemoryBytes.Get()
	maxFileSystemBytes := app.MaxFileSystemBytes.Get()

	for _, env := range app.ProcessEnvs {
		maxLockedMemoryBytes := env.MaxLockedMemoryBytes.Get()
		if maxLockedMemoryBytes > maxMemoryBytes {
			warnings = append(warnings, fmt.Sprintf(
				"maxLockedMemoryBytes (%d) will be limited by the maxMemoryBytes limit (%d).",
				maxLockedMemoryBytes, maxMemoryBytes))
		}

		maxFileBytes := env.MaxFileBytes.Get()
		maxCoreDumpFileBytes := env.MaxCoreDumpFileBytes.Get()

		if maxCoreDumpFileBytes > maxFileBytes {
			warnings = append(warnings, fmt.Sprintf(
				"maxCoreDumpFileBytes (%d) will be limited by the maxFileBytes limit (%d).",
				maxCoreDumpFileBytes, maxFileBytes))
		}

		if maxCoreDumpFileBytes > maxFileSystemBytes {
			warnings = append(warnings, fmt.Sprintf(
				"maxCoreDumpFileBytes (%d) will be limited by the maxFileSystemBytes limit (%d)"+
					" if the core file is inside the sandbox temporary file system.",
				maxCoreDumpFileBytes, maxFileSystemBytes))
		}

		if maxFileBytes > maxFileSystemBytes {
			warnings = append(warnings, fmt.Sprintf(
				"maxFileBytes (%d) will be limited by the maxFileSystemBytes limit (%d)"+
					" if the file is inside the sandbox temporary file system.",
				maxFileBytes, maxFileSystemBytes))
		}
	}

	return warnings
}
