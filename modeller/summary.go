package modeller

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/ardnew/mkdef/model"
)

func permissionsString(p model.Permissions) string {
	var s string

	if p.IsReadable() {
		s += " read"
	}

	if p.IsWriteable() {
		s += " write"
	}

	if p.IsExecutable() {
		s += " execute"
	}

	return s
}

func bindingSummary(w io.Writer, indent, clientIfName string, binding *model.Binding) {
	fmt.Fprintf(w, "%s'%s' -> bound to service '%s'", indent, clientIfName, binding.ServerIfName)

	switch binding.ServerType {
	case model.InternalAgent:
		fmt.Fprint(w, " on another exe inside the same app.")
	case model.ExternalAppAgent:
		fmt.Fprintf(w, " served by app '%s'.", binding.ServerAgentName)
	case model.ExternalUserAgent:
		fmt.Fprintf(w, " served by user <%s>.", binding.ServerAgentName)
	}
}

// PrintSummary writes a human-readable description of an application model.
func PrintSummary(w io.Writer, app *model.App) {
	fmt.Fprintf(w, "\n== '%s' application summary ==\n\n", app.Name)

	if len(app.Components) > 0 {
		fmt.Fprintln(w, "  Uses components:")

		for _, component := range app.Components {
			fmt.Fprintf(w, "    '%s'\n", component.Name)
		}
	}

	exeNames := slices.Sorted(maps.Keys(app.Executables))

	if len(exeNames) > 0 {
		fmt.Fprintln(w, "  Builds executables:")

		for _, name := range exeNames {
			exe := app.Executables[name]

			fmt.Fprintf(w, "    '%s'\n", exe.Name)

			if len(exe.ComponentInstances) > 0 {
				fmt.Fprintln(w, "      Instantiates components:")

				for _, instance := range exe.ComponentInstances {
					fmt.Fprintf(w, "        '%s'\n", instance.Component.Name)
				}
			}
		}
	}

	printBundled(w, "  Includes files from the build host:", app.BundledFiles)
	printBundled(w, "  Includes directories from the build host:", app.BundledDirs)

	if !app.IsSandboxed {
		fmt.Fprintln(w, "  WARNING: This application is UNSANDBOXED.")
	} else {
		printSandboxSummary(w, app)
	}

	if app.StartTrigger == model.StartAuto {
		fmt.Fprintln(w, "  Will be started automatically when the framework starts.")
	} else {
		fmt.Fprintln(w, "  Will only start when requested to start.")
	}

	printProcessSummary(w, app)

	if app.IsSandboxed && len(app.Groups()) > 0 {
		fmt.Fprintln(w, "  Will be a member of the following access control groups:")

		for _, group := range app.Groups() {
			fmt.Fprintf(w, "    %s\n", group)
		}
	}

	printInterfaceSummary(w, app)

	fmt.Fprintln(w)
}

func printBundled(w io.Writer, heading string, objects []*model.FileSystemObject) {
	if len(objects) == 0 {
		return
	}

	fmt.Fprintln(w, heading)

	for _, obj := range objects {
		fmt.Fprintf(w, "    '%s':\n", obj.Src)
		fmt.Fprintf(w, "      appearing inside app as: '%s'\n", obj.Dest)
		fmt.Fprintf(w, "      permissions:%s\n", permissionsString(obj.Permissions))
	}
}

func printSandboxSummary(w io.Writer, app *model.App) {
	fmt.Fprintln(w, "  Runs inside a sandbox.")

	if len(app.RequiredFiles) > 0 {
		fmt.Fprintln(w, "  Imports the following files from the target host:")

		for _, obj := range app.RequiredFiles {
			fmt.Fprintf(w, "    '%s':\n", obj.Src)
			fmt.Fprintf(w, "      appearing inside app as: '%s'\n", obj.Dest)
		}
	}

	if len(app.RequiredDirs) > 0 {
		fmt.Fprintln(w, "  Imports the following directories from the target host:")

		for _, obj := range app.RequiredDirs {
			fmt.Fprintf(w, "    '%s':\n", obj.Src)
			fmt.Fprintf(w, "      appearing inside app as: '%s'\n", obj.Dest)
		}
	}

	fmt.Fprintln(w, "  Has the following limits:")
	fmt.Fprintf(w, "    maxSecureStorageBytes: %d\n", app.MaxSecureStorageBytes.Get())
	fmt.Fprintf(w, "    maxThreads: %d\n", app.MaxThreads.Get())
	fmt.Fprintf(w, "    maxMQueueBytes: %d\n", app.MaxMQueueBytes.Get())
	fmt.Fprintf(w, "    maxQueuedSignals: %d\n", app.MaxQueuedSignals.Get())
	fmt.Fprintf(w, "    maxMemoryBytes: %d\n", app.MaxMemoryBytes.Get())
	fmt.Fprintf(w, "    cpuShare: %d\n", app.CpuShare.Get())
	fmt.Fprintf(w, "    maxFileSystemBytes: %d\n", app.MaxFileSystemBytes.Get())

	fmt.Fprintln(w, "  Has access to the following configuration trees:")
	fmt.Fprintln(w, "    Its own tree: read + write")

	for _, name := range slices.Sorted(maps.Keys(app.ConfigTrees)) {
		access := "read only"
		if app.ConfigTrees[name].IsWriteable() {
			access = "read + write"
		}

		fmt.Fprintf(w, "    %s: %s\n", name, access)
	}
}

func printProcessSummary(w io.Writer, app *model.App) {
	containsAtLeastOneProcess := false

	for _, env := range app.ProcessEnvs {
		for _, process := range env.Processes {
			containsAtLeastOneProcess = true

			fmt.Fprintf(w, "  When started, will run process: '%s'\n", process.Name)
			fmt.Fprintf(w, "    Executing file: '%s'\n", process.ExePath)

			if len(process.Args) == 0 {
				fmt.Fprintln(w, "    Without any command line arguments.")
			} else {
				fmt.Fprintln(w, "    With the following command line arguments:")

				for _, arg := range process.Args {
					fmt.Fprintf(w, "      '%s'\n", arg)
				}
			}

			if env.StartPriority.IsSet() {
				fmt.Fprintf(w, "    At priority: %s\n", env.StartPriority.Get())
			}

			fmt.Fprintln(w, "    With the following environment variables:")

			for _, name := range slices.Sorted(maps.Keys(env.EnvVars)) {
				fmt.Fprintf(w, "      %s=%s\n", name, env.EnvVars[name])
			}

			fmt.Fprintf(w, "    Fault recovery action: %s\n", env.FaultAction.Get())

			printWatchdogSummary(w, app, env)

			if app.IsSandboxed {
				fmt.Fprintln(w, "    With the following limits:")
				fmt.Fprintf(w, "      Max. core dump file size: %d bytes\n", env.MaxCoreDumpFileBytes.Get())
				fmt.Fprintf(w, "      Max. file size: %d bytes\n", env.MaxFileBytes.Get())
				fmt.Fprintf(w, "      Max. locked memory size: %d bytes\n", env.MaxLockedMemoryBytes.Get())
				fmt.Fprintf(w, "      Max. number of file descriptors: %d\n", env.MaxFileDescriptors.Get())
			}
		}
	}

	if !containsAtLeastOneProcess && app.IsSandboxed {
		fmt.Fprintln(w, "  When \"started\", will create a sandbox without running anything in it.")
	}
}

func printWatchdogSummary(w io.Writer, app *model.App, env *model.ProcessEnv) {
	switch {
	case env.WatchdogTimeout.IsSet():
		fmt.Fprintf(w, "    Watchdog timeout: %d\n", env.WatchdogTimeout.Get())
	case app.WatchdogTimeout.IsSet():
		fmt.Fprintf(w, "    Watchdog timeout: %d\n", app.WatchdogTimeout.Get())
	}

	switch {
	case env.WatchdogAction.IsSet():
		fmt.Fprintf(w, "    Watchdog action: %s\n", env.WatchdogAction.Get())
	case app.WatchdogAction.IsSet():
		fmt.Fprintf(w, "    Watchdog action: %s\n", app.WatchdogAction.Get())
	}

	if !env.WatchdogTimeout.IsSet() && !env.WatchdogAction.IsSet() &&
		!app.WatchdogTimeout.IsSet() && !app.WatchdogAction.IsSet() {
		fmt.Fprintln(w, "    Watchdog timeout: disabled")
	}
}

func printInterfaceSummary(w io.Writer, app *model.App) {
	for _, name := range slices.Sorted(maps.Keys(app.Executables)) {
		exe := app.Executables[name]

		fmt.Fprintf(w, "  Executable '%s':\n", exe.Name)

		var (
			unboundClientIfs []*model.ApiClientInterfaceInstance
			boundClientIfs   []*model.ApiClientInterfaceInstance
			serverIfs        []*model.ApiServerInterfaceInstance
		)

		for _, instance := range exe.ComponentInstances {
			for _, client := range instance.ClientApis {
				if client.Binding == nil {
					unboundClientIfs = append(unboundClientIfs, client)
				} else {
					boundClientIfs = append(boundClientIfs, client)
				}
			}

			serverIfs = append(serverIfs, instance.ServerApis...)
		}

		if len(serverIfs) > 0 {
			fmt.Fprintln(w, "    Serves the following IPC API interfaces:")

			for _, server := range serverIfs {
				fmt.Fprintf(w, "      '%s'\n", server.Name)
				fmt.Fprintf(w, "        API defined in: '%s'\n", server.If.ApiFile.Path)
			}
		}

		if len(boundClientIfs) > 0 || len(unboundClientIfs) > 0 {
			fmt.Fprintln(w, "    Has the following client-side IPC API interfaces:")

			for _, client := range boundClientIfs {
				bindingSummary(w, "      ", client.Name, client.Binding)
				fmt.Fprintf(w, "\n        API defined in: '%s'\n", client.If.ApiFile.Path)
			}

			for _, client := range unboundClientIfs {
				fmt.Fprintf(w, "      '%s' -> UNBOUND.\n", client.Name)
				fmt.Fprintf(w, "        API defined in: '%s'\n", client.If.ApiFile.Path)
			}
		}
	}

	if len(app.PreBuiltServerInterfaces) > 0 {
		fmt.Fprintln(w, "  Has the following server-side interfaces on pre-built executables:")

		for _, name := range slices.Sorted(maps.Keys(app.PreBuiltServerInterfaces)) {
			server := app.PreBuiltServerInterfaces[name]

			fmt.Fprintf(w, "    '%s'\n", server.Name)
			fmt.Fprintf(w, "      API defined in: '%s'\n", server.If.ApiFile.Path)
		}
	}

	if len(app.PreBuiltClientInterfaces) > 0 {
		fmt.Fprintln(w, "  Has the following client-side interfaces on pre-built executables:")

		for _, name := range slices.Sorted(maps.Keys(app.PreBuiltClientInterfaces)) {
			client := app.PreBuiltClientInterfaces[name]

			if client.Binding != nil {
				bindingSummary(w, "    ", client.Name, client.Binding)
				fmt.Fprintln(w)
			} else {
				fmt.Fprintf(w, "      '%s' -> UNBOUND.\n", client.Name)
			}

			fmt.Fprintf(w, "        API defined in: '%s'\n", client.If.ApiFile.Path)
		}
	}
}
