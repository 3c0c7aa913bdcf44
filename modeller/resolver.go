package modeller

import (
	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/tree"
)

// CheckBindingTarget checks the validity of a binding's target. Only
// bindings to apps can be checked; non-app users may exist on the target
// system without being part of this build, and internal bindings were
// checked when they were created.
func CheckBindingTarget(system *model.System, binding *model.Binding) *tree.Error {
	if binding.ServerType != model.ExternalAppAgent {
		return nil
	}

	app, ok := system.Apps[binding.ServerAgentName]
	if !ok {
		return tree.ErrorAt(tree.BindingError, binding.Token,
			"Binding to non-existent server app '%s'.", binding.ServerAgentName)
	}

	if _, ok := app.ExternServerInterfaces[binding.ServerIfName]; !ok {
		return tree.ErrorAt(tree.BindingError, binding.Token,
			"Binding to non-existent server interface '%s' on app '%s'.",
			binding.ServerIfName, binding.ServerAgentName)
	}

	return nil
}

// EnsureClientInterfacesBound verifies that every client-side interface of
// every application in a system is bound to something. Unbound le_cfg and
// le_wdog interfaces are bound to the services of the root user.
func EnsureClientInterfacesBound(system *model.System) *tree.Error {
	for _, app := range system.Apps {
		for _, exe := range app.Executables {
			for _, ci := range exe.ComponentInstances {
				for _, instance := range ci.ClientApis {
					if instance.Binding != nil {
						// It has a binding, but is it a good binding?
						if err := CheckBindingTarget(system, instance.Binding); err != nil {
							return err
						}

						continue
					}

					if instance.If.Optional {
						continue
					}

					switch instance.If.InternalName {
					case "le_cfg", "le_wdog":
						bindToRootService(app, instance, instance.If.InternalName)

						continue
					}

					if instance.ExternMark != nil {
						return tree.Errorf(tree.BindingError,
							"Client interface '%s.%s' (aka '%s.%s.%s.%s') is not bound to anything.",
							app.Name, instance.Name,
							app.Name, exe.Name, ci.Component.Name, instance.If.InternalName)
					}

					return tree.Errorf(tree.BindingError,
						"Client interface '%s.%s' is not bound to anything.",
						app.Name, instance.Name)
				}
			}
		}
	}

	return nil
}

// EnsureClientInterfacesSatisfied verifies that every client-side
// interface of an application is either bound to something or marked as an
// external interface to be bound at the system level. Unbound le_cfg and
// le_wdog interfaces are bound to the services of the root user.
func EnsureClientInterfacesSatisfied(app *model.App) *tree.Error {
	for _, exe := range app.Executables {
		for _, ci := range exe.ComponentInstances {
			for _, instance := range ci.ClientApis {
				if instance.Binding != nil || instance.ExternMark != nil {
					continue
				}

				if instance.If.Optional {
					continue
				}

				switch instance.If.InternalName {
				case "le_cfg", "le_wdog":
					bindToRootService(app, instance, instance.If.InternalName)

					continue
				}

				return tree.Errorf(tree.BindingError,
					"Client interface '%s' of component '%s' in executable '%s'"+
						" is unsatisfied. It must either be declared"+
						" an external (inter-app) required interface"+
						" (in a \"requires: api:\" section in the .adef)"+
						" or be bound to a server side interface"+
						" (in the \"bindings:\" section of the .adef).",
					instance.If.InternalName, ci.Component.Name, exe.Name)
			}
		}
	}

	return nil
}
