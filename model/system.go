package model

// System collects the applications being built together, so that
// inter-app bindings can be checked against each other.
type System struct {
	Apps map[string]*App
}

// NewSystem creates an empty system.
func NewSystem() *System {
	return &System{Apps: map[string]*App{}}
}

// FindServerInterface returns the external server-side interface instance
// with the given name on the given app, or nil when the app is not part of
// the system or has no such interface.
func (s *System) FindServerInterface(appName, ifName string) *ApiServerInterfaceInstance {
	app, ok := s.Apps[appName]
	if !ok {
		return nil
	}

	if instance, ok := app.ExternServerInterfaces[ifName]; ok {
		return instance
	}

	return app.PreBuiltServerInterfaces[ifName]
}
