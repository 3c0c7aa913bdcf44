package model

import "github.com/ardnew/mkdef/tree"

// Process is a single process started within a process environment.
type Process struct {
	Item *tree.Item

	// Name identifies the process at runtime. It defaults to the last node
	// of the executable path when no explicit name is given.
	Name string

	// ExePath is the path to the executable, relative to the application's
	// runtime bin directory unless absolute.
	ExePath string

	Args []string
}

// ProcessEnv is a group of processes sharing runtime environment settings
// and resource limits. Each processes section of an application definition
// produces one environment.
type ProcessEnv struct {
	Processes []*Process

	EnvVars map[string]string

	FaultAction   SetOnceString
	StartPriority SetOnceString

	MaxCoreDumpFileBytes SetOnceInt
	MaxFileBytes         SetOnceInt
	MaxFileDescriptors   SetOnceInt
	MaxLockedMemoryBytes SetOnceInt
	MaxStackBytes        SetOnceInt

	WatchdogAction  SetOnceString
	WatchdogTimeout SetOnceInt
}

// NewProcessEnv creates a process environment with default limits.
func NewProcessEnv() *ProcessEnv {
	return &ProcessEnv{
		EnvVars:              map[string]string{},
		FaultAction:          NewSetOnceString("ignore"),
		StartPriority:        NewSetOnceString("medium"),
		MaxCoreDumpFileBytes: NewSetOnceInt(8192),
		MaxFileBytes:         NewSetOnceInt(90112),
		MaxFileDescriptors:   NewSetOnceInt(256),
		MaxLockedMemoryBytes: NewSetOnceInt(8192),
	}
}

// AreWatchdogsDisabled reports whether no process in the environment is
// monitored by the watchdog.
func (e *ProcessEnv) AreWatchdogsDisabled() bool {
	return e.WatchdogTimeout.IsSet() && e.WatchdogTimeout.Get() == WatchdogTimeoutNever
}
