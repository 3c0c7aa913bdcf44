package model

import (
	"github.com/ardnew/mkdef/tree"
)

//go:generate go tool stringer --linecomment --type AgentType,StartMode --output model_string.go

// AgentType classifies one endpoint of an IPC binding by the kind of agent
// that serves or consumes it.
type AgentType int

const (
	// InternalAgent is an interface on an executable inside this
	// application.
	InternalAgent AgentType = iota // internal

	// ExternalAppAgent is an interface exported by another application.
	ExternalAppAgent // app

	// ExternalUserAgent is an interface served by a non-app user process.
	ExternalUserAgent // user
)

// StartMode selects whether an application starts automatically when the
// framework comes up or waits for an explicit start request.
type StartMode int

const (
	StartAuto   StartMode = iota // auto
	StartManual                  // manual
)

// Binding connects a client-side IPC interface to the server-side interface
// that satisfies it.
type Binding struct {
	ClientType      AgentType
	ClientAgentName string
	ClientIfName    string

	ServerType      AgentType
	ServerAgentName string
	ServerIfName    string

	// Token anchors diagnostics about this binding to the place it was
	// declared, nil for bindings synthesized during resolution.
	Token *tree.Token
}
