// Package events provides types and interfaces for change notification.
//
// This package defines event types and handler interfaces that allow for
// loose coupling between components: services announce catalog, snapshot,
// and review changes without knowing which handlers will process them.
//
// The primary components are:
// - ChangeEvent: Represents one observable state change
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
