// Package driver defines the hardware collaborator interfaces the controller
// depends on: the distance range finder, the multi-channel analog reader, the
// discrete digital outputs and the serial side channel.
//
// The controller core never touches hardware directly; it is handed
// implementations of these interfaces at creation time. The sim subpackage
// provides deterministic in-process implementations for local runs and tests.
package driver
