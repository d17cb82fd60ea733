// Package ranger implements the ranging task: the single writer of the
// shared distance sample, polling the range finder on a fixed period while
// the controller is enabled.
package ranger
