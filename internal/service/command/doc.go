// Package command implements the external control input path: a listener
// that turns serial command bytes into system enable toggles and silently
// drops anything it does not recognize.
package command
