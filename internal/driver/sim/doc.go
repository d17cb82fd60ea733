// Package sim provides deterministic in-process implementations of the
// hardware collaborator interfaces: a range finder replaying a distance
// sweep, an accelerometer with injectable fall spikes, a board recording
// pin levels, a serial port writing to an io.Writer and a command-byte
// reader for interactive sessions.
package sim
