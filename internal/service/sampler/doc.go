// Package sampler implements the fall-detection task: woken only by the
// sampling timer, it reads the three acceleration channels, derives the fall
// indicator and emits a serial alert on every strict threshold crossing.
package sampler
