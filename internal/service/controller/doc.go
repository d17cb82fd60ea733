// Package controller wires the whole sentinel together: configuration,
// shared state, the sampling timer and the four long-lived tasks. It owns
// startup ordering and shutdown draining; everything else is delegated.
package controller
