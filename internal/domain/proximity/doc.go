// Package proximity contains the pure decision logic of the controller.
//
// It defines the distance tier classification (off/safe/caution/danger) and
// the accelerometer fall-indicator math. Both are side-effect-free functions
// of their inputs; every task re-derives its decisions each cycle instead of
// latching state.
package proximity
