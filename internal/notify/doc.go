// Package notify provides the timer-to-task signaling glue: a fixed-period
// Timer that models a hardware timer interrupt and a coalescing Notifier
// with at-most-one-pending wake semantics.
package notify
