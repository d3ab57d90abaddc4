// Package ports defines the interfaces between the wizard engine and the
// outside world: state persistence, the destination catalog, the booking
// service and distributed locking. Adapters live under pkg/adapters.
package ports
