// Package wizard is the high-level entry point for the booking wizard
// library. It wires the engine to its collaborators (state store,
// destination catalog, booking service) and exposes the session API:
// dispatch actions, resolve steps, submit bookings.
//
// Hosts that want full control can assemble internal pieces themselves via
// the ports in pkg/ports and the adapters in pkg/adapters.
package wizard
