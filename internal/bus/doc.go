// Package bus defines the contract between servolink and the physical
// CAN transport.
//
// The core never talks to a socket directly: discovery, parameter reads
// and command dispatch all go through the Driver interface, which a
// transport implementation (SocketCAN, USB adapter, simulator) provides.
// Frame encoding, link-layer retries and kernel interface management are
// the driver's concern.
//
// Every blocking Driver call takes a context; implementations must
// honour its deadline so that a silent device yields an error value,
// never an indefinite block.
package bus
