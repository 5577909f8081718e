// Package ports defines the contracts between the application core and its
// adapters: repositories and the unit of work for persistence, the event bus
// for order notifications, and the security, mail and storage services used
// by account and catalog use cases.
package ports
