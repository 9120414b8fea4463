// Package ports declares the interfaces the application core needs from the
// outside world: repositories, reference-data registries, the cart store, event
// publishing, the order hand-off link builder and the unit of work.
package ports
