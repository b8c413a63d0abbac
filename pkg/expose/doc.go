/*
Package expose declares named producer functions on request handlers.

A handler chain is an explicit ancestor list; exposures accumulate down
the chain with lowest-wins shadowing and are flattened once, at
registration, into an immutable per-handler table. The registry check
matches the table against the requirements of the units a handler
renders, so a missing or mistyped exposure fails before serving.
*/
package expose
