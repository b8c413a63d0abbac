/*
Package view defines how renderable units declare their contracts.

A view or layout is a plain struct. Its required inputs are fields
tagged `need`; an embedded struct tagged `need:",squash"` inherits the
base's requirements. A view may declare a default enclosing layout by
implementing Composed, and a layout declares the accessors it calls on
its wrapped view via Demands. All of these declarations are read once,
at registration, and verified by the registry check before any request
is served.
*/
package view
