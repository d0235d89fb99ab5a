// Package courier contains the Courier aggregate, the delivery-agent profile
// that backs courier-initiated order transitions.
package courier
