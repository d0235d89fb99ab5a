// Package recipient contains the Recipient aggregate, the destination
// profile orders are addressed to.
package recipient
