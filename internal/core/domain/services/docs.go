// Package services contains stateless domain services that coordinate aggregates:
// stage planning, escrow bookkeeping and the pickup reminder policy.
package services
