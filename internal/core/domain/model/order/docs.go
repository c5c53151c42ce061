// Package order implements the Order aggregate: the customer's errand request, its
// line items, its fulfilment stages and the escrow status of the quoted total.
//
// The package includes:
//   - Order: the aggregate root, the only entry point for mutating items and stages
//   - Header: the validated order header submitted by the customer
//   - Status, EscrowStatus, StageStatus: state machines for the lifecycle
//   - Type and StageType: the closed vocabularies that drive stage planning
//   - Totals and ItemSpec: typed amount breakdown and line items
package order
