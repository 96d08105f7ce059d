// Package order provides the purchase order aggregate root and its business
// rules for the catalog ordering system.
//
// The package includes:
//   - Order: the aggregate root holding the item list, its denormalized
//     product-id projection, the derived total price, and the status tag
//   - Item: the value type for a single order line with its price snapshot
//   - Status: the order lifecycle tag (no transitions are enforced here)
//
// Key business rules:
//   - An order holds at most MaxItems distinct products
//   - Item quantities are integers of at least MinItemQuantity
//   - Adding a product already on the order merges quantities and keeps the
//     unit price captured when the product was first added
//   - The total price recomputed on every mutation must not exceed
//     MaxTotalPrice; a rejected mutation leaves the order untouched
//
// The package follows Domain-Driven Design principles: all mutation goes
// through the aggregate's own operations, never by direct field edits.
package order
