// Package customer provides the Customer entity referenced by parcels as sender.
//
// The lifecycle engine only needs existence checks by id; the full record
// (type, contact details, default addresses) is owned by the customer directory.
package customer
