// Package courier provides the Courier entity referenced by parcels.
//
// The lifecycle engine only resolves couriers by id; the full record (name,
// contact email, optional manager reference, last reported position) is owned
// by the courier directory. The manager reference is a plain id-based foreign
// key to another courier, never an embedded object graph.
package courier
