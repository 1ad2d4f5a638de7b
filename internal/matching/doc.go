// Package matching clusters rows that share identity fields.
//
// A KeyBuilder turns a row into canonical keys such as "email:john@test.com".
// A Mapper owns the key-to-node table and a Forest of cluster nodes; each call
// to NodeFor extends the forest, merging existing clusters when a row's keys
// connect them. Cluster identifiers are generated lazily on the current root,
// so an identifier read before a later merge can differ from the one read
// after it.
//
// Everything in this package is single-goroutine by contract: rows must be fed
// in input order and no type here is safe for concurrent use.
package matching
