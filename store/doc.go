// Package store defines how a transit network is persisted.
//
// A backend implements Loader and Persister over the flat Snapshot form:
// stops keyed by ID and routes referencing stops by ID. Build turns a
// Snapshot back into a *network.Graph with one shared tolerance rule for
// every backend: invalid, duplicate or dangling records are skipped with a
// WARN log entry and reported in BuildReport, and the rest of the network
// still loads.
//
// Backends:
//
//	store/yamlstore  YAML file, atomic replace on Save
//	store/pgstore    PostgreSQL through pgx, transactional Save
package store
