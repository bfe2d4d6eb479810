// Package graphstore keeps authored graph definitions in a SQLite database so
// graphs edited through the CLI survive between runs.
//
// A graph is stored under its name together with a random ID. Passes, edges
// and outputs are kept in their declaration order (the seq column), which is
// what the scheduler's tie-breaking depends on. Pass configuration is stored
// as cty JSON with its type alongside, so values come back with the exact
// types they were saved with.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: child rows are removed with their graph
package graphstore
