// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the graph lifecycle (load, build, resolve,
// export, run, store), decoupled from any specific entrypoint like a CLI.
package app
