// Package daemon holds the OS specific bits of running qruuid as a long lived
// server.
package daemon
