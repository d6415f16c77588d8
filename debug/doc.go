// Package debug toggles developer diagnostics.
//
// The Debug constant is false in normal builds and true under the debug build
// tag; the logger package uses it to keep console output enabled in tests.
package debug
