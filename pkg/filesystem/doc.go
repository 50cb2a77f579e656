// Package filesystem provides filesystem implementations for stowaway.
//
// This package contains implementations of the types.FS interface,
// currently the standard OS filesystem. Tests use temporary directories
// through the same interface.
package filesystem
