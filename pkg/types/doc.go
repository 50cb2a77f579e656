// Package types defines the shared data model for stowaway: packs,
// tracked entries, the per-run context, link-farm actions, and the
// aggregated deployment report. It also declares the FS and LinkFarm
// interfaces that let the engine run against fakes in tests.
package types
