// Package kernel provides the value objects shared by every aggregate:
// UUID identifiers, Money amounts and geographic Locations.
//
// All three reject their zero value through Validate, so an aggregate holding a
// kernel value can rely on it having passed constructor validation.
package kernel
