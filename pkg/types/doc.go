// Package types defines the Project entity, its sidecar codec, the tag set,
// and the standard error values for the workbench project store.
package types
