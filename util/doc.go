// Package util provides generic helpers for slices and maps.
//
// Lookups that can miss return option.Option instead of a comma-ok pair or
// a panic, so they compose with the option and seq packages.
package util
