// Package version reports the gomonad library version.
//
// Version and Commit may be set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/gomonad/version.Version=1.0.0"
//
// Otherwise they are read from the module build info when gomonad is a
// dependency of the running binary.
package version
