// Package version provides version information for the application.
//
// Version and Revision are normally set at link time with -ldflags; when
// they are not, they fall back to the module build information.
package version
