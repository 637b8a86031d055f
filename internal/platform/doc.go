package platform

// Package platform contains OS integration glue: per-user config and log
// directories, and revealing folders in the system file manager.
