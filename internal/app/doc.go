// Package app wires the tool together: it owns the validated run
// configuration, the isolated logger, and the top-level Run flow that
// discovers solution files, parses them, and applies the selected mode
// (format, check, list, or write).
package app
