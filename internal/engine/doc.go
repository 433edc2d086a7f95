// Package engine contains the core composition logic: it mirrors the
// declared entries of the private tree into the public one, redacting
// recognized source files, then prunes stale output entries and writes the
// workspace manifest. This package is internal; external consumers should
// use the stable facade in pkg/core.
package engine
