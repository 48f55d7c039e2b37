// Package errors provides structured errors for the encounter library.
//
// Every error carries a Code, a message and optional metadata. Codes are
// preserved through wrapping so callers can branch on the kind of failure
// without string matching.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFoundf("prototype %s not found", name)
//	err := errors.InvalidArgumentf("table %s: bucket %d overlaps", table, upper)
//
// Adding metadata:
//
//	err := errors.NotFound("prototype not found").
//	    WithMeta("prototype", name)
//
// Wrapping errors:
//
//	monsters, err := factory.BuildGroup(count, input)
//	if err != nil {
//	    return nil, errors.Wrapf(err, "failed to build %s", name)
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // the catalog has no such prototype
//	}
//
// # How the encounter packages use codes
//
//   - NotFound: a prototype lookup missed. Fatal to the build call.
//   - InvalidArgument: table or catalog data is malformed, or a config is incomplete.
//   - Internal: a logic error such as meta recursion past the depth cap.
//   - Unavailable: the catalog snapshot store could not be reached.
//
// Weapon and spell lookup misses are not errors; they are skipped by the caller.
package errors
