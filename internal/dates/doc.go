// Package dates resolves the created, modified and published timestamps of a
// document from an ordered list of sources.
//
// Each field keeps the first valid value found while walking the sources in
// order; later sources only fill fields that are still empty. Fields nobody
// supplied default to the run's start time, so a resolved Dates is always
// complete.
package dates
