// Package build runs one docgarden pipeline: load the content directory,
// transform every document, wait for all of them, then emit the site.
//
// All entry points (the build command, tests) route through BuildService.
// The sentinel errors below classify which phase failed; they are always
// wrapped with the underlying classified error.
package build
