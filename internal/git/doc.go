// Package git provides read-only repository handles used to look up the
// commit history of content files.
//
// A run owns a Repositories value with two roots: the working-directory
// repository and the content repository (typically a submodule). Each handle
// opens lazily at most once; history walks on a handle are serialized.
package git
