// Package services orchestrates the release pipeline: building an analysis
// session from an extracted archive, and publishing an approved session into
// the git repository. Services receive all collaborators through their
// constructors and panic on nil dependencies.
package services
