// Package layout maps candidate files to their canonical repository
// destinations and materializes the release: copying sources into the
// working tree and writing the deployment manifest.
package layout
