// Package content resolves requested paths to servable resources.
//
// Resources come from three tiers: mutable storage (an afero.Fs), its
// pre-compressed ".gz" variants including those under the configured
// alternate root, and a fixed catalog of gzip assets compiled into the
// binary. The Resolver handles the storage tiers; the Catalog is matched by
// exact route and never competes with the Resolver for the same path.
package content
