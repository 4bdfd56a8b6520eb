// Package palette extracts the dominant colors of an image and matches
// them against the dye database.
//
// Extraction filters out pixels below an alpha threshold, bounds the work
// with a sample cap and an iteration cap, then runs k-means clustering in
// RGB space. Each resulting cluster carries its centroid color and a
// dominance percentage (share of sampled pixels), and can be mapped to its
// closest dye with a dye.Matcher.
//
// # Determinism
//
// Clustering is fully deterministic: the sample cap is enforced by a fixed
// stride (or a nearest-neighbor downscale when starting from an image),
// and the initial centroids are distinct sampled colors taken at evenly
// spaced positions in first-seen order. The same input always produces the
// same clusters.
//
// # Degenerate Inputs
//
// An image whose pixels are all below the alpha threshold yields zero
// clusters and no error ("no usable pixels"). When the sampled pixels hold
// fewer distinct colors than the requested cluster count, the effective
// count is reduced instead of emitting duplicate or empty clusters. A
// cluster count outside [1, MaxClusters] is a contract violation and is
// rejected with an error.
package palette
