// Package icon resolves opaque icon references into sanitised SVG markup. It
// stands in for the static asset pipeline: descriptors carry a Ref, renderers
// ask a Resolver for markup, and the resolver owns where the bytes live.
package icon
