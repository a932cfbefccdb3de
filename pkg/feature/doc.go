// Package feature holds the descriptors rendered by the homepage features
// grid. A List is an immutable, ordered collection: order decides card
// placement, and nothing mutates a list once it has been built.
package feature
