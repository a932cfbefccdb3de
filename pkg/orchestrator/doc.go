// Package orchestrator wires the feature list, theme selection, and renderer
// registry into a single Generate call. Defaults register the HTML and
// Markdown renderers and render the built-in homepage list.
package orchestrator
