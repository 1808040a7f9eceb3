// Package svgforge implements a stateful SVG document-composition
// session: callers issue discrete operations (create a canvas, add a
// shape, add a gradient, group elements, render a pattern, export)
// against named in-memory documents, and the session accumulates them
// into renderable SVG.
//
// The Session owns entity lifecycles and referential integrity:
// identifier allocation, per-document group and gradient registries,
// cascade deletion, and cross-document reference checks. Markup
// generation is delegated to pkg/svg and raster previews to pkg/raster.
// The server package exposes the operations over JSON-RPC.
package svgforge
