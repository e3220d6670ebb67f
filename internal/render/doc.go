// Package render draws a [scene.Scene] through a [scene.PerspectiveCamera].
//
// Two backends implement [Renderer]:
//
//   - [TerminalRenderer]: hidden-line wireframe on a Braille [Canvas]
//   - [RasterRenderer]: flat-shaded polygons on a gg raster context
//
// A [Recorder] collects raster frames into an animated GIF.
package render
