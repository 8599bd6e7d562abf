// Package render provides the output formats for tree rendering.
//
// Each Renderer hands out a fresh RenderSession per call. A session
// implements the walker hooks and may post-process the accumulated output
// in Finish. Sessions are not shared, so renderers are safe for concurrent
// use.
package render
