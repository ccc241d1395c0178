// Package pipeloop finds the closed pipe loop in a character grid and
// classifies every other tile as inside or outside of it.
//
// 🚀 What is pipeloop?
//
//	A small, dependency-light toolkit that brings together:
//		• Grid model: parse rows of `S | - L J 7 F .` into a dense tile map
//		• Connectivity: a data-driven open-direction table per tile type
//		• Loop tracing: breadth-first search from the start tile
//		• Region classification: rectilinear even-odd ray casting
//		• Presentation: text/JSON/YAML/TOML reports, ASCII and raster renders
//
// ✨ Why choose pipeloop?
//
//   - Pure functions over immutable data: build once, query forever
//   - Explicit worklists: no recursion, no stack-depth limits
//   - Sentinel errors: test failures with errors.Is
//   - Hooks: observe the traversal (OnEnqueue, OnVisit) without forking it
//
// Under the hood, everything is organized into subpackages:
//
//	pipegrid/  Coordinate, Direction, TileType, connectivity rule & Grid
//	looptrace/ BFS loop tracing, validation & start-tile inference
//	region/    filtered view & parity scan (interior/exterior labels)
//	solver/    the straight pipeline rows → grid → loop → regions
//	input/     line reading for the CLI
//	config/    YAML/TOML configuration for the CLI
//	report/    answer encoding (text, json, yaml, toml)
//	render/    ASCII and PNG/BMP/TIFF visualisation
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// has an 8-tile loop (half-length 4) enclosing exactly one tile.
//
// Logging is silent by default; see SetLogger.
//
//	go install github.com/katalvlaran/pipeloop/cmd/pipeloop@latest
package pipeloop
