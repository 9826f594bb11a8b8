// Package pkg provides the core libraries for Wordhaze word-cloud generation.
//
// # Overview
//
// Wordhaze turns raw text into images where each word's size reflects how
// often it appears. The pkg directory is organized into four main areas:
//
//  1. [words] - Text processing (tokenization, stopwords, frequency counts)
//  2. [cloud] - Domain logic (occupancy grid, glyph measuring, layout, rendering)
//  3. [pipeline] - Orchestration (extract → layout → render)
//  4. [server] - HTTP API with render caching
//
// # Architecture
//
// The typical data flow through Wordhaze:
//
//	Raw Text
//	    ↓
//	words: tokenize, filter stopwords, count
//	    ↓
//	cloud/layout: normalize weights, shrink-to-fit packing
//	    ↓          (cloud/grid answers free-region queries,
//	    ↓           cloud/glyph measures candidate boxes)
//	cloud/render: rasterize placements
//	    ↓
//	PNG / JPEG / ... or HTTP response
//
// Supporting packages: [errors] for structured error codes, [cache] for
// the server's render cache, [fonts] for the built-in fallback font,
// [io] for layout JSON export, [observability] for lifecycle hooks, and
// [buildinfo] for version metadata.
package pkg
