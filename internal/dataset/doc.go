// Reelmatch - Collaborative Filtering Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package dataset loads the MovieLens-100k files into a recommend.Graph.
//
// Four files are read from a single directory, in this order:
//
//   - u.genre: genre|index, one line per genre (optional, a built-in
//     MovieLens genre list is used when absent)
//   - u.user: id|age|gender|occupation|zip
//   - u.item: id|title|release date|video release date|IMDb URL|genre flags...
//   - u.data: user id, movie id, rating, unix timestamp (tab separated)
//
// The pipe-delimited files of the original release are ISO-8859-1 encoded and
// are decoded with golang.org/x/text before parsing.
//
// Malformed records are skipped, counted in LoadStats and in the
// reelmatch_dataset_records_skipped_total metric, and never abort a load.
// A missing required file or a cancelled context does.
package dataset
