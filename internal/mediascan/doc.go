// Package mediascan finds media files and measures their sizes.
//
// A user supplied path is resolved into either a directory, which is walked
// recursively using fastwalk, or a .txt manifest whose lines name files and
// directories to scan. Matching files are filtered against a fixed set of
// media extensions and measured for reporting.
package mediascan
