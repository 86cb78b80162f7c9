// Package ir defines the value tree produced by parsing UCL documents.
//
// A Node is a tagged variant over null, booleans, integers, floats,
// times, strings, arrays, and objects. Objects keep their entries in
// insertion order using parallel Fields/Values slices.
package ir
