// Package utils provides small helpers shared by the core and feature packages:
// whitespace normalization for names and lenient conversion of query values.
package utils
