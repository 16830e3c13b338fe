// Package utils provides small helpers shared by the storefront packages:
// identifier generation and JSON response writing.
package utils
