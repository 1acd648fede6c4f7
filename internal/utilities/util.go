// Package utilities contain utility code that use across the package
package utilities

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
