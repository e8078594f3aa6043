// Package httpapi serves one identity editing session over HTTP: the HTML
// editor page, its form posts and a small JSON API.
package httpapi
