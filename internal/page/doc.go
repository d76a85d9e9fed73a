// Package page holds the content model of the Rical landing page.
//
// Content is the literal copy (decoded from YAML). A Page is built from
// Content for a single render pass and wires its buttons to a Navigator, so
// each front end decides what navigation means: an HTTP redirect for the web
// server, launching the system browser for the terminal.
package page
