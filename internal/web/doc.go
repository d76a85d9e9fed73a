// Package web serves the landing page over HTTP.
//
// Routes:
//
//	GET  /                 the rendered page
//	POST /buttons/{id}     activates a button and redirects to where it navigated
//	GET  /static/app.css   stylesheet
//	GET  /qr.png           QR code of the repository URL
//	GET  /healthz          liveness probe
//
// Every request gets a request ID, an access log line and a server span.
package web
