// Package http provides HTTP handlers and middleware for the content
// assistant API.
//
// Every endpoint below identifies the acting user through the `X-User-ID`
// header, an opaque client-generated token. The router exposes:
//   - POST /content: runs the generation pipeline over a description and
//     persists the result. GET /content lists history, DELETE /content/{id}
//     removes one entry. POST /content/outline returns a post outline.
//   - GET /brand, POST /brand, PUT /brand/{id}, DELETE /brand/{id}: brand
//     profile management.
//   - POST /plans, GET /plans, GET /plans/{id}, DELETE /plans/{id}: content
//     plan lifecycle. POST /plans/{id}/posts/{postID}/content generates
//     caption and hashtags for one planned post.
//     GET /plans/frequencies returns posting-cadence recommendations.
//   - POST /schedule/posts, GET /schedule/posts, DELETE /schedule/posts/{id}:
//     direct scheduling. GET /schedule/weekly/preview previews the priority
//     slots, POST /schedule/weekly commits them as draft posts with alarms.
//   - POST /alarms, GET /alarms, POST /alarms/{id}/dismiss,
//     DELETE /alarms/{id}: posting reminders.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
