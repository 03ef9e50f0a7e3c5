// Package dto holds the client-facing shapes of every entity, the request
// bodies accepted by create and update endpoints, and the plain mapping
// functions between them and the persisted models.
//
// Mapping is total and silent: a field that a request does not carry keeps
// its zero value on the model (zero id, zero time) and is back-filled by the
// repository where applicable.
package dto
