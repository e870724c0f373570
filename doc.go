// Package formkit decodes and validates multipart/form-data uploads held
// fully in memory.
//
// The decoder walks raw body bytes by boundary marker instead of wrapping
// mime/multipart, which lets it keep the lenient semantics upload endpoints
// depend on: nameless parts are dropped, and a body truncated mid-part still
// yields every part decoded before the cut. Strict mode turns both conditions
// into errors.
//
// # Basic Usage
//
//	boundary, err := formkit.ParseBoundary(r.Header.Get("Content-Type"))
//	if err != nil {
//	    // not multipart, or no boundary parameter
//	}
//
//	body, _ := io.ReadAll(r.Body)
//	form := formkit.Decode(body, boundary)
//
//	if part, ok := form.File(); ok {
//	    // part.FileName, part.ContentType, part.Data
//	}
//	desc, _ := form.Value("description")
//
// Uploaded bytes are never trusted to match their claimed type; the
// filevalidator subpackage cross-checks file extensions against magic-number
// signatures:
//
//	v := filevalidator.New()
//	if err := v.Validate(part.FileName, part.Data, filevalidator.CategoryImage); err != nil {
//	    // reject the upload
//	}
//
// The [Intake] service composes decode, validation, checksumming and storage
// for the common one-file upload endpoint shape.
//
// The whole body and every decoded part are held in memory at once; the
// package is intended for request-sized uploads (tens of MB), not streaming.
package formkit
