// Package filevalidator classifies uploaded bytes by magic-number signature
// and cross-checks the claimed file extension against what the bytes really
// are. A declared content type or file extension is client-controlled input;
// the signature is not.
package filevalidator
