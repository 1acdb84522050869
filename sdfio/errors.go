package sdfio

import "errors"

var (
	// ErrMalformedRateVector indicates a rate-vector string expression did
	// not match the "[e1, e2, ...]" grammar.
	ErrMalformedRateVector = errors.New("sdfio: malformed rate-vector expression")

	// ErrEmptyRateVector indicates a rate vector decoded to zero elements.
	ErrEmptyRateVector = errors.New("sdfio: rate vector must have at least one element")

	// ErrMissingField indicates a required field (actor name, channel
	// endpoint) was absent from the input.
	ErrMissingField = errors.New("sdfio: missing required field")

	// ErrMalformedXML indicates a SDF3 XML document was missing a required
	// element/attribute, or named an unsupported graph type or version.
	ErrMalformedXML = errors.New("sdfio: malformed SDF3 document")
)
