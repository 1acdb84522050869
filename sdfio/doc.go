// Package sdfio loads cyclo-static dataflow graphs from their external
// wire formats (JSON, YAML, SDF3 XML) into a sdfgraph.Graph, and writes
// them back out (JSON, YAML, SDF3 XML).
//
// Every loader shares one raw intermediate shape, RawGraph, and one
// rate-vector grammar: a rate is either a bare integer, a JSON/YAML list of
// integers, or a bracketed string expression "[e1, e2, ...]" where each
// element is either "<int>" or "<int>*<int>" (count copies of a value).
// SDF3 XML rates are always the plain comma-separated list form used by
// that format; ParseCommaList, not ParseRateVector, handles those.
//
// A missing wcet or rate defaults to 1; a missing token count defaults to
// 0. A missing wcet (or SDF3 execution time) is reported back to the
// caller as a warning string, in a slice rather than through a logger,
// since the core assumes no particular logging framework.
package sdfio
