package lookup

// Package lookup implements the remote search client for the philolog.us
// JSON query endpoint. It builds the request, rate-limits outbound calls,
// and isolates parsing of the server's versionless response schema behind
// ParseResults so schema drift only needs a local change.
