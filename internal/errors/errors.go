package errors

import "fmt"

// TransportError reports a failed network or HTTP round trip to an upstream
// quote source.
type TransportError struct {
	Source string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Source, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// RateLimitedError reports upstream throttling.
type RateLimitedError struct {
	Source string
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s: rate limited by upstream", e.Source)
}

// MalformedPayloadError reports an upstream response that did not match the
// expected shape.
type MalformedPayloadError struct {
	Source string
	Detail string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("%s: malformed payload: %s", e.Source, e.Detail)
}

// UnknownCommodityError reports a raw record whose identifier has no
// commodity metadata.
type UnknownCommodityError struct {
	CommodityID string
}

func (e *UnknownCommodityError) Error() string {
	return fmt.Sprintf("unknown commodity %q", e.CommodityID)
}

// PersistenceError reports a failed read or write against the store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Field + ": " + e.Message
}
