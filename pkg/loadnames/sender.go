package loadnames

import "context"

// RecordSender transmits a single record to the endpoint.
// Send blocks until the endpoint has answered or the transport failed.
// The response itself is not reported: any status is a success.
type RecordSender interface {
	Send(ctx context.Context, rec Record) error
}

// RecordSenderFunc adapts a function to RecordSender.
type RecordSenderFunc func(ctx context.Context, rec Record) error

// Send calls f(ctx, rec).
func (f RecordSenderFunc) Send(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}
