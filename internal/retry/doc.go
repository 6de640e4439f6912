// Package retry re-sends a record when the endpoint could not be reached
// for a reason that may clear up on its own.
//
// Retrying is opt-in. With zero attempts configured the executor runs the
// operation once and returns its error unchanged, which keeps the loader's
// fail-fast behavior.
//
// # Example Usage
//
//	classifier := retry.NewNetworkErrorClassifier()
//	strategy := retry.NewExponentialBackoff(3)
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return sender.Send(ctx, rec)
//	})
//
// # Error Classification
//
// NetworkErrorClassifier treats refused or reset connections, unreachable
// networks, temporary DNS failures and timeouts as transient. Context
// cancellation and everything else is fatal.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
