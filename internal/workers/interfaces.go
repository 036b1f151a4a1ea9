// Package workers runs the client's background jobs. Jobs are started with
// the application and stopped, in reverse order, when it exits.
package workers

import "context"

// Worker is a background job. Start must not block; Stop blocks until the
// job has fully exited and is safe to call on a job that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Replayer pushes locally journalled saves to the remote vault and reports
// how many got through.
type Replayer interface {
	ReplayPending(ctx context.Context) (int, error)
}
