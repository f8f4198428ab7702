package slicecore

import "github.com/google/uuid"

// Job is one slicing run: the core is stated to be restart-safe and
// memoryless between jobs (§5), so Job carries nothing but the
// identity a caller needs to demultiplex several jobs sharing a
// process. Its ID is threaded into every COMMENT command the core
// emits.
type Job struct {
	ID uuid.UUID
}

// NewJob mints a fresh job identity.
func NewJob() Job {
	return Job{ID: uuid.New()}
}

// commentf is used internally wherever the pipeline wants to tag an
// emitted comment with the job that produced it.
func (j Job) commentf(text string) Command {
	return Command{Kind: CommandComment, Comment: j.ID.String() + ": " + text}
}
