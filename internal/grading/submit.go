package grading

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/p7-projekt/mozart/internal/model"
	"github.com/p7-projekt/mozart/internal/sandbox"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// HandlerFactory constructs a fresh LanguageHandler rooted at dir. One is
// supplied per configured language (internal/lang's registry).
type HandlerFactory func(dir string) LanguageHandler

// Submit is the public per-request entry point (spec.md §4.G): create a
// unique job directory, run Check inside it, always tear the directory
// down, and return the typed outcome.
//
// Submit intentionally takes no context.Context from the caller: the
// grading work is dispatched onto a goroutine detached from the HTTP
// request's lifetime, so a client disconnecting mid-request cannot abort
// the grading run or leak its job directory. Submit blocks unconditionally
// until that goroutine finishes. This is the Go equivalent of the
// teacher's detached-task dispatch pattern and is non-negotiable per
// spec.md §9.
func Submit(log *logrus.Logger, jobID uuid.UUID, parentDir string, newHandler HandlerFactory, sb sandbox.Sandbox, submission model.Submission) *SubmissionError {
	jobDir := filepath.Join(parentDir, jobID.String())
	entry := log.WithField("request_id", jobID.String())

	entry.WithField("dir", jobDir).Info("creating job directory")
	if err := os.Mkdir(jobDir, 0o770); err != nil {
		entry.WithError(errors.WithStack(err)).Error("could not create job directory")
		return ErrInternal()
	}

	resultCh := make(chan *SubmissionError, 1)
	go func() {
		// Deliberately context.Background(): detaching from ctx is what
		// makes this goroutine survive client disconnect.
		handler := newHandler(jobDir)
		resultCh <- Check(context.Background(), entry, handler, sb, submission)
	}()
	result := <-resultCh

	entry.Info("removing job directory")
	if err := os.RemoveAll(jobDir); err != nil {
		entry.WithError(errors.WithStack(err)).Error("could not remove job directory")
		return ErrInternal()
	}

	return result
}
