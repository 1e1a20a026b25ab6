package grading

import (
	"os"
	"strings"

	"github.com/p7-projekt/mozart/internal/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ScrubPath removes every occurrence of dir (a job directory's absolute
// path) from text, per spec.md §7's requirement that no user-visible
// diagnostic leak the job directory's location.
func ScrubPath(text, dir string) string {
	withSlash := dir
	if !strings.HasSuffix(withSlash, "/") {
		withSlash += "/"
	}
	text = strings.ReplaceAll(text, withSlash, "")
	return strings.ReplaceAll(text, dir, "")
}

// testCasesMarker is the literal token in a handler's base harness
// template that is replaced with generated per-test-case statements.
// Grounded on original_source/src/runner/mod.rs's TEST_CASES_TARGET.
const testCasesMarker = "TEST_CASES"

// Assemble writes the three job-directory files a LanguageHandler needs
// (solution, test-runner helper, main harness) per spec.md §4.C. Any I/O
// failure yields an *SubmissionError of kind Internal.
func Assemble(log *logrus.Entry, handler LanguageHandler, submission model.Submission) *SubmissionError {
	log.Info("writing solution file")
	if err := writeFile(handler.SolutionFilePath(), submission.Solution); err != nil {
		log.WithError(err).Error("could not write solution file")
		return ErrInternal()
	}

	log.Info("writing test runner file")
	if err := writeFile(handler.TestRunnerFilePath(), handler.TestRunnerCode()); err != nil {
		log.WithError(err).Error("could not write test runner file")
		return ErrInternal()
	}

	log.Info("generating test cases")
	fragments := handler.GenerateTestCases(submission.TestCases)
	log.WithField("fragments", fragments).Debug("generated test case fragments")

	base := handler.BaseHarnessCode()
	if strings.Count(base, testCasesMarker) != 1 {
		log.Error("base harness template does not contain exactly one TEST_CASES marker")
		return ErrInternal()
	}
	harness := strings.Replace(base, testCasesMarker, fragments, 1)
	log.WithField("harness", harness).Debug("assembled harness")

	log.Info("writing harness file")
	if err := writeFile(handler.TestHarnessFilePath(), harness); err != nil {
		log.WithError(err).Error("could not write harness file")
		return ErrInternal()
	}

	return nil
}

func writeFile(path, contents string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	if _, err := f.WriteString(contents); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
