package grading_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/p7-projekt/mozart/internal/grading"
	"github.com/p7-projekt/mozart/internal/model"
	"github.com/p7-projekt/mozart/internal/sandbox"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passHandler always reports every test case as passing, exercising the
// happy path of Submit without touching any real toolchain.
type passHandler struct {
	dir   string
	count int
}

func (h *passHandler) SolutionFilePath() string    { return filepath.Join(h.dir, "s") }
func (h *passHandler) TestRunnerFilePath() string  { return filepath.Join(h.dir, "r") }
func (h *passHandler) TestHarnessFilePath() string { return filepath.Join(h.dir, "h") }
func (h *passHandler) TestRunnerCode() string      { return "" }
func (h *passHandler) BaseHarnessCode() string     { return "TEST_CASES" }
func (h *passHandler) FormatParameter(model.Parameter) string { return "" }
func (h *passHandler) GenerateTestCases([]model.TestCase) string { return "" }
func (h *passHandler) Run(context.Context, *logrus.Entry, sandbox.Sandbox) (string, *grading.SubmissionError) {
	return strings.Repeat("p\n", h.count), nil
}
func (h *passHandler) GuardsNeverHalt() bool { return false }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestSubmit_DirectoryLifecycle(t *testing.T) {
	parent := t.TempDir()
	jobID := uuid.New()
	jobDir := filepath.Join(parent, jobID.String())

	var sawDirDuringRun bool
	newHandler := func(dir string) grading.LanguageHandler {
		_, err := os.Stat(dir)
		sawDirDuringRun = err == nil
		return &passHandler{dir: dir, count: 1}
	}

	submission := model.Submission{
		Solution: "irrelevant",
		TestCases: []model.TestCase{
			{ID: 1},
		},
	}

	outcome := grading.Submit(quietLogger(), jobID, parent, newHandler, sandbox.Sandbox{}, submission)

	assert.True(t, sawDirDuringRun, "job directory should exist while Run executes")
	_, statErr := os.Stat(jobDir)
	assert.True(t, os.IsNotExist(statErr), "job directory should be removed after Submit returns")
	_ = outcome
}

func TestSubmit_AllPassYieldsNilOutcome(t *testing.T) {
	parent := t.TempDir()
	newHandler := func(dir string) grading.LanguageHandler { return &passHandler{dir: dir, count: 2} }

	submission := model.Submission{
		TestCases: []model.TestCase{{ID: 1}, {ID: 2}},
	}

	outcome := grading.Submit(quietLogger(), uuid.New(), parent, newHandler, sandbox.Sandbox{}, submission)
	require.Nil(t, outcome)
}
