package imaging

import (
	"bytes"
	"context"
	"fmt"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/pkg/exceptions"
	"os/exec"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// ExecClassifier shells out to the pretrained model artifact. The tensor goes
// in as a JSON array on stdin and the probability vector comes back as a JSON
// array on stdout.
type ExecClassifier struct {
	Command   []string
	ModelPath string
	Timeout   time.Duration
}

func NewExecClassifier(classifierConfig config.Classifier) Classifier {
	return &ExecClassifier{
		Command:   strings.Fields(classifierConfig.Command),
		ModelPath: classifierConfig.ModelPath,
		Timeout:   time.Duration(classifierConfig.TimeoutInSeconds) * time.Second,
	}
}

func (c *ExecClassifier) Predict(ctx context.Context, input []float64) ([]float64, error) {
	if len(c.Command) == 0 {
		return nil, exceptions.ErrClassifierExecArtifact(fmt.Errorf("classifier command is not configured"))
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	execCtx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	args := append(c.Command[1:], "--model", c.ModelPath)
	cmd := exec.CommandContext(execCtx, c.Command[0], args...)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, exceptions.ErrClassifierExecArtifact(fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String())))
	}

	var probabilities []float64
	if err := json.Unmarshal(stdout.Bytes(), &probabilities); err != nil {
		return nil, exceptions.ErrClassifierBadPrediction(err)
	}
	return probabilities, nil
}
