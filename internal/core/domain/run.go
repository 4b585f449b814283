package domain

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// RunIDPrefix is the prefix of every run ID.
const RunIDPrefix = "run-"

// NewRunID generates a run ID that tags the logs and metrics of one
// invocation. Format: run-{ulid_lowercase}, 30 characters total.
func NewRunID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", fmt.Errorf("generate run id: %w", err)
	}
	return RunIDPrefix + strings.ToLower(id.String()), nil
}
