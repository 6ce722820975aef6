package utils

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// UnmarshalTask unmarshal payload của asynq task vào dest
func UnmarshalTask(t *asynq.Task, dest interface{}) error {
	if err := json.Unmarshal(t.Payload(), dest); err != nil {
		return fmt.Errorf("failed to unmarshal task %s payload: %w", t.Type(), err)
	}
	return nil
}
