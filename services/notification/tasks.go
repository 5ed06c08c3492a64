package notification

import (
	"encoding/json"

	"tourai/models"

	"github.com/hibiken/asynq"
)

const TypeNotificationDispatch = "notification:dispatch"

// NewDispatchTask wraps a notification into an asynq task for the worker.
func NewDispatchTask(notification models.Notification) (*asynq.Task, error) {
	b, err := json.Marshal(notification)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotificationDispatch, b), nil
}
