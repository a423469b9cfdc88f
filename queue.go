/*
Copyright 2025 Lendflow Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package lendflow

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"github.com/lendflow-finance/lendflow/config"
	"github.com/lendflow-finance/lendflow/internal/notification"
	redis_db "github.com/lendflow-finance/lendflow/internal/redis-db"
)

// Queue represents a queue for handling various tasks.
type Queue struct {
	Client    *asynq.Client
	Inspector *asynq.Inspector
}

// ApprovalNotice is the payload queued when an applicant accepts the
// in-principle offer. The worker turns it into the simulated SMS and
// email notifications.
type ApprovalNotice struct {
	ApplicationID string `json:"application_id"`
	Reference     string `json:"reference"`
	Name          string `json:"name"`
	Mobile        string `json:"mobile"`
	Email         string `json:"email"`
	LoanAmount    string `json:"loan_amount"`
	MonthlyEMI    string `json:"monthly_emi"`
}

// NewQueue initializes a new Queue instance with the provided configuration.
//
// Parameters:
// - conf *config.Configuration: The configuration for the queue.
//
// Returns:
// - *Queue: A pointer to the newly created Queue instance.
func NewQueue(conf *config.Configuration) *Queue {
	redisOption, err := redis_db.ParseRedisURL(conf.Redis.Dns, conf.Redis.SkipTLSVerify)
	if err != nil {
		log.Fatalf("Error parsing Redis URL: %v", err)
	}

	queueOptions := asynq.RedisClientOpt{Addr: redisOption.Addr, Password: redisOption.Password, DB: redisOption.DB, TLSConfig: redisOption.TLSConfig}
	client := asynq.NewClient(queueOptions)
	inspector := asynq.NewInspector(queueOptions)
	return &Queue{
		Client:    client,
		Inspector: inspector,
	}
}

// EnqueueApprovalNotice enqueues the approval notifications for an
// accepted application. The task ID is the application reference, so a
// double accept cannot queue the notice twice.
//
// Parameters:
// - ctx context.Context: The context for the operation.
// - notice ApprovalNotice: The approval notice to enqueue.
//
// Returns:
// - error: An error if the task could not be enqueued.
func (q *Queue) EnqueueApprovalNotice(ctx context.Context, notice ApprovalNotice) error {
	cfg, err := config.Fetch()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(notice)
	if err != nil {
		return err
	}
	taskOptions := []asynq.Option{
		asynq.TaskID(notice.Reference),
		asynq.Queue(cfg.Queue.NotificationQueue),
	}
	if delay := cfg.ProcessingDelay(); delay > 0 {
		taskOptions = append(taskOptions, asynq.ProcessIn(delay))
	}
	task := asynq.NewTask(cfg.Queue.NotificationQueue, payload, taskOptions...)
	info, err := q.Client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	if err != nil {
		log.Println(err, info)
		return err
	}
	log.Printf(" [*] Successfully enqueued approval notice: %+v", notice.Reference)
	return nil
}

// PendingTasks reports how many tasks are waiting on a queue. Workers log
// this at startup to surface a backlog left by a previous run.
func (q *Queue) PendingTasks(queueName string) (int, error) {
	info, err := q.Inspector.GetQueueInfo(queueName)
	if err != nil {
		return 0, err
	}
	return info.Pending, nil
}

// ProcessApprovalNotice processes an approval notice task from the queue
// and dispatches the simulated SMS and email notifications.
//
// Parameters:
// - _ context.Context: The context for the operation.
// - task *asynq.Task: The task containing the approval notice.
//
// Returns:
// - error: An error if the notice could not be processed.
func ProcessApprovalNotice(_ context.Context, task *asynq.Task) error {
	var notice ApprovalNotice
	if err := json.Unmarshal(task.Payload(), &notice); err != nil {
		log.Printf("Error unmarshaling task payload: %v", err)
		return err
	}

	message := fmt.Sprintf(
		"Dear %s, your loan application %s for Rs. %s is IN-PRINCIPAL APPROVED. Monthly EMI: Rs. %s.",
		notice.Name, notice.Reference, notice.LoanAmount, notice.MonthlyEMI,
	)
	if notice.Mobile != "" {
		notification.SendSMS(notice.Mobile, message)
	}
	if notice.Email != "" {
		notification.SendEmail(notice.Email, fmt.Sprintf("Loan application %s approved", notice.Reference), message)
	}
	log.Printf(" [*] Processed approval notice: %s at %s", notice.Reference, time.Now().Format(time.RFC822))
	return nil
}
