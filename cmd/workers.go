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

package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/lendflow-finance/lendflow"
	"github.com/lendflow-finance/lendflow/config"
	redis_db "github.com/lendflow-finance/lendflow/internal/redis-db"

	"github.com/hibiken/asynq"
)

func initializeQueues() map[string]int {
	cfg, err := config.Fetch()
	if err != nil {
		log.Printf("Error fetching config, using defaults: %v", err)
		return nil
	}

	queues := make(map[string]int)
	queues[cfg.Queue.WebhookQueue] = 3
	queues[cfg.Queue.NotificationQueue] = 1
	return queues
}

func initializeWorkerServer(conf *config.Configuration, queues map[string]int) (*asynq.Server, error) {
	redisOption, err := redis_db.ParseRedisURL(conf.Redis.Dns, conf.Redis.SkipTLSVerify)
	if err != nil {
		return nil, fmt.Errorf("error parsing Redis URL: %v", err)
	}

	return asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:      redisOption.Addr,
			Password:  redisOption.Password,
			DB:        redisOption.DB,
			TLSConfig: redisOption.TLSConfig,
		},
		asynq.Config{
			Concurrency: 1,
			Queues:      queues,
		},
	), nil
}

func initializeTaskHandlers(mux *asynq.ServeMux) {
	cfg, err := config.Fetch()
	if err != nil {
		log.Printf("Error fetching config, using defaults: %v", err)
		return
	}

	mux.HandleFunc(cfg.Queue.WebhookQueue, lendflow.ProcessWebhook)
	mux.HandleFunc(cfg.Queue.NotificationQueue, lendflow.ProcessApprovalNotice)
}

// logBacklog reports tasks left waiting by a previous worker run.
func logBacklog(conf *config.Configuration) {
	queue := lendflow.NewQueue(conf)
	for _, name := range []string{conf.Queue.WebhookQueue, conf.Queue.NotificationQueue} {
		pending, err := queue.PendingTasks(name)
		if err != nil {
			continue
		}
		if pending > 0 {
			log.Printf(" [*] %d pending tasks on %s", pending, name)
		}
	}
}

// workerCommands defines the "workers" command to start worker processes
// for webhook delivery and approval notifications.
func workerCommands(b *lendflowInstance) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "start lendflow workers",
		Run: func(cmd *cobra.Command, args []string) {
			conf, err := config.Fetch()
			if err != nil {
				log.Fatal("Error fetching config:", err)
			}

			logBacklog(conf)

			queues := initializeQueues()

			srv, err := initializeWorkerServer(conf, queues)
			if err != nil {
				log.Fatal(err)
			}

			mux := asynq.NewServeMux()
			initializeTaskHandlers(mux)

			if err := srv.Run(mux); err != nil {
				log.Fatalf("could not run server: %v", err)
			}
		},
	}

	return cmd
}
