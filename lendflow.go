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
	"github.com/redis/go-redis/v9"

	"github.com/lendflow-finance/lendflow/cache"
	"github.com/lendflow-finance/lendflow/config"
	redis_db "github.com/lendflow-finance/lendflow/internal/redis-db"
)

// Lendflow represents the main struct for the Lendflow application.
type Lendflow struct {
	queue *Queue
	redis redis.UniversalClient
	cache cache.Cache
}

// NewLendflow initializes a new instance of Lendflow. It fetches the
// configuration and initializes the Redis client, the session cache and
// the task queue.
//
// Returns:
// - *Lendflow: A pointer to the newly created Lendflow instance.
// - error: An error if any of the initialization steps fail.
func NewLendflow() (*Lendflow, error) {
	configuration, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	redisClient, err := redis_db.NewRedisClient(configuration.Redis.Dns, configuration.Redis.SkipTLSVerify)
	if err != nil {
		return nil, err
	}
	sessionCache, err := cache.NewCache()
	if err != nil {
		return nil, err
	}
	newQueue := NewQueue(configuration)

	newLendflow := &Lendflow{queue: newQueue, redis: redisClient.Client(), cache: sessionCache}
	return newLendflow, nil
}
