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
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lendflow-finance/lendflow/config"
	"github.com/lendflow-finance/lendflow/model"
)

func mockWebhookConfig(t *testing.T, url string) {
	t.Helper()
	mr := miniredis.RunT(t)
	mockConfig := &config.Configuration{
		Redis: config.RedisConfig{Dns: mr.Addr()},
	}
	mockConfig.Notification.Webhook.Url = url
	config.MockConfig(mockConfig)
}

func TestSendWebhook_Enqueues(t *testing.T) {
	mr := miniredis.RunT(t)
	mockConfig := &config.Configuration{
		Redis: config.RedisConfig{Dns: mr.Addr()},
	}
	mockConfig.Notification.Webhook.Url = "http://localhost:5001/webhook"
	config.MockConfig(mockConfig)

	err := SendWebhook(NewWebhook{
		Event:   "application.created",
		Payload: model.NewApplicationProfile(),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, mr.Keys(), "the task must land in redis")
}

func TestSendWebhook_NoURLIsNoop(t *testing.T) {
	mr := miniredis.RunT(t)
	config.MockConfig(&config.Configuration{Redis: config.RedisConfig{Dns: mr.Addr()}})

	err := SendWebhook(NewWebhook{Event: "application.created"})
	require.NoError(t, err)
	assert.Empty(t, mr.Keys())
}

func TestProcessHTTP(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	mockWebhookConfig(t, "http://example.com/webhook")
	httpmock.RegisterResponder("POST", "http://example.com/webhook",
		httpmock.NewJsonResponderOrPanic(200, map[string]string{"status": "ok"}))

	err := processHTTP(NewWebhook{
		Event:   "application.accepted",
		Payload: map[string]string{"reference": "LA2026083001"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestProcessHTTP_NonSuccessStatusIsSwallowed(t *testing.T) {
	httpmock.Activate()
	defer httpmock.DeactivateAndReset()

	mockWebhookConfig(t, "http://example.com/webhook")
	httpmock.RegisterResponder("POST", "http://example.com/webhook",
		httpmock.NewStringResponder(500, "boom"))

	// Delivery failures are logged, not retried here; asynq owns retries.
	err := processHTTP(NewWebhook{Event: "application.reset"})
	assert.NoError(t, err)
}
