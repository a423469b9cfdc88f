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

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/sirupsen/logrus"
)

const (
	DEFAULT_PORT = "5401"
)

var ConfigStore atomic.Value

type ServerConfig struct {
	Secure    bool   `json:"secure" envconfig:"LENDFLOW_SERVER_SECURE"`
	SecretKey string `json:"secret_key" envconfig:"LENDFLOW_SERVER_SECRET_KEY"`
	Port      string `json:"port" envconfig:"LENDFLOW_SERVER_PORT"`
}

type RedisConfig struct {
	Dns           string `json:"dns" envconfig:"LENDFLOW_REDIS_DNS"`
	SkipTLSVerify bool   `json:"skip_tls_verify" envconfig:"LENDFLOW_REDIS_SKIP_TLS_VERIFY"`
}

type QueueConfig struct {
	WebhookQueue      string `json:"webhook_queue" envconfig:"LENDFLOW_QUEUE_WEBHOOK"`
	NotificationQueue string `json:"notification_queue" envconfig:"LENDFLOW_QUEUE_NOTIFICATION"`
	NumberOfQueues    int    `json:"number_of_queues" envconfig:"LENDFLOW_QUEUE_COUNT"`
}

// VerificationConfig controls the simulated verification surfaces: how
// long the pretend processing takes and how long an OTP countdown runs.
type VerificationConfig struct {
	ProcessingDelaySec int `json:"processing_delay_sec" envconfig:"LENDFLOW_VERIFICATION_DELAY_SEC"`
	OTPTTLSec          int `json:"otp_ttl_sec" envconfig:"LENDFLOW_OTP_TTL_SEC"`
}

type SlackWebhook struct {
	WebhookUrl string `json:"webhook_url"`
}

type Notification struct {
	Slack   SlackWebhook `json:"slack"`
	Webhook struct {
		Url     string            `json:"url"`
		Headers map[string]string `json:"headers"`
	} `json:"webhook"`
}

type Configuration struct {
	ProjectName  string             `json:"project_name" envconfig:"LENDFLOW_PROJECT_NAME"`
	Server       ServerConfig       `json:"server"`
	Redis        RedisConfig        `json:"redis"`
	Queue        QueueConfig        `json:"queue"`
	Verification VerificationConfig `json:"verification"`
	Notification Notification       `json:"notification"`
}

// OTPTTL returns the configured OTP countdown window.
func (cnf *Configuration) OTPTTL() time.Duration {
	return time.Duration(cnf.Verification.OTPTTLSec) * time.Second
}

// ProcessingDelay returns the configured simulated processing delay.
func (cnf *Configuration) ProcessingDelay() time.Duration {
	return time.Duration(cnf.Verification.ProcessingDelaySec) * time.Second
}

func loadConfigFromFile(file string) error {
	var cnf Configuration
	_, err := os.Stat(file)
	if err == nil {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = json.NewDecoder(f).Decode(&cnf)
		if err != nil {
			return err
		}

	} else if errors.Is(err, os.ErrNotExist) {
		log.Println("config json not passed, will use env variables")
	}

	// override config from environment variables
	err = envconfig.Process("lendflow", &cnf)
	if err != nil {
		return err
	}

	err = cnf.validateAndAddDefaults()
	if err != nil {
		return err
	}

	ConfigStore.Store(&cnf)
	return err
}

func InitConfig(configFile string) error {
	logger()
	return loadConfigFromFile(configFile)
}

func Fetch() (*Configuration, error) {
	config := ConfigStore.Load()
	c, ok := config.(*Configuration)
	if !ok {
		return nil, errors.New("config not loaded from file. Create a json file called lendflow.json with your config ❌")
	}
	return c, nil
}

func (cnf *Configuration) validateAndAddDefaults() error {
	if cnf.ProjectName == "" {
		log.Println("Warning: Project name is empty. Setting a default name.")
		cnf.ProjectName = "Lendflow Server"
	}

	if cnf.Redis.Dns == "" {
		log.Println("Error: Redis DNS is empty. It's a required field.")
		return errors.New("redis DNS is required")
	}

	// Trim white spaces from fields
	cnf.ProjectName = strings.TrimSpace(cnf.ProjectName)
	cnf.Server.Port = strings.TrimSpace(cnf.Server.Port)
	cnf.Redis.Dns = strings.TrimSpace(cnf.Redis.Dns)

	// Set default value for Port if it's empty
	if cnf.Server.Port == "" {
		cnf.Server.Port = DEFAULT_PORT
		log.Printf("Warning: Port not specified in config. Setting default port: %s", DEFAULT_PORT)
	}

	if cnf.Queue.WebhookQueue == "" {
		cnf.Queue.WebhookQueue = "new:webhook"
	}
	if cnf.Queue.NotificationQueue == "" {
		cnf.Queue.NotificationQueue = "new:notification"
	}
	if cnf.Queue.NumberOfQueues < 1 {
		cnf.Queue.NumberOfQueues = 1
	}

	if cnf.Verification.OTPTTLSec < 1 {
		cnf.Verification.OTPTTLSec = 120
	}
	if cnf.Verification.ProcessingDelaySec < 0 {
		cnf.Verification.ProcessingDelaySec = 0
	}

	return nil
}

// MockConfig sets a mock configuration for testing purposes.
func MockConfig(mockConfig *Configuration) {
	if mockConfig.Queue.WebhookQueue == "" {
		mockConfig.Queue.WebhookQueue = "new:webhook"
	}
	if mockConfig.Queue.NotificationQueue == "" {
		mockConfig.Queue.NotificationQueue = "new:notification"
	}
	if mockConfig.Verification.OTPTTLSec < 1 {
		mockConfig.Verification.OTPTTLSec = 120
	}
	ConfigStore.Store(mockConfig)
}

func logger() {
	logger := logrus.New()
	log.SetOutput(logger.Writer())
}
