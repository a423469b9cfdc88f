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
	"os"

	"github.com/lendflow-finance/lendflow"
	"github.com/lendflow-finance/lendflow/config"
	"github.com/lendflow-finance/lendflow/internal/notification"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Lendflow represents the CLI application, encapsulating the root Cobra command.
type Lendflow struct {
	cmd *cobra.Command
}

// lendflowInstance holds the service instance and its configuration,
// shared across the subcommands.
type lendflowInstance struct {
	lendflow *lendflow.Lendflow
	cnf      *config.Configuration
}

// recoverPanic handles any panics during program execution and logs the error using Logrus.
func recoverPanic() {
	if rec := recover(); rec != nil {
		logrus.Error(rec)
		os.Exit(1)
	}
}

// preRun sets up the configuration and initializes the service instance
// before running any command.
func preRun(app *lendflowInstance, configFile *string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := config.InitConfig(*configFile)
		if err != nil {
			log.Fatal("error loading config", err)
		}

		cnf, err := config.Fetch()
		if err != nil {
			return err
		}

		newLendflow, err := lendflow.NewLendflow()
		if err != nil {
			notification.NotifyError(err)
			log.Fatal(err)
		}

		app.lendflow = newLendflow
		app.cnf = cnf

		return nil
	}
}

// NewCLI creates the command-line interface for the Lendflow application.
// It sets up the root command and the server and worker subcommands.
func NewCLI() *Lendflow {
	var configFile string
	b := &lendflowInstance{}

	var rootCmd = &cobra.Command{
		Use:   "lendflow",
		Short: "Loan application intake service",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./lendflow.json", "Configuration file for lendflow")

	rootCmd.PersistentPreRunE = preRun(b, &configFile)

	rootCmd.AddCommand(serverCommands(b))
	rootCmd.AddCommand(workerCommands(b))

	return &Lendflow{cmd: rootCmd}
}

// executeCLI runs the root command, handling any errors that occur during execution.
func (w Lendflow) executeCLI() {
	if err := w.cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	defer recoverPanic()

	cli := NewCLI()
	cli.executeCLI()
}
