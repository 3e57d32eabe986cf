// Copyright 2025-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"fmt"
	"os"

	"github.com/daftar-pantau/dp-api/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Alpha Vantage
	viper.BindEnv("alphavantage.apikey", "ALPHAVANTAGE_API_KEY")
	rootCmd.PersistentFlags().String("alphavantage-apikey", "", "Alpha Vantage API key")
	viper.BindPFlag("alphavantage.apikey", rootCmd.PersistentFlags().Lookup("alphavantage-apikey"))

	// Flow backend
	viper.BindEnv("flows.url", "DP_FLOWS_URL")
	rootCmd.PersistentFlags().String("flows-url", "", "Base URL of the text-generation flow backend")
	viper.BindPFlag("flows.url", rootCmd.PersistentFlags().Lookup("flows-url"))

	viper.BindEnv("flows.token", "DP_FLOWS_TOKEN")
	rootCmd.PersistentFlags().String("flows-token", "", "Bearer token for the flow backend")
	viper.BindPFlag("flows.token", rootCmd.PersistentFlags().Lookup("flows-token"))

	// Cache
	viper.BindEnv("cache.redis_url", "REDIS_URL")
	rootCmd.PersistentFlags().String("redis-url", "", "Redis connection string, if blank only the in-process cache is used")
	viper.BindPFlag("cache.redis_url", rootCmd.PersistentFlags().Lookup("redis-url"))

	rootCmd.PersistentFlags().Int("cache-local-size", 1024, "Maximum number of entries in the in-process cache")
	viper.BindPFlag("cache.local_size", rootCmd.PersistentFlags().Lookup("cache-local-size"))

	rootCmd.PersistentFlags().Duration("cache-ttl", 0, "Time-to-live of cached entries in redis, 0 means no expiration")
	viper.BindPFlag("cache.ttl", rootCmd.PersistentFlags().Lookup("cache-ttl"))

	// Logging configuration
	viper.BindEnv("log.level", "DP_LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-level", "warning", "Logging level")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	viper.BindEnv("log.report_caller", "DP_LOG_REPORT_CALLER")
	rootCmd.PersistentFlags().Bool("log-report-caller", false, "Log function name that called log statement")
	viper.BindPFlag("log.report_caller", rootCmd.PersistentFlags().Lookup("log-report-caller"))

	viper.BindEnv("log.output", "DP_LOG_OUTPUT")
	rootCmd.PersistentFlags().String("log-output", "stdout", "Write logs to specified output one of: file path, `stdout`, or `stderr`")
	viper.BindPFlag("log.output", rootCmd.PersistentFlags().Lookup("log-output"))

	rootCmd.PersistentFlags().Bool("log-pretty", false, "Print logs in human readable format")
	viper.BindPFlag("log.pretty", rootCmd.PersistentFlags().Lookup("log-pretty"))

	// OTLP tracing
	viper.BindEnv("otlp.endpoint", "OTLP_ENDPOINT")
	rootCmd.PersistentFlags().String("otlp-endpoint", "", "OTLP trace collector endpoint, if blank tracing is disabled")
	viper.BindPFlag("otlp.endpoint", rootCmd.PersistentFlags().Lookup("otlp-endpoint"))
}

var rootCmd = &cobra.Command{
	Use:     "dpapi",
	Version: common.CurrentVersion.String(),
	Short:   "Daftar Pantau is a stock watchlist service",
	Long:    `An HTTP service that aggregates watchlist quotes, groups them by asset class, searches security symbols and dispatches text-generation flows.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
