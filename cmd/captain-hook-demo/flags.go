/*
http://www.apache.org/licenses/LICENSE-2.0.txt


Copyright 2026 Michael Franzl

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
	"github.com/urfave/cli"
)

var (
	flConfig = cli.StringFlag{
		Name:   "config, c",
		Usage:  "Path to a naming configuration file (YAML or JSON)",
		EnvVar: "CAPTAIN_HOOK_CONFIG_PATH",
		Value:  "",
	}
	flLogLevel = cli.IntFlag{
		Name:   "log-level, l",
		Usage:  "1-5 (Debug, Info, Warning, Error, Fatal)",
		EnvVar: "CAPTAIN_HOOK_LOG_LEVEL",
		Value:  3,
	}
)
