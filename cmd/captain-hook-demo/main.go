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

// A small demonstration of configurable event-emission mixins: one
// host-scoped mixin (each widget keeps its own subscriptions) and one
// privately scoped mixin shared by a pair of plugins.
package main

import (
	"fmt"
	"os"

	captainhook "github.com/michaelfranzl/captain-hook"
	"github.com/michaelfranzl/captain-hook/pkg/promise"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var gitversion string

type widget struct {
	captainhook.Host
	name string
}

type plugin struct {
	name string
}

func main() {
	app := cli.NewApp()
	app.Name = "captain-hook-demo"
	app.Version = gitversion
	app.Usage = "Demonstrates configurable event-emission mixins"
	app.Flags = []cli.Flag{flConfig, flLogLevel}
	app.Action = action

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func action(ctx *cli.Context) error {
	lvl := ctx.Int("log-level")
	if lvl < 1 || lvl > 5 {
		return fmt.Errorf("log level was invalid (needs: 1-5; given: %v)", lvl)
	}
	log.SetLevel(getLevel(lvl))

	cfg := captainhook.Config{}
	if path := ctx.String("config"); path != "" {
		c, err := captainhook.ReadConfig(path)
		if err != nil {
			return err
		}
		cfg = *c
	}

	hooks := captainhook.New(cfg)
	w := &widget{name: "gauge"}

	hooks.On(w, "refresh", func(self interface{}, args ...interface{}) interface{} {
		return fmt.Sprintf("%s: redrawn at %v", self.(*widget).name, args[0])
	}, captainhook.HandlerOpts{Priority: 20, Tag: "draw"})
	hooks.Once(w, "refresh", func(self interface{}, args ...interface{}) interface{} {
		return fmt.Sprintf("%s: first refresh", self.(*widget).name)
	})

	fmt.Println("host-scoped mixin, first emit:")
	for _, r := range hooks.Emit(w, "refresh", "10:00") {
		fmt.Printf("  %v\n", r)
	}
	fmt.Println("host-scoped mixin, second emit (once handler expired):")
	for _, r := range hooks.Emit(w, "refresh", "10:05") {
		fmt.Printf("  %v\n", r)
	}

	// Two plugins sharing one privately scoped mixin observe each
	// other's subscriptions, ordered together by priority.
	shared := captainhook.New(captainhook.Config{StorageName: captainhook.PrivateStorage})
	collector := &plugin{name: "collector"}
	publisher := &plugin{name: "publisher"}

	shared.On(collector, "shutdown", func(self interface{}, args ...interface{}) interface{} {
		p := promise.NewPromise()
		go p.Complete([]error{})
		return p
	}, captainhook.HandlerOpts{Priority: 50})
	shared.On(publisher, "shutdown", func(self interface{}, args ...interface{}) interface{} {
		p := promise.NewPromise()
		go p.Complete([]error{})
		return p
	})

	results := shared.Emit(collector, "shutdown")
	pending := []promise.Promise{}
	for _, r := range results {
		if p, ok := r.(promise.Promise); ok {
			pending = append(pending, p)
		}
	}
	errs := promise.Join(pending...).Await()
	fmt.Printf("private mixin: %d shutdown handlers drained, %d errors\n", len(results), len(errs))
	return nil
}

func getLevel(i int) log.Level {
	switch i {
	case 1:
		return log.DebugLevel
	case 2:
		return log.InfoLevel
	case 3:
		return log.WarnLevel
	case 4:
		return log.ErrorLevel
	case 5:
		return log.FatalLevel
	default:
		panic("bad level")
	}
}
