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

package captainhook

import (
	"fmt"

	"github.com/michaelfranzl/captain-hook/pkg/promise"
)

type Widget struct {
	Host
	Saves int
}

func Example() {
	hooks := New()
	widget := new(Widget)

	hooks.On(widget, "save", func(self interface{}, args ...interface{}) interface{} {
		self.(*Widget).Saves++
		return "a"
	}, HandlerOpts{Priority: 2})
	hooks.On(widget, "save", func(self interface{}, args ...interface{}) interface{} {
		return "b"
	}, HandlerOpts{Priority: 9})

	fmt.Println(hooks.Emit(widget, "save"))
	fmt.Println(widget.Saves)
	// Output:
	// [b a]
	// 1
}

func ExampleMixin_Once() {
	hooks := New()
	widget := new(Widget)

	hooks.Once(widget, "init", func(self interface{}, args ...interface{}) interface{} {
		return "x"
	})

	fmt.Println(hooks.Emit(widget, "init"))
	fmt.Println(hooks.Emit(widget, "init"))
	// Output:
	// [x]
	// []
}

// Handlers that start asynchronous work return a pending promise;
// the emitting caller joins the returned promises into a single wait.
func ExampleMixin_Emit_promises() {
	hooks := New(Config{StorageName: PrivateStorage})
	widget := new(Widget)

	hooks.On(widget, "flush", func(self interface{}, args ...interface{}) interface{} {
		p := promise.NewPromise()
		go p.Complete([]error{})
		return p
	})

	results := hooks.Emit(widget, "flush")
	pending := []promise.Promise{}
	for _, r := range results {
		if p, ok := r.(promise.Promise); ok {
			pending = append(pending, p)
		}
	}
	errs := promise.Join(pending...).Await()
	fmt.Println(len(results), len(errs))
	// Output: 1 0
}

// Empty but makes the example not print the whole file
func ExampleConfig() {
}
