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
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStore(t *testing.T) {
	Convey("Store", t, func() {
		s := new(Store)

		Convey("lists nothing before any insertion", func() {
			So(s.list("load"), ShouldBeNil)
			So(s.count("load"), ShouldEqual, 0)
		})

		Convey("keeps lists sorted by priority descending", func() {
			s.insert("load", &handlerRecord{id: "r1", priority: 5})
			s.insert("load", &handlerRecord{id: "r2", priority: 50})
			s.insert("load", &handlerRecord{id: "r3", priority: 10})

			l := s.list("load")
			So(l, ShouldHaveLength, 3)
			So(l[0].priority, ShouldEqual, 50)
			So(l[1].priority, ShouldEqual, 10)
			So(l[2].priority, ShouldEqual, 5)
		})

		Convey("keeps events independent", func() {
			s.insert("load", &handlerRecord{id: "r1", priority: 5})
			s.insert("save", &handlerRecord{id: "r2", priority: 5})

			So(s.count("load"), ShouldEqual, 1)
			So(s.count("save"), ShouldEqual, 1)
		})

		Convey("removeTag removes the first match only", func() {
			s.insert("load", &handlerRecord{id: "r1", tag: "dup", priority: 20})
			s.insert("load", &handlerRecord{id: "r2", tag: "dup", priority: 5})

			r := s.removeTag("load", "dup")
			So(r, ShouldNotBeNil)
			So(r.id, ShouldEqual, "r1")
			So(s.count("load"), ShouldEqual, 1)
			So(s.list("load")[0].id, ShouldEqual, "r2")
		})

		Convey("removeTag with an empty tag is a no-op", func() {
			s.insert("load", &handlerRecord{id: "r1"})

			So(s.removeTag("load", ""), ShouldBeNil)
			So(s.count("load"), ShouldEqual, 1)
		})

		Convey("removeTag on an empty store is a no-op", func() {
			So(s.removeTag("load", "dup"), ShouldBeNil)
		})

		Convey("sweepOnce removes every once-flagged record", func() {
			s.insert("load", &handlerRecord{id: "r1", once: true, priority: 20})
			s.insert("load", &handlerRecord{id: "r2", priority: 10})
			s.insert("load", &handlerRecord{id: "r3", once: true, priority: 5})

			s.sweepOnce("load")
			l := s.list("load")
			So(l, ShouldHaveLength, 1)
			So(l[0].id, ShouldEqual, "r2")
		})

		Convey("sweepOnce on an absent list is a no-op", func() {
			So(func() { s.sweepOnce("load") }, ShouldNotPanic)
		})
	})
}

func TestHost(t *testing.T) {
	Convey("Host", t, func() {

		Convey("the zero value is usable", func() {
			h := new(Host)

			So(h.HookStore("_handlers"), ShouldNotBeNil)
		})

		Convey("returns the same store for the same name", func() {
			h := new(Host)

			So(h.HookStore("_handlers"), ShouldPointTo, h.HookStore("_handlers"))
		})

		Convey("keeps stores for distinct names apart", func() {
			h := new(Host)

			So(h.HookStore("_handlers"), ShouldNotPointTo, h.HookStore("_other"))
		})

		Convey("separate hosts never share a store", func() {
			h1 := new(Host)
			h2 := new(Host)

			So(h1.HookStore("_handlers"), ShouldNotPointTo, h2.HookStore("_handlers"))
		})
	})
}
