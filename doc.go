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

/*
Package captainhook provides configurable event-emission behavior that
can be mixed into arbitrary Go values.

A mixin is built by New from a naming configuration and exposes four
operations — register (on), register-once (once), deregister (off) and
emit (_emit) — under names chosen at construction time, so the same
behavior can be composed onto hosts whose method namespaces differ.
Handlers are ordered by priority (highest first), may be tagged for
targeted removal, are bound to a context value (the registering host by
default), and have their return values collected into the emit result
sequence.

Storage is either host-scoped (each host implementing Keeper, e.g. by
embedding Host, keeps its own subscriptions under the configured
storage name) or privately scoped (PrivateStorage), where one store
owned by the mixin is shared by every composed host.

Core principles:

1. Synchronous, in-order delivery

2. No persistence, no transport

3. The emitting caller owns aggregation of handler results
*/
package captainhook
