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
	"github.com/pborman/uuid"
	log "github.com/sirupsen/logrus"
)

var hookLogger = log.WithFields(log.Fields{
	"_module": "captain-hook",
})

// RegisterFunc is the shape of the register and register-once
// operations in a mixin's operation table.
type RegisterFunc func(host interface{}, event string, fn Handler, opts ...HandlerOpts)

// DeregisterFunc is the shape of the deregister operation in a mixin's
// operation table.
type DeregisterFunc func(host interface{}, event, tag string)

// EmitFunc is the shape of the emit operation in a mixin's operation
// table.
type EmitFunc func(host interface{}, event string, args ...interface{}) []interface{}

// Mixin is the capability object produced by New. It exposes exactly
// four operations under the configured names and owns the private
// store when the private storage policy is selected.
//
// A Mixin is not safe for concurrent use from multiple goroutines.
// Emission is synchronous and re-entrant: a handler may register,
// deregister, or emit on the same mixin, and such nested calls operate
// on the live store. Internal locking would deadlock a re-entrant
// emit, so callers driving a mixin from several goroutines must
// serialize access themselves.
type Mixin struct {
	names   Config
	ops     map[string]interface{}
	private *Store
}

// New constructs a mixin from an optional naming configuration. Empty
// configuration fields take the default operation and storage names.
//
// The operation table is populated in the order register, once,
// deregister, emit; colliding configured names silently overwrite
// earlier entries. No validation is performed.
func New(cfgs ...Config) *Mixin {
	var cfg Config
	if len(cfgs) > 0 {
		cfg = cfgs[0]
	}
	cfg.applyDefaults()

	m := &Mixin{
		names: cfg,
		ops:   make(map[string]interface{}, 4),
	}
	if cfg.StorageName == PrivateStorage {
		m.private = new(Store)
	}

	m.ops[cfg.RegisterName] = RegisterFunc(m.register)
	m.ops[cfg.OnceName] = RegisterFunc(m.registerOnce)
	m.ops[cfg.DeregisterName] = DeregisterFunc(m.deregister)
	m.ops[cfg.EmitName] = EmitFunc(m.emit)

	hookLogger.WithFields(log.Fields{
		"_block":       "new",
		"register":     cfg.RegisterName,
		"once":         cfg.OnceName,
		"deregister":   cfg.DeregisterName,
		"emit":         cfg.EmitName,
		"storage-name": cfg.StorageName,
	}).Debug("mixin created")
	return m
}

// Names returns the resolved naming configuration.
func (m *Mixin) Names() Config {
	return m.names
}

// Ops returns the live operation table, keyed by the configured
// operation names. Replacing an entry rewires the corresponding
// convenience method, and replacing the register entry also changes
// what Once delegates to. An entry replaced with a value of the wrong
// operation type fails at call time.
func (m *Mixin) Ops() map[string]interface{} {
	return m.ops
}

// On registers fn for the event through the configured register
// operation. See HandlerOpts for the optional settings.
func (m *Mixin) On(host interface{}, event string, fn Handler, opts ...HandlerOpts) {
	m.ops[m.names.RegisterName].(RegisterFunc)(host, event, fn, opts...)
}

// Once registers fn for a single invocation through the configured
// register-once operation.
func (m *Mixin) Once(host interface{}, event string, fn Handler, opts ...HandlerOpts) {
	m.ops[m.names.OnceName].(RegisterFunc)(host, event, fn, opts...)
}

// Off removes the first registration for the event carrying the tag.
// Unknown tags, events with no registrations, and empty tags are
// silent no-ops.
func (m *Mixin) Off(host interface{}, event, tag string) {
	m.ops[m.names.DeregisterName].(DeregisterFunc)(host, event, tag)
}

// Emit invokes every handler currently registered for the event, in
// descending priority order, and returns their results in invocation
// order. A panicking handler aborts the remaining invocations and the
// once-cleanup for this call.
func (m *Mixin) Emit(host interface{}, event string, args ...interface{}) []interface{} {
	return m.ops[m.names.EmitName].(EmitFunc)(host, event, args...)
}

// Resolves the active store for a host under this mixin's storage
// policy.
func (m *Mixin) storeFor(host interface{}) *Store {
	if m.private != nil {
		return m.private
	}
	k, ok := host.(Keeper)
	if !ok {
		panic("captainhook: host does not expose handler storage; embed captainhook.Host or configure PrivateStorage")
	}
	return k.HookStore(m.names.StorageName)
}

func (m *Mixin) register(host interface{}, event string, fn Handler, opts ...HandlerOpts) {
	var o HandlerOpts
	if len(opts) > 0 {
		o = opts[0]
	}

	context := o.Context
	if context == nil {
		context = host
	}
	priority := o.Priority
	if priority == 0 {
		priority = DefaultPriority
	}

	r := &handlerRecord{
		id:       uuid.New(),
		fn:       fn,
		tag:      o.Tag,
		priority: priority,
		context:  context,
		once:     o.Once,
	}
	m.storeFor(host).insert(event, r)

	hookLogger.WithFields(log.Fields{
		"_block":     "register",
		"event":      event,
		"handler-id": r.id,
		"priority":   r.priority,
		"tag":        r.tag,
		"once":       r.once,
	}).Debug("handler registered")
}

// Delegates through the table entry for the configured register name,
// forcing the once option. Replacing that entry changes this path too.
func (m *Mixin) registerOnce(host interface{}, event string, fn Handler, opts ...HandlerOpts) {
	var o HandlerOpts
	if len(opts) > 0 {
		o = opts[0]
	}
	o.Once = true
	m.ops[m.names.RegisterName].(RegisterFunc)(host, event, fn, o)
}

func (m *Mixin) deregister(host interface{}, event, tag string) {
	if tag == "" {
		return
	}
	if r := m.storeFor(host).removeTag(event, tag); r != nil {
		hookLogger.WithFields(log.Fields{
			"_block":     "deregister",
			"event":      event,
			"tag":        tag,
			"handler-id": r.id,
		}).Debug("handler removed")
	}
}

func (m *Mixin) emit(host interface{}, event string, args ...interface{}) []interface{} {
	s := m.storeFor(host)

	// Snapshot of the list as of this call. Handlers registered during
	// this emit land in the live list (and re-sort it) without joining
	// this invocation pass; they are picked up by the next emit.
	recs := append([]*handlerRecord(nil), s.list(event)...)
	results := make([]interface{}, 0, len(recs))
	for _, r := range recs {
		results = append(results, r.fn(r.context, args...))
	}
	s.sweepOnce(event)

	hookLogger.WithFields(log.Fields{
		"_block":   "emit",
		"event":    event,
		"handlers": len(recs),
	}).Debug("event emitted")
	return results
}
