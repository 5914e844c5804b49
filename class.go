package hub

import (
	"context"
)

// Class is a hub for a type of objects. Besides the class level channels of
// the embedded Hub it keeps a separate table per Instance, so subscriptions on
// one object never reach another object or the class level table.
//
// Create a Class with NewClass.
type Class struct {
	*Hub
	instances map[*Instance]table // guarded by Hub.mu
}

// NewClass creates a class with empty class level and instance tables
func NewClass(opts ...Option) *Class {
	return &Class{Hub: New(opts...)}
}

// Sub returns a new class with the same options and empty tables
func (c *Class) Sub() *Class {
	return &Class{Hub: c.Hub.Sub()}
}

// NewInstance returns a new instance handle owned by c
func (c *Class) NewInstance() *Instance {
	return &Instance{id: NewID(), class: c}
}

// BindFor is Bind scoped to inst. A nil instance is ignored.
func (c *Class) BindFor(inst *Instance, names string, cbs ...*Callback) *Class {
	c.init()
	list := splitNames(names)
	cbs = compact(cbs)
	if inst == nil || len(list) == 0 || len(cbs) == 0 {
		return c
	}
	c.mu.Lock()
	if c.instances == nil {
		c.instances = make(map[*Instance]table)
	}
	t, ok := c.instances[inst]
	if !ok {
		t = make(table)
		c.instances[inst] = t
	}
	t.add(list, cbs)
	c.mu.Unlock()
	c.logger.Debug("bound", "instance", inst.ID(), "events", list, "callbacks", len(cbs))
	return c
}

// BindForFunc binds fn scoped to inst and returns its handle
func (c *Class) BindForFunc(inst *Instance, names string, fn Func) *Callback {
	cb := NewCallback(fn)
	if cb == nil || inst == nil {
		return nil
	}
	c.BindFor(inst, names, cb)
	return cb
}

// UnbindFor is Unbind scoped to inst. The class level table is never touched.
func (c *Class) UnbindFor(inst *Instance, names string, cbs ...*Callback) *Class {
	c.init()
	list := splitNames(names)
	if inst == nil || len(list) == 0 {
		return c
	}
	cbs = compact(cbs)
	c.mu.Lock()
	removed := 0
	if t, ok := c.instances[inst]; ok {
		removed = t.remove(list, cbs)
		if len(t) == 0 {
			delete(c.instances, inst)
		}
	}
	c.mu.Unlock()
	if removed > 0 {
		c.logger.Debug("unbound", "instance", inst.ID(), "events", list, "callbacks", removed)
	}
	return c
}

// TriggerFor invokes the callbacks bound to name for inst, then the class
// level callbacks bound to name. Both sets follow Trigger rules on their own:
// ErrStop in the instance set does not keep the class level set from running,
// while any other error is returned right away.
//
// Callbacks can read inst back with InstanceFromContext.
func (c *Class) TriggerFor(ctx context.Context, inst *Instance, name string, args ...any) error {
	c.init()
	if inst != nil {
		c.mu.RLock()
		cbs := c.instances[inst].snapshot(name)
		c.mu.RUnlock()
		if len(cbs) > 0 {
			if err := c.dispatch(ctx, name, inst, cbs, args); err != nil {
				return err
			}
		}
	}
	return c.Hub.trigger(ctx, name, inst, args)
}

// Release drops every subscription scoped to inst
func (c *Class) Release(inst *Instance) {
	c.init()
	if inst == nil {
		return
	}
	c.mu.Lock()
	_, ok := c.instances[inst]
	delete(c.instances, inst)
	c.mu.Unlock()
	if ok {
		c.logger.Debug("released instance", "instance", inst.ID())
	}
}

// Instances returns the number of instances with at least one subscription
func (c *Class) Instances() int {
	c.init()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.instances)
}

// CountFor returns the number of callbacks bound to name for inst
func (c *Class) CountFor(inst *Instance, name string) int {
	c.init()
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.instances[inst][name])
}

// Instance is the identity of an object created from a Class. Two handles
// are the same instance only if they are the same pointer.
type Instance struct {
	id    string
	class *Class
}

// ID returns the instance ID, used in logs and traces
func (i *Instance) ID() string {
	if i == nil {
		return ""
	}
	return i.id
}

// Class returns the class that created the instance
func (i *Instance) Class() *Class {
	if i == nil {
		return nil
	}
	return i.class
}

// Bind binds cbs on the owning class, scoped to i
func (i *Instance) Bind(names string, cbs ...*Callback) *Instance {
	if c := i.Class(); c != nil {
		c.BindFor(i, names, cbs...)
	}
	return i
}

// BindFunc binds fn on the owning class, scoped to i
func (i *Instance) BindFunc(names string, fn Func) *Callback {
	if c := i.Class(); c != nil {
		return c.BindForFunc(i, names, fn)
	}
	return nil
}

// Unbind unbinds on the owning class, scoped to i
func (i *Instance) Unbind(names string, cbs ...*Callback) *Instance {
	if c := i.Class(); c != nil {
		c.UnbindFor(i, names, cbs...)
	}
	return i
}

// Trigger is TriggerFor on the owning class with i
func (i *Instance) Trigger(ctx context.Context, name string, args ...any) error {
	if c := i.Class(); c != nil {
		return c.TriggerFor(ctx, i, name, args...)
	}
	return nil
}

// Release drops every subscription scoped to i
func (i *Instance) Release() {
	if c := i.Class(); c != nil {
		c.Release(i)
	}
}
