package focus

// KeyHandler handles a dispatched key event.
type KeyHandler func(ev *KeyEvent)

// OverrideChain holds at most one pending one-shot interceptor. Setting a new
// one replaces the old one.
type OverrideChain struct {
	handler KeyHandler
	key     string
	token   uint64
	seq     uint64
}

// Set installs fn as the pending override. An empty key matches any key.
func (c *OverrideChain) Set(fn KeyHandler, key string) {
	c.seq++
	c.handler = fn
	c.key = key
	c.token = c.seq
	if fn == nil {
		c.token = 0
	}
}

// Pending reports whether an override is installed.
func (c *OverrideChain) Pending() bool { return c.handler != nil }

// Key returns the pending override's key filter ("" for any key).
func (c *OverrideChain) Key() string { return c.key }

// ShouldFire reports whether the pending override intercepts ev.
func (c *OverrideChain) ShouldFire(ev *KeyEvent) bool {
	if c.handler == nil {
		return false
	}
	return c.key == "" || c.key == ev.Key
}

// Consume runs the pending override and then clears it. The clear only
// applies to the override that ran: one installed by the handler itself
// stays pending.
func (c *OverrideChain) Consume(ev *KeyEvent) {
	fn, token := c.handler, c.token
	if fn == nil {
		return
	}
	defer c.clear(token)
	fn(ev)
}

// take removes the pending override and returns it so the caller can run it
// later. An override installed while it runs stays pending.
func (c *OverrideChain) take() KeyHandler {
	fn := c.handler
	c.clear(c.token)
	return fn
}

func (c *OverrideChain) clear(token uint64) {
	if c.token != token {
		return
	}
	c.handler = nil
	c.key = ""
	c.token = 0
}
