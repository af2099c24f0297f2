package events

// Collector gathers events raised while a use case runs so they can be
// published once the state they describe is durable.
type Collector struct {
	events []Event
}

// Record appends evt.
func (c *Collector) Record(evt Event) {
	c.events = append(c.events, evt)
}

// Len reports how many events are pending.
func (c *Collector) Len() int {
	return len(c.events)
}

// Drain returns the pending events and empties the collector.
func (c *Collector) Drain() []Event {
	collected := c.events
	c.events = nil
	return collected
}
