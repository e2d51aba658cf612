package cache

// Read and Write give Cache the same synchronous surface as memory.Memory
// (pipeline.MemoryPort) so it can stand in behind the pipeline unchanged,
// resolving the request immediately rather than over the pipelined
// Send*Request/Clock/Busy surface above.
func (c *Cache) Read(addr uint32, n int) (uint32, error) {
	if err := c.SendReadRequest(addr, n); err != nil {
		return 0, err
	}
	for c.Busy() {
		c.Clock()
	}
	return c.GetRequestStatus().Data, nil
}

// Write resolves synchronously; see Read.
func (c *Cache) Write(value, addr uint32, n int) error {
	if err := c.SendWriteRequest(value, addr, n); err != nil {
		return err
	}
	for c.Busy() {
		c.Clock()
	}
	c.GetRequestStatus()
	return nil
}

// GetStartPC delegates to the backing memory.
func (c *Cache) GetStartPC() uint32 { return c.mem.GetStartPC() }

// GetStackPointer delegates to the backing memory.
func (c *Cache) GetStackPointer() uint32 { return c.mem.GetStackPointer() }
