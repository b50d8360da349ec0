// Package snowflake wraps a process-wide snowflake ID generator.
package snowflake

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.Mutex
	node *snowflake.Node
)

// Init configures the generator for the given node ID (0-1023).
// It may be called again to re-initialize, which is only useful in tests.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("snowflake init: %w", err)
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns the next unique ID. Init must have been called first.
func NextID() int64 {
	mu.Lock()
	n := node
	mu.Unlock()
	if n == nil {
		panic("snowflake: NextID called before Init")
	}
	return n.Generate().Int64()
}
