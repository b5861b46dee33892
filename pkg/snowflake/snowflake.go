// Package snowflake generates time-ordered int64 IDs.
package snowflake

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	mu   sync.RWMutex
	node *snowflake.Node
)

// Init configures the generator for the given node (0-1023). It may be called again to switch nodes.
func Init(nodeID int64) error {
	n, err := snowflake.NewNode(nodeID)
	if err != nil {
		return fmt.Errorf("create snowflake node %d: %w", nodeID, err)
	}
	mu.Lock()
	node = n
	mu.Unlock()
	return nil
}

// NextID returns a new unique ID. Init must have been called.
func NextID() int64 {
	mu.RLock()
	n := node
	mu.RUnlock()
	if n == nil {
		panic("snowflake: NextID called before Init")
	}
	return n.Generate().Int64()
}
