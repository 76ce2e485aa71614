package scheduler

import "sync"

// BatchResult resume uma rodada de processamento sobre as contas
// ativas. Os contadores valem a pena mesmo quando a rodada inteira
// falha: total = success_count + error_count + skipped_count.
type BatchResult struct {
	Total        int `json:"total"`
	SuccessCount int `json:"success_count"`
	ErrorCount   int `json:"error_count"`
	SkippedCount int `json:"skipped_count"`
}

// batchCounter acumula os contadores de uma rodada com segurança entre
// os workers concorrentes
type batchCounter struct {
	mu     sync.Mutex
	result BatchResult
}

func newBatchCounter(total int) *batchCounter {
	return &batchCounter{result: BatchResult{Total: total}}
}

func (c *batchCounter) success() {
	c.mu.Lock()
	c.result.SuccessCount++
	c.mu.Unlock()
}

func (c *batchCounter) failure() {
	c.mu.Lock()
	c.result.ErrorCount++
	c.mu.Unlock()
}

func (c *batchCounter) skip() {
	c.mu.Lock()
	c.result.SkippedCount++
	c.mu.Unlock()
}

func (c *batchCounter) snapshot() BatchResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}
