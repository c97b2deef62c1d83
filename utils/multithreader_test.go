package utils_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dryzhkov/anny/utils"
)

func TestMultiThreadCoversRange(t *testing.T) {
	for _, c := range []struct {
		start, end, opsPerThread, threadsPerCPU int
	}{
		{0, 1, 1, 1},
		{0, 100, 1, 1},
		{0, 100, 7, 2},
		{5, 23, 3, 1},
		{0, 1000, 100, 4},
	} {
		hits := make([]int64, c.end)
		utils.MultiThread(c.start, c.end, func(i int) {
			atomic.AddInt64(&hits[i], 1)
		}, c.opsPerThread, c.threadsPerCPU)

		for i := 0; i < c.start; i++ {
			assert.EqualValuesf(t, 0, hits[i], "index %d (outside [%d, %d)) was visited", i, c.start, c.end)
		}
		for i := c.start; i < c.end; i++ {
			assert.EqualValuesf(t, 1, hits[i], "index %d visited %d times", i, hits[i])
		}
	}
}

func TestMultiThreadEmptyRange(t *testing.T) {
	called := false
	utils.MultiThread(3, 3, func(i int) { called = true }, 1, 1)
	utils.MultiThread(5, 2, func(i int) { called = true }, 1, 1)
	assert.False(t, called)
}
