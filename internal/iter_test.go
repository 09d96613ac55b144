package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"a": 1}
	b := map[string]int{"b": 2, "c": 3}

	got := maps.Collect(IterSeq2Concat(maps.All(a), maps.All(b)))
	assert.Equal(map[string]int{"a": 1, "b": 2, "c": 3}, got)

	count := 0
	for range IterSeq2Concat(maps.All(a), maps.All(b)) {
		count++
		break
	}
	assert.Equal(1, count)
}

func TestIterSeq2Sorted(t *testing.T) {
	assert := assert.New(t)

	a := map[string]int{"b": 2, "a": 1}
	b := map[string]int{"c": 3, "a": 4}

	var keys []string
	var values []int
	for key, value := range IterSeq2Sorted(IterSeq2Concat(maps.All(a), maps.All(b))) {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal([]string{"a", "b", "c"}, keys)
	assert.Equal([]int{4, 2, 3}, values)
}
