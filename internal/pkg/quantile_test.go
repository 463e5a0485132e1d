package pkg

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuantile(t *testing.T) {
	assert := assert.New(t)

	q := NewQuantile(100)
	assert.Equal(q.Quantile(0.5), time.Duration(0))

	for i := 100; i > 0; i-- {
		q.Add(time.Duration(i))
	}
	assert.Equal(q.Len(), 100)
	assert.Equal(q.Quantile(0), time.Duration(1))
	assert.Equal(q.Quantile(0.9), time.Duration(91))
	assert.Equal(q.Quantile(1), time.Duration(100))

	var buf bytes.Buffer
	q.Print(&buf)
	assert.Contains(buf.String(), "90th: 91ns")
	assert.Contains(buf.String(), "max: 100ns")
}
