package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecided(t *testing.T) {
	assert.False(t, (&Request{}).Decided(), "a pending request has no status")
	assert.False(t, (&Request{Status: "something-else"}).Decided())
	assert.True(t, (&Request{Status: StatusApproved}).Decided())
	assert.True(t, (&Request{Status: StatusRejected}).Decided())
}
