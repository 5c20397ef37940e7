package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	act := New("BUILD", "compile")

	assert.Equal(t, "BUILD", act.Category)
	assert.Equal(t, "compile", act.Name)
	assert.False(t, act.Success)
	assert.Empty(t, act.Conclusion)
}

func TestComplete(t *testing.T) {
	act := New("BUILD", "compile")
	act.Fail("first attempt")

	act.Complete("42 targets")
	assert.True(t, act.Success)
	assert.Equal(t, "42 targets", act.Conclusion)
}

func TestFail(t *testing.T) {
	act := New("TASK", "deploy")
	act.Complete("")

	act.Fail("timeout")
	assert.False(t, act.Success)
	assert.Equal(t, "timeout", act.Conclusion)
}
