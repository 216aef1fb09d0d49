package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roost/pkg/domain/model"
	"github.com/secmon-lab/roost/pkg/domain/types"
)

func TestParseRecipient(t *testing.T) {
	t.Run("Numeric user ID", func(t *testing.T) {
		r, err := model.ParseRecipient("123456789012345678")
		gt.NoError(t, err)
		gt.Equal(t, types.UserID("123456789012345678"), r.UserID)
		gt.True(t, r.Resolved())
		gt.Equal(t, "", r.Username)
	})

	t.Run("Username with discriminator", func(t *testing.T) {
		r, err := model.ParseRecipient("alice#0042")
		gt.NoError(t, err)
		gt.Equal(t, "alice", r.Username)
		gt.Equal(t, "0042", r.Discriminator)
		gt.False(t, r.Resolved())
		gt.Equal(t, "alice#0042", r.Display())
	})

	t.Run("Surrounding whitespace is trimmed", func(t *testing.T) {
		r, err := model.ParseRecipient("  bob#1234  ")
		gt.NoError(t, err)
		gt.Equal(t, "bob", r.Username)
	})

	t.Run("Empty identifier", func(t *testing.T) {
		r, err := model.ParseRecipient("   ")
		gt.Error(t, err)
		gt.V(t, r).Nil()
	})

	t.Run("Short numeric string is not a user ID", func(t *testing.T) {
		r, err := model.ParseRecipient("1234")
		gt.Error(t, err)
		gt.V(t, r).Nil()
	})

	t.Run("Malformed discriminator", func(t *testing.T) {
		for _, raw := range []string{"alice#42", "alice#abcd", "#1234"} {
			r, err := model.ParseRecipient(raw)
			gt.Error(t, err)
			gt.V(t, r).Nil()
		}
	})
}

func TestRecipientClone(t *testing.T) {
	orig, err := model.ParseRecipient("carol#9999")
	gt.NoError(t, err)

	cp := orig.Clone()
	cp.UserID = "42424242424242"

	gt.False(t, orig.Resolved())
	gt.True(t, cp.Resolved())
	gt.Equal(t, "carol", cp.Username)
}
