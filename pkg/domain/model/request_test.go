package model_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/roost/pkg/domain/model"
)

func TestSanitizeSpaceName(t *testing.T) {
	t.Run("Disallowed characters are stripped", func(t *testing.T) {
		name, err := model.SanitizeSpaceName("Team <Alpha>!")
		gt.NoError(t, err)
		gt.Equal(t, "Team Alpha", name)
	})

	t.Run("Underscores and hyphens survive", func(t *testing.T) {
		name, err := model.SanitizeSpaceName("proj_x-2")
		gt.NoError(t, err)
		gt.Equal(t, "proj_x-2", name)
	})

	t.Run("Long names are truncated", func(t *testing.T) {
		name, err := model.SanitizeSpaceName(strings.Repeat("a", 200))
		gt.NoError(t, err)
		gt.Equal(t, 95, len(name))
	})

	t.Run("Name empty after sanitization", func(t *testing.T) {
		_, err := model.SanitizeSpaceName("!!!???")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})
}

func TestNewProvisionRequest(t *testing.T) {
	t.Run("Defaults applied", func(t *testing.T) {
		req, err := model.NewProvisionRequest([]string{"Alpha", "Beta"}, nil, model.Options{})
		gt.NoError(t, err)
		gt.Equal(t, []string{"Alpha", "Beta"}, req.Spaces)
		gt.Equal(t, 2, req.Concurrency)
		gt.Equal(t, model.DefaultRetryPolicy(), req.Retry)
	})

	t.Run("Duplicate names and order preserved", func(t *testing.T) {
		req, err := model.NewProvisionRequest([]string{"X", "X", "Y"}, nil, model.Options{})
		gt.NoError(t, err)
		gt.Equal(t, []string{"X", "X", "Y"}, req.Spaces)
	})

	t.Run("Empty list rejected", func(t *testing.T) {
		_, err := model.NewProvisionRequest(nil, nil, model.Options{})
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})

	t.Run("Invalid name rejected", func(t *testing.T) {
		_, err := model.NewProvisionRequest([]string{"ok", "???"}, nil, model.Options{})
		gt.Error(t, err)
	})
}

func TestProvisionRequestValidate(t *testing.T) {
	recipient := &model.Recipient{Raw: "dave#1234", Username: "dave", Discriminator: "1234"}

	t.Run("Valid request", func(t *testing.T) {
		req, err := model.NewProvisionRequest([]string{"Alpha"}, recipient, model.Options{DirectMessage: true})
		gt.NoError(t, err)
		gt.NoError(t, req.Validate())
	})

	t.Run("Onboarding enabled without recipient", func(t *testing.T) {
		req, err := model.NewProvisionRequest([]string{"Alpha"}, nil, model.Options{FriendRequest: true})
		gt.NoError(t, err)
		gt.Error(t, req.Validate())
	})

	t.Run("No onboarding needs no recipient", func(t *testing.T) {
		req, err := model.NewProvisionRequest([]string{"Alpha"}, nil, model.Options{})
		gt.NoError(t, err)
		gt.NoError(t, req.Validate())
	})

	t.Run("Concurrency below one", func(t *testing.T) {
		req, err := model.NewProvisionRequest([]string{"Alpha"}, nil, model.Options{})
		gt.NoError(t, err)
		req.Concurrency = 0
		err = req.Validate()
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, model.ErrTagConfiguration))
	})
}
