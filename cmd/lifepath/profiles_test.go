package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Veraticus/lifepath/internal/common"
	"github.com/Veraticus/lifepath/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilesFlow(t *testing.T) {
	dbPath := useTempDB(t)
	ctx := context.Background()

	out, _, err := execute(t, profilesCmd(), "", "add", writeProfile(t, "name: Grace Hopper\ndob: 1906-12-09\nlocation: Arlington\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "Saved Grace Hopper as")

	_, _, err = execute(t, profilesCmd(), "", "add", writeProfile(t, "name: Alan Turing\ndob: 1912-06-23\n"))
	require.NoError(t, err)

	store := openStore(t, dbPath)
	list, err := store.ListProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alan Turing", list[0].Name)
	grace := list[1]

	t.Run("list", func(t *testing.T) {
		out, _, err := execute(t, profilesCmd(), "", "list", "--mode", "print")
		require.NoError(t, err)
		assert.Contains(t, out, "Grace Hopper")
		assert.Contains(t, out, "Alan Turing")
		assert.Contains(t, out, grace.ID)
	})

	t.Run("search", func(t *testing.T) {
		out, _, err := execute(t, profilesCmd(), "", "list", "--search", "hop", "--format", "json")
		require.NoError(t, err)

		var got []model.UserProfile
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		require.Len(t, got, 1)
		assert.Equal(t, grace.ID, got[0].ID)
	})

	t.Run("show without snapshot", func(t *testing.T) {
		out, _, err := execute(t, profilesCmd(), "", "show", grace.ID, "--format", "json")
		require.NoError(t, err)

		var got planOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "Arlington", got.Profile.Location)
		assert.Len(t, got.Pathway.Epochs, 10)

		snaps, err := store.ListSnapshots(ctx, grace.ID)
		require.NoError(t, err)
		assert.Empty(t, snaps)
	})

	t.Run("refresh", func(t *testing.T) {
		out, _, err := execute(t, profilesCmd(), "", "refresh", "--start-year", "2031")
		require.NoError(t, err)
		assert.Contains(t, out, "Refreshed 2 profiles from 2031")

		for _, p := range list {
			snap, err := store.GetLatestSnapshot(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, 2031, snap.StartYear)
		}
	})

	t.Run("show latest snapshot", func(t *testing.T) {
		out, _, err := execute(t, profilesCmd(), "", "show", grace.ID, "--format", "json")
		require.NoError(t, err)

		var got planOutput
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "2031", got.Pathway.Epochs[0].Years)
	})

	t.Run("show unknown", func(t *testing.T) {
		_, _, err := execute(t, profilesCmd(), "", "show", "missing")
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("delete declined", func(t *testing.T) {
		out, _, err := execute(t, profilesCmd(), "n\n", "delete", grace.ID)
		require.NoError(t, err)
		assert.Contains(t, out, "Delete Grace Hopper")
		assert.Contains(t, out, "Deletion cancelled.")

		_, err = store.GetProfile(ctx, grace.ID)
		assert.NoError(t, err)
	})

	t.Run("delete confirmed", func(t *testing.T) {
		out, _, err := execute(t, profilesCmd(), "y\n", "delete", grace.ID)
		require.NoError(t, err)
		assert.Contains(t, out, "Deleted Grace Hopper")

		_, err = store.GetProfile(ctx, grace.ID)
		assert.ErrorIs(t, err, common.ErrNotFound)
		snaps, err := store.ListSnapshots(ctx, grace.ID)
		require.NoError(t, err)
		assert.Empty(t, snaps)
	})

	t.Run("delete forced", func(t *testing.T) {
		_, _, err := execute(t, profilesCmd(), "", "delete", list[0].ID, "--force")
		require.NoError(t, err)

		remaining, err := store.ListProfiles(ctx)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("list empty", func(t *testing.T) {
		out, _, err := execute(t, profilesCmd(), "", "list")
		require.NoError(t, err)
		assert.Equal(t, "No saved profiles.\n", out)
	})
}

func TestProfilesAdd_Duplicate(t *testing.T) {
	useTempDB(t)

	path := writeProfile(t, "id: fixed-id\nname: Katherine Johnson\ndob: 1918-08-26\n")
	_, _, err := execute(t, profilesCmd(), "", "add", path)
	require.NoError(t, err)

	_, _, err = execute(t, profilesCmd(), "", "add", path)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)
	assert.Contains(t, common.UserMessage(err), "--replace")

	_, _, err = execute(t, profilesCmd(), "", "add", path, "--replace")
	assert.NoError(t, err)
}

func TestProfilesAdd_Invalid(t *testing.T) {
	useTempDB(t)

	_, _, err := execute(t, profilesCmd(), "", "add", writeProfile(t, "name: \"\"\ndob: 1918-13-40\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidProfile)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "dob must be a valid date")
}

func TestProfilesRefresh_Empty(t *testing.T) {
	useTempDB(t)

	out, _, err := execute(t, profilesCmd(), "", "refresh")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved profiles.")
}
