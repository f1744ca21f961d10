package memory_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/petasbytes/sous-chef/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	return memory.NewStore(filepath.Join(t.TempDir(), "memory_bank.json"))
}

func TestStore_RoundTrip(t *testing.T) {
	s := newStore(t)

	in := memory.NewRecord()
	in.AddToPantry([]string{"eggs", "rice"})
	in.AddFeedback("Omelette", "like")
	in.AddFeedback("Liver", "dislike")
	require.NoError(t, s.Save("alice", in))

	out, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, in.PantryItems(), out.PantryItems())
	assert.Equal(t, in.LikedRecipes(), out.LikedRecipes())
	assert.Equal(t, in.DislikedRecipes(), out.DislikedRecipes())
}

func TestStore_LoadMissingFile_Empty(t *testing.T) {
	s := newStore(t)

	r, err := s.Load("alice")
	require.NoError(t, err)
	assert.Empty(t, r.PantryItems())
	assert.Empty(t, r.LikedRecipes())
}

func TestStore_LoadCorruptFile_Empty(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("{oops"), 0o644))

	r, err := s.Load("alice")
	require.NoError(t, err)
	assert.Empty(t, r.PantryItems())
}

func TestStore_LoadUndecodableEntry_Empty(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{"alice": 5}`), 0o644))

	r, err := s.Load("alice")
	require.NoError(t, err)
	assert.Empty(t, r.PantryItems())
}

func TestStore_SaveOverCorruptFile(t *testing.T) {
	s := newStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("not json"), 0o644))

	r := memory.NewRecord()
	r.AddToPantry([]string{"oats"})
	require.NoError(t, s.Save("alice", r))

	got, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"oats"}, got.PantryItems())
}

func TestStore_MultiUserIsolation(t *testing.T) {
	s := newStore(t)

	bob := memory.NewRecord()
	bob.AddToPantry([]string{"beans"})
	bob.AddFeedback("Chili", "like")
	require.NoError(t, s.Save("bob", bob))

	alice := memory.NewRecord()
	alice.AddToPantry([]string{"kale"})
	require.NoError(t, s.Save("alice", alice))
	alice.AddToPantry([]string{"lemon"})
	require.NoError(t, s.Save("alice", alice))

	gotBob, err := s.Load("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"beans"}, gotBob.PantryItems())
	assert.Equal(t, []string{"chili"}, gotBob.LikedRecipes())

	gotAlice, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"kale", "lemon"}, gotAlice.PantryItems())
}

func TestStore_SaveMergesAgainstDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory_bank.json")
	first := memory.NewStore(path)
	second := memory.NewStore(path)

	// alice's agent loaded before bob's data existed
	alice, err := first.Load("alice")
	require.NoError(t, err)

	bob := memory.NewRecord()
	bob.AddToPantry([]string{"tofu"})
	require.NoError(t, second.Save("bob", bob))

	alice.AddToPantry([]string{"miso"})
	require.NoError(t, first.Save("alice", alice))

	gotBob, err := first.Load("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"tofu"}, gotBob.PantryItems())
}

func TestStore_FileShape(t *testing.T) {
	s := newStore(t)
	r := memory.NewRecord()
	r.AddToPantry([]string{"b", "a"})
	require.NoError(t, s.Save("cli_user", r))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var bank map[string]map[string][]string
	require.NoError(t, json.Unmarshal(b, &bank))
	require.Contains(t, bank, "cli_user")
	assert.Equal(t, []string{"a", "b"}, bank["cli_user"]["pantry"])
	assert.NotNil(t, bank["cli_user"]["liked_recipes"])
	assert.NotNil(t, bank["cli_user"]["disliked_recipes"])
}

func TestStore_ReadErrorSurfaces(t *testing.T) {
	dir := t.TempDir()
	// a directory where the file should be is a read failure, not "missing"
	s := memory.NewStore(dir)

	_, err := s.Load("alice")
	assert.Error(t, err)
	assert.Error(t, s.Save("alice", memory.NewRecord()))
}

func TestStore_LoadReconcilesEntries(t *testing.T) {
	s := newStore(t)
	bank := `{"alice": {
		"pantry": [" Eggs ", "eggs", ""],
		"liked_recipes": ["Soup", "Stew"],
		"disliked_recipes": ["soup", " "]
	}}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(bank), 0o644))

	r, err := s.Load("alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"eggs"}, r.PantryItems())
	assert.Equal(t, []string{"stew"}, r.LikedRecipes())
	assert.Equal(t, []string{"soup"}, r.DislikedRecipes())
}
