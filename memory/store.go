package memory

import (
	"encoding/json"
	"os"

	"github.com/petasbytes/sous-chef/internal/fsops"
	"github.com/pkg/errors"
)

// storedRecord is the on-disk shape of one user's entry.
type storedRecord struct {
	Pantry          []string `json:"pantry"`
	LikedRecipes    []string `json:"liked_recipes"`
	DislikedRecipes []string `json:"disliked_recipes"`
}

// Store persists Records for many users in a single JSON file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string { return s.path }

// Load returns the Record stored for userID. A missing file, a file that is not
// a JSON object, or an undecodable entry all yield an empty Record and no error.
// Other read failures are returned alongside an empty Record. Entries are
// normalized on the way in; see recordFromStored.
func (s *Store) Load(userID string) (*Record, error) {
	bank, err := s.readBank()
	if err != nil {
		return NewRecord(), err
	}
	raw, ok := bank[userID]
	if !ok {
		return NewRecord(), nil
	}
	var sr storedRecord
	if err := json.Unmarshal(raw, &sr); err != nil {
		return NewRecord(), nil
	}
	return recordFromStored(sr), nil
}

// recordFromStored normalizes names read from disk and drops blanks. A recipe
// listed as both liked and disliked is kept as disliked only.
func recordFromStored(sr storedRecord) *Record {
	rec := NewRecord()
	rec.AddToPantry(sr.Pantry)
	for _, name := range sr.LikedRecipes {
		if Normalize(name) != "" {
			rec.AddFeedback(name, FeedbackLike)
		}
	}
	for _, name := range sr.DislikedRecipes {
		if Normalize(name) != "" {
			rec.AddFeedback(name, FeedbackDislike)
		}
	}
	return rec
}

// Save merges rec into the file under userID. Entries of other users are
// carried over from the current file content, not from any cached copy.
func (s *Store) Save(userID string, rec *Record) error {
	bank, err := s.readBank()
	if err != nil {
		return err
	}

	entry, err := json.Marshal(storedRecord{
		Pantry:          rec.PantryItems(),
		LikedRecipes:    rec.LikedRecipes(),
		DislikedRecipes: rec.DislikedRecipes(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal memory record")
	}
	bank[userID] = entry

	b, err := json.MarshalIndent(bank, "", "    ")
	if err != nil {
		return errors.Wrap(err, "marshal memory bank")
	}
	if err := fsops.WriteFileAtomic(s.path, b, 0o644); err != nil {
		return errors.Wrapf(err, "write memory bank %s", s.path)
	}
	return nil
}

// readBank returns the file as raw per-user entries. Missing or corrupt files
// read as an empty bank.
func (s *Store) readBank() (map[string]json.RawMessage, error) {
	bank := map[string]json.RawMessage{}
	b, err := fsops.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return bank, nil
		}
		return bank, errors.Wrapf(err, "read memory bank %s", s.path)
	}
	if err := json.Unmarshal(b, &bank); err != nil || bank == nil {
		return map[string]json.RawMessage{}, nil
	}
	return bank, nil
}
