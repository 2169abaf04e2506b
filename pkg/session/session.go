package session

import (
	"encoding/json"
	"errors"
	"sort"

	"github.com/peterbourgon/diskv/v3"
)

const (
	keyToken   = "token"
	keyEmail   = "email"
	keyCurrent = "current"
)

// ErrNotLoggedIn is returned by commands that need a stored token.
var ErrNotLoggedIn = errors.New("not logged in, run `airbnb login` first")

// Store is the diskv-backed session state.
type Store struct {
	d *diskv.Diskv
}

// Load opens the session store under the configured base path. A nil cfg
// loads the default config.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 1024 * 64,
	})}, nil
}

// Token returns the stored bearer token, empty when signed out.
func (s *Store) Token() string {
	val, err := s.d.Read(keyToken)
	if err != nil {
		return ""
	}
	return string(val)
}

// Email returns the signed-in account email, empty when signed out.
func (s *Store) Email() string {
	val, err := s.d.Read(keyEmail)
	if err != nil {
		return ""
	}
	return string(val)
}

// SignIn stores the credentials a successful login/register returned.
func (s *Store) SignIn(email, token string) error {
	if err := s.d.Write(keyToken, []byte(token)); err != nil {
		return err
	}
	return s.d.Write(keyEmail, []byte(email))
}

// SignOut clears the whole session, including the current-session ids.
func (s *Store) SignOut() error {
	for _, key := range []string{keyToken, keyEmail, keyCurrent} {
		if !s.d.Has(key) {
			continue
		}
		if err := s.d.Erase(key); err != nil {
			return err
		}
	}
	return nil
}

// CurrentIDs returns the session-override listing ids.
func (s *Store) CurrentIDs() []int {
	val, err := s.d.Read(keyCurrent)
	if err != nil {
		return nil
	}
	var ids []int
	if err := json.Unmarshal(val, &ids); err != nil {
		return nil
	}
	return ids
}

// SetCurrentIDs persists the session-override set.
func (s *Store) SetCurrentIDs(ids []int) error {
	sort.Ints(ids)
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.d.Write(keyCurrent, data)
}
