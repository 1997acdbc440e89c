package session

import (
	"math"
	"reflect"
)

// PrincipalKey is the reserved data key holding the principal identifier of
// an established login.
const PrincipalKey = "user"

// Session is the per-request session sub-object. It holds at most one
// principal identifier plus free-form application data.
type Session struct {
	Data map[string]any `json:"data,omitempty"`
}

// New creates an empty session.
func New() *Session {
	return &Session{Data: make(map[string]any)}
}

// Principal returns the stored principal identifier and whether it counts as
// present according to IsPresent.
func (s *Session) Principal() (any, bool) {
	id, ok := s.Get(PrincipalKey)
	if !ok || !IsPresent(id) {
		return nil, false
	}
	return id, true
}

// SetPrincipal records the identifier of an authenticated principal.
func (s *Session) SetPrincipal(id any) {
	s.Set(PrincipalKey, id)
}

// RemovePrincipal deletes the principal identifier, leaving other data intact.
func (s *Session) RemovePrincipal() {
	s.Delete(PrincipalKey)
}

// IsAuthenticated returns true if the session holds a present principal identifier
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Principal()
	return ok
}

// Get retrieves a value from session data
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// GetString retrieves a string value from session data
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// GetInt retrieves an int value from session data
func (s *Session) GetInt(key string) (int, bool) {
	val, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetBool retrieves a bool value from session data
func (s *Session) GetBool(key string) (bool, bool) {
	val, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := val.(bool)
	return b, ok
}

// Set stores a value in session data
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}

// Delete removes a value from session data
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
}

// Clear removes all data from the session
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = make(map[string]any)
}

// IsPresent reports whether v counts as a stored principal identifier.
//
// Empty strings, false, NaN and nil values (including typed nil pointers, maps
// and slices) are absent. Every number other than NaN is present, zero
// included, so numeric identifiers starting at 0 restore correctly.
//
// The rule mirrors JavaScript's `v || v === 0`: a value is present when it is
// truthy or exactly zero. Go-only kinds without a JavaScript counterpart, such
// as structs and non-nil empty maps, are treated as truthy objects.
func IsPresent(v any) bool {
	if v == nil {
		return false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(rv.Float())
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	default:
		return true
	}
}
