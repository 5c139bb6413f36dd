package reflect

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/types/known/timestamppb"
)

type testNote struct {
	Guid    string `json:"guid"`
	Content string `json:"content,omitempty"`
}

type ctxKey struct{}

var errNoteNotFound = errors.New("note not found")

var testParamNames = map[string][]string{
	"Counts":      {"counts"},
	"Echo":        {"value"},
	"Explode":     {},
	"Fail":        {"reason"},
	"GetNote":     {"guid", "withContent"},
	"Join":        {"sep", "parts"},
	"Nothing":     {},
	"Pair":        {"left", "right"},
	"Search":      {"tags"},
	"Stamp":       {"ts"},
	"Stamps":      {"ts"},
	"Tagged":      {"tags"},
	"Untyped":     {"values"},
	"Wrong":       {"a", "b", "c"},
	"WithContext": {"ctx", "id"},
}

// testStore plays the concrete store client.
type testStore struct {
	calls int
}

func (s *testStore) GetNote(guid string, withContent bool) (*testNote, error) {
	s.calls++
	if guid == "" {
		return nil, errNoteNotFound
	}

	note := &testNote{Guid: guid}
	if withContent {
		note.Content = "<en-note/>"
	}

	return note, nil
}

func (s *testStore) Search(tags []string) []string { return tags }

func (s *testStore) Echo(value string) string { return value }

func (s *testStore) Join(sep string, parts ...string) string { return strings.Join(parts, sep) }

func (s *testStore) Tagged(tags map[string]struct{}) int { return len(tags) }

func (s *testStore) Untyped(values []any) int { return len(values) }

func (s *testStore) Counts(counts map[string]int32) map[string]int32 { return counts }

func (s *testStore) Stamp(ts *timestamppb.Timestamp) int64 { return ts.GetSeconds() }

func (s *testStore) Stamps(ts []*timestamppb.Timestamp) int { return len(ts) }

func (s *testStore) WithContext(ctx context.Context, id string) string {
	prefix, _ := ctx.Value(ctxKey{}).(string)
	return prefix + ":" + id
}

func (s *testStore) Fail(reason string) error {
	if reason == "" {
		return nil
	}
	return errors.New(reason)
}

func (s *testStore) Explode() { panic("boom") }

func (s *testStore) Pair(left string, right int) (string, int) { return left, right }

func (s *testStore) Nothing() {}

func (s *testStore) Unnamed(a string) string { return a }

func (s *testStore) Wrong(a string) string { return a }

func (s *testStore) ParameterNames(method string) []string {
	return testParamNames[method]
}

// renamedStore publishes operation names that differ from its Go method names.
type renamedStore struct{}

func (renamedStore) GetNoteStoreURL() string { return "https://sandbox.evernote.com/shard/s1/notestore" }

func (renamedStore) FunctionName(method string) string {
	if method == "GetNoteStoreURL" {
		return "getNoteStoreUrl"
	}
	return ""
}

func (renamedStore) ParameterNames(string) []string { return []string{} }

// aliasedStore maps two Go methods onto one operation name.
type aliasedStore struct{}

func (aliasedStore) Alpha() string { return "alpha" }

func (aliasedStore) Beta() string { return "beta" }

func (aliasedStore) FunctionName(string) string { return "same" }

func (aliasedStore) ParameterNames(string) []string { return []string{} }

// decorator fronts a store client the way an operations template does.
type decorator struct {
	inner any
}

func (d decorator) StoreClient() any { return d.inner }

func (d decorator) String() string { return fmt.Sprintf("decorator(%T)", d.inner) }
