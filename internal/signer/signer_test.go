package signer

import (
	"strings"
	"testing"
	"time"
)

const (
	testKey    = "76iRl07s0xSN9jqmEWAt79EBJZulIQIsV64FZr2O"
	testKeyAlt = "Xqn2nnO41/L92o1iuXhSLHTbXvY4Z5ZZ62m8mSLA"
	testStamp  = int64(1700000000000)
)

func newTestSigner(t *testing.T) *Signer {
	t.Helper()
	s, err := New(testKey, testKeyAlt, WithClock(func() time.Time {
		return time.UnixMilli(testStamp)
	}))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return s
}

func TestNewRejectsMalformedKeys(t *testing.T) {
	if _, err := New("not base64 !!!", testKeyAlt); err == nil {
		t.Fatal("expected error for malformed default key")
	}
	if _, err := New(testKey, "not base64 !!!"); err == nil {
		t.Fatal("expected error for malformed alternate key")
	}
}

func TestClientTokenGolden(t *testing.T) {
	got := ClientTokenAt(testStamp)
	want := "1700000000000,e41bb805cc23fdc5541917da93d608d5"
	if got != want {
		t.Fatalf("ClientTokenAt(%d) = %q, want %q", testStamp, got, want)
	}
}

func TestClientTokenUsesClock(t *testing.T) {
	s := newTestSigner(t)
	if got := s.ClientToken(); !strings.HasPrefix(got, "1700000000000,") {
		t.Fatalf("expected token for injected clock, got %q", got)
	}
}

func TestCanonicalStringGolden(t *testing.T) {
	url := "https://api.inmoviebox.com/wefeed-mobile-bff/subject-api/get?subjectId=123&b=2&a=1"
	got, err := CanonicalString("GET", "application/json", "application/json", url, nil, testStamp)
	if err != nil {
		t.Fatalf("CanonicalString returned error: %v", err)
	}
	want := "GET\napplication/json\napplication/json\n\n1700000000000\n\n" +
		"/wefeed-mobile-bff/subject-api/get?a=1&b=2&subjectId=123"
	if got != want {
		t.Fatalf("canonical string mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestCanonicalStringStableUnderQueryReordering(t *testing.T) {
	first := "https://example.com/path?b=2&a=1"
	second := "https://example.com/path?a=1&b=2"
	got1, err := CanonicalString("GET", "", "", first, nil, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	got2, err := CanonicalString("GET", "", "", second, nil, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	if got1 != got2 {
		t.Fatalf("expected identical canonical strings:\n%q\n%q", got1, got2)
	}
}

func TestCanonicalStringNoQueryOmitsQuestionMark(t *testing.T) {
	got, err := CanonicalString("POST", "", "", "https://example.com/some/path", nil, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(got, "\n/some/path") {
		t.Fatalf("expected bare path, got %q", got)
	}
}

func TestCanonicalStringBodyFields(t *testing.T) {
	body := []byte(`{"page":1,"perPage":10,"keyword":"inception"}`)
	got, err := CanonicalString("POST", "application/json", "application/json; charset=utf-8",
		"https://api.inmoviebox.com/wefeed-mobile-bff/subject-api/search/v2", body, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	want := "POST\napplication/json\napplication/json; charset=utf-8\n45\n1700000000000\n" +
		"6c9e1609a80ee6f663ecfe7317e0b941\n/wefeed-mobile-bff/subject-api/search/v2"
	if got != want {
		t.Fatalf("canonical string mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestCanonicalStringEmptyBodyDiffersFromNoBody(t *testing.T) {
	withEmpty, err := CanonicalString("POST", "", "", "https://example.com/p", []byte{}, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	without, err := CanonicalString("POST", "", "", "https://example.com/p", nil, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	if withEmpty == without {
		t.Fatal("expected empty body and absent body to canonicalize differently")
	}
	if !strings.Contains(withEmpty, "\n0\n") || !strings.Contains(withEmpty, "d41d8cd98f00b204e9800998ecf8427e") {
		t.Fatalf("expected zero length and empty-body hash, got %q", withEmpty)
	}
}

func TestBodyHashTruncation(t *testing.T) {
	prefix := strings.Repeat("x", bodyHashLimit)
	first, err := CanonicalString("POST", "a", "b", "https://e.com/p", []byte(prefix+"AAA"), testStamp)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CanonicalString("POST", "a", "b", "https://e.com/p", []byte(prefix+"BBB"), testStamp)
	if err != nil {
		t.Fatal(err)
	}
	firstHash := strings.Split(first, "\n")[5]
	secondHash := strings.Split(second, "\n")[5]
	if firstHash != secondHash {
		t.Fatalf("expected identical hashes for identical prefixes, got %q and %q", firstHash, secondHash)
	}
	if firstHash != "21ddc0e4c158629fb61bcfe0bb4c20c6" {
		t.Fatalf("unexpected truncated hash %q", firstHash)
	}
	firstLen := strings.Split(first, "\n")[3]
	if firstLen != "102403" {
		t.Fatalf("body length must cover the full body, got %q", firstLen)
	}
}

func TestSignAtGolden(t *testing.T) {
	s := newTestSigner(t)

	got, err := s.SignAt("GET", "application/json", "application/json",
		"https://api.inmoviebox.com/wefeed-mobile-bff/subject-api/get?subjectId=123&b=2&a=1",
		nil, KeyDefault, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1700000000000|2|hCB4kWvKnglh1KVcRlehuA=="; got != want {
		t.Fatalf("SignAt = %q, want %q", got, want)
	}
}

func TestSignAtPostBodyGolden(t *testing.T) {
	s := newTestSigner(t)
	body := []byte(`{"page":1,"perPage":10,"keyword":"inception"}`)

	got, err := s.SignAt("POST", "application/json", "application/json; charset=utf-8",
		"https://api.inmoviebox.com/wefeed-mobile-bff/subject-api/search/v2",
		body, KeyDefault, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1700000000000|2|O4HI1/wjCsWEX4efd7io6A=="; got != want {
		t.Fatalf("SignAt = %q, want %q", got, want)
	}
}

func TestSignAtAlternateKey(t *testing.T) {
	s := newTestSigner(t)
	body := []byte(`{"page":1,"perPage":10,"keyword":"inception"}`)

	got, err := s.SignAt("POST", "application/json", "application/json; charset=utf-8",
		"https://api.inmoviebox.com/wefeed-mobile-bff/subject-api/search/v2",
		body, KeyAlt, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1700000000000|2|tMFh6b2go8UZd5BZXVcHCA=="; got != want {
		t.Fatalf("SignAt with alt key = %q, want %q", got, want)
	}
}

func TestSignAtEmptyHeaderValues(t *testing.T) {
	s := newTestSigner(t)

	got, err := s.SignAt("GET", "", "",
		"https://api.inmoviebox.com/wefeed-mobile-bff/subject-api/get-ext-captions?subjectId=9&resourceId=5&episode=0",
		nil, KeyDefault, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	if want := "1700000000000|2|pZjDks062e5jelksoyX5qQ=="; got != want {
		t.Fatalf("SignAt = %q, want %q", got, want)
	}
}

func TestSignAtDeterministic(t *testing.T) {
	s := newTestSigner(t)
	url := "https://api.inmoviebox.com/wefeed-mobile-bff/tab/ranking-list?tabId=0&categoryType=1&page=1&perPage=15"

	first, err := s.SignAt("GET", "application/json", "application/json", url, nil, KeyDefault, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.SignAt("GET", "application/json", "application/json", url, nil, KeyDefault, testStamp)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("expected deterministic signatures, got %q then %q", first, second)
	}
}

func TestSignRejectsMalformedURL(t *testing.T) {
	s := newTestSigner(t)
	if _, err := s.Sign("GET", "", "", "https://example.com/%zz?a=%zz", nil, KeyDefault); err == nil {
		t.Fatal("expected error for malformed url")
	}
}
