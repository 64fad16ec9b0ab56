/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package radiocult

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestScheduleFetchesAndDecodesShows(t *testing.T) {
	var gotPath, gotAuth, gotStart, gotEnd string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotStart = r.URL.Query().Get("startDate")
		gotEnd = r.URL.Query().Get("endDate")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"schedules":[
			{"id":"s1","title":"Ceol na nGael","start":"2026-03-02T12:00:00Z","end":"2026-03-02T13:00:00Z","duration":60,"media":{"type":"mix","trackId":"trk-1"},"artistIds":["a1"]},
			{"id":"s2","title":"Live Session","start":"2026-03-02T14:00:00Z","end":"2026-03-02T15:00:00Z","duration":60,"media":{"type":"live"}}
		]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "eist-radio", "key-123", zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	shows, err := client.Schedule(context.Background(), start, end)
	if err != nil {
		t.Fatalf("schedule: %v", err)
	}

	if gotPath != "/eist-radio/schedule" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if gotAuth != "Bearer key-123" {
		t.Fatalf("unexpected auth header %q", gotAuth)
	}
	if gotStart != "2026-03-02T00:00:00Z" || gotEnd != "2026-03-08T23:59:59Z" {
		t.Fatalf("unexpected range params %s / %s", gotStart, gotEnd)
	}

	if len(shows) != 2 {
		t.Fatalf("expected 2 shows, got %d", len(shows))
	}
	if shows[0].Media == nil || shows[0].Media.TrackID != "trk-1" {
		t.Fatalf("media not decoded: %+v", shows[0].Media)
	}
	if !shows[0].Start.Equal(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("start not decoded: %v", shows[0].Start)
	}
}

func TestTrackReturnsMatchingTrackOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("trackId"); got != "trk-2" {
			t.Errorf("unexpected trackId param %q", got)
		}
		w.Write([]byte(`{"tracks":[
			{"id":"trk-1","title":"Other"},
			{"id":"trk-2","title":"Ceol na nGael - Mix 14"}
		]}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "eist-radio", "key", zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	track, err := client.Track(context.Background(), "trk-2")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if track == nil || track.Title != "Ceol na nGael - Mix 14" {
		t.Fatalf("unexpected track %+v", track)
	}

	missing, err := client.Track(context.Background(), "trk-9")
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for absent track, got %+v", missing)
	}
}

func TestClientSendsSessionCookies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"artist":{"id":"a1","name":"Niamh"}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "eist-radio", "key", zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Artist(context.Background(), "a1"); err == nil {
		t.Fatal("expected unauthorized error without session cookies")
	}

	client.SetSessionCookies([]*http.Cookie{{Name: "session", Value: "abc"}})
	artist, err := client.Artist(context.Background(), "a1")
	if err != nil {
		t.Fatalf("artist: %v", err)
	}
	if artist.Name != "Niamh" {
		t.Fatalf("unexpected artist %+v", artist)
	}
}

func TestClientReportsAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "eist-radio", "key", zerolog.Nop())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if _, err := client.Schedule(context.Background(), time.Now(), time.Now()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestPlainDescription(t *testing.T) {
	doc := json.RawMessage(`{"content":[
		{"type":"paragraph","content":[{"type":"text","text":"A late night"},{"type":"text","text":"mix."}]},
		{"type":"heading","content":[{"type":"text","text":"ignored"}]}
	]}`)

	if got := PlainDescription(doc); got != "A late night mix." {
		t.Fatalf("PlainDescription = %q", got)
	}

	if got := PlainDescription(json.RawMessage(`"already plain"`)); got != "already plain" {
		t.Fatalf("plain string description = %q", got)
	}
	if got := PlainDescription(nil); got != "" {
		t.Fatalf("nil description = %q", got)
	}
	if got := PlainDescription(json.RawMessage(`[1,2]`)); got != "" {
		t.Fatalf("unparseable description = %q", got)
	}
}
