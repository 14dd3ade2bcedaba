package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(ts *httptest.Server, token string) *Client {
	return NewClientWithDoer(ts.URL, token, ts.Client())
}

func TestListImageNamesOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != AdminPrefix+PathImagesList {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Expected GET, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"images":["whale/ubuntu","whale/alpine","whale/nginx"],"prefix":"whale"}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	names, err := client.ListImageNames(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []string{"whale/ubuntu", "whale/alpine", "whale/nginx"}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Name %d: expected %s, got %s", i, name, names[i])
		}
	}
}

func TestListImageNamesEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"images":[],"prefix":"whale"}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	names, err := client.ListImageNames(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(names) != 0 {
		t.Errorf("Expected 0 names, got %d", len(names))
	}
}

func TestListImageNamesServerFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"No image prefix configured"}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	_, err := client.ListImageNames(context.Background())
	if err == nil {
		t.Fatal("Expected error for success=false response")
	}
	if !IsServerError(err) {
		t.Errorf("Expected server-reported error, got %T: %v", err, err)
	}
	if err.Error() != "No image prefix configured" {
		t.Errorf("Expected server message, got %q", err.Error())
	}
}

func TestListImageNamesBadBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	_, err := client.ListImageNames(context.Background())
	if err == nil {
		t.Fatal("Expected error for non-JSON body")
	}
	if IsServerError(err) {
		t.Error("Decode failure should not be classified as a server-reported error")
	}
}

func TestListImageNamesCaching(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(`{"success":true,"data":{"images":["whale/alpine"]}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	for i := 0; i < 3; i++ {
		if _, err := client.ListImageNames(context.Background()); err != nil {
			t.Fatalf("Call %d: expected no error, got %v", i, err)
		}
	}

	if requests != 1 {
		t.Errorf("Expected 1 server request for cached list, got %d", requests)
	}
}

func TestRefreshImagesBustsCache(t *testing.T) {
	listRequests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case AdminPrefix + PathImagesList:
			listRequests++
			w.Write([]byte(`{"success":true,"data":{"images":["whale/alpine"]}}`))
		case AdminPrefix + PathImagesRefresh:
			if r.Method != http.MethodPost {
				t.Errorf("Expected POST for refresh, got %s", r.Method)
			}
			w.Write([]byte(`{"success":true,"message":"Refreshed 1 images with prefix \"whale\""}`))
		default:
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	if _, err := client.ListImageNames(context.Background()); err != nil {
		t.Fatalf("First list failed: %v", err)
	}

	msg, err := client.RefreshImages(context.Background())
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	if msg != `Refreshed 1 images with prefix "whale"` {
		t.Errorf("Unexpected refresh message: %q", msg)
	}

	if _, err := client.ListImageNames(context.Background()); err != nil {
		t.Fatalf("Second list failed: %v", err)
	}

	if listRequests != 2 {
		t.Errorf("Expected refresh to invalidate the cached list (2 list requests), got %d", listRequests)
	}
}

func TestRefreshImagesFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"message":"locked"}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	msg, err := client.RefreshImages(context.Background())
	if err == nil {
		t.Fatal("Expected error for success=false refresh")
	}
	if !IsServerError(err) {
		t.Errorf("Expected server-reported error, got %v", err)
	}
	if msg != "locked" {
		t.Errorf("Expected message 'locked', got %q", msg)
	}
}

func TestRequestHeaders(t *testing.T) {
	var got http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Write([]byte(`{"success":true,"data":{"images":[]}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "secret-token")

	if _, err := client.ListImageNames(context.Background()); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if got.Get("Accept") != "application/json" {
		t.Errorf("Expected Accept application/json, got %q", got.Get("Accept"))
	}
	if got.Get("Content-Type") != "application/json" {
		t.Errorf("Expected Content-Type application/json, got %q", got.Get("Content-Type"))
	}
	if got.Get("Authorization") != "Token secret-token" {
		t.Errorf("Expected token auth header, got %q", got.Get("Authorization"))
	}
	if got.Get("X-Request-Id") == "" {
		t.Error("Expected a request id header")
	}
}

func TestDescribeImages(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != AdminPrefix+PathImagesDetail {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(`{"success":true,"data":{"images":[
			{"name":"whale/alpine:3.20","short_name":"alpine:3.20","id":"sha256:abc","size":"7.8 MB","created":"2026-08-01 12:00","architecture":"amd64"}
		],"prefix":"whale","total":1}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	images, err := client.DescribeImages(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("Expected 1 image, got %d", len(images))
	}
	if images[0].DisplayName() != "alpine:3.20" {
		t.Errorf("Expected display name 'alpine:3.20', got %q", images[0].DisplayName())
	}
	if images[0].Size != "7.8 MB" {
		t.Errorf("Expected size '7.8 MB', got %q", images[0].Size)
	}
}

func TestListContainers(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "2" || r.URL.Query().Get("per_page") != "20" {
			t.Errorf("Unexpected paging query: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"success":true,"data":{"containers":[
			{"id":7,"user_id":3,"challenge_id":11,"uuid":"0a1b2c3d-e4f5","port":40123,"renew_count":2,"status":1,"start_time":"2026-08-30 10:00:00"}
		],"total":21,"pages":2,"page_start":20}}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	page, err := client.ListContainers(context.Background(), 2, 20)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if page.Total != 21 || page.Pages != 2 {
		t.Errorf("Unexpected paging totals: %+v", page)
	}
	if len(page.Containers) != 1 {
		t.Fatalf("Expected 1 container, got %d", len(page.Containers))
	}
	if page.Containers[0].ShortUUID() != "0a1b2c3d" {
		t.Errorf("Expected short uuid '0a1b2c3d', got %q", page.Containers[0].ShortUUID())
	}
}

func TestContainerLifecycleCalls(t *testing.T) {
	var gotMethod, gotUser string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotUser = r.URL.Query().Get("user_id")
		w.Write([]byte(`{"success":true,"message":"ok"}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	if _, err := client.RenewContainer(context.Background(), 3); err != nil {
		t.Fatalf("Renew failed: %v", err)
	}
	if gotMethod != http.MethodPatch || gotUser != "3" {
		t.Errorf("Expected PATCH user_id=3, got %s user_id=%s", gotMethod, gotUser)
	}

	if _, err := client.RemoveContainer(context.Background(), 5); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotUser != "5" {
		t.Errorf("Expected DELETE user_id=5, got %s user_id=%s", gotMethod, gotUser)
	}
}

func TestContextCancellation(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"success":true}`))
	}))
	defer ts.Close()

	client := newTestClient(ts, "")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.DescribeImages(ctx)
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}
