package demoserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/raysh454/phishlens/internal/assessor"
	"github.com/raysh454/phishlens/internal/demoserver"
	"github.com/raysh454/phishlens/internal/testutil"
)

func fetch(t *testing.T, url string) string {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d", url, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

// Every sample page, assessed against its claimed URL, produces exactly the
// reasons it advertises.
func TestDemoPages_ProduceExpectedReasons(t *testing.T) {
	logger := &testutil.DummyLogger{}
	ts := httptest.NewServer(demoserver.NewDemoServer(demoserver.DefaultConfig(), logger).Handler())
	defer ts.Close()

	a, err := assessor.NewHeuristicsAssessor(assessor.DefaultConfig(), logger)
	if err != nil {
		t.Fatalf("NewHeuristicsAssessor: %v", err)
	}

	for _, p := range demoserver.GetAllPages() {
		t.Run(p.Name, func(t *testing.T) {
			html := fetch(t, ts.URL+p.Path)
			res, err := a.Assess(context.Background(), p.ClaimedURL, html)
			if err != nil {
				t.Fatalf("Assess: %v", err)
			}
			if len(res.Reasons) != len(p.ExpectedReasons) {
				t.Fatalf("reasons = %v, want %v", res.Reasons, p.ExpectedReasons)
			}
			for i := range p.ExpectedReasons {
				if res.Reasons[i] != p.ExpectedReasons[i] {
					t.Errorf("reason[%d] = %q, want %q", i, res.Reasons[i], p.ExpectedReasons[i])
				}
			}
		})
	}
}

func TestDemoServer_IndexAndJSON(t *testing.T) {
	ts := httptest.NewServer(demoserver.NewDemoServer(demoserver.DefaultConfig(), &testutil.DummyLogger{}).Handler())
	defer ts.Close()

	index := fetch(t, ts.URL+"/")
	for _, p := range demoserver.GetAllPages() {
		if !strings.Contains(index, p.Path) {
			t.Errorf("index does not link %s", p.Path)
		}
	}

	var pages []demoserver.PageDefinition
	if err := json.Unmarshal([]byte(fetch(t, ts.URL+"/demo/pages.json")), &pages); err != nil {
		t.Fatalf("decode pages.json: %v", err)
	}
	if len(pages) != len(demoserver.GetAllPages()) {
		t.Errorf("expected %d pages, got %d", len(demoserver.GetAllPages()), len(pages))
	}

	if body := fetch(t, ts.URL+"/static/logo.png"); !strings.HasPrefix(body, "GIF89a") {
		t.Errorf("expected placeholder gif")
	}
}
