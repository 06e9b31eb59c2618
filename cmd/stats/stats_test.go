package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

const (
	testSince = "20200202 10:00:00"
	testUntil = "20200202 10:02:00"
)

// backend serves two pages of answers and their comments.
//
// page 1: 111 (q1, score 5, accepted), 222 (q1, score 2, accepted)
// page 2: 333 (q2, score 1)
// comments: 111 -> 2, 222 -> 0, 333 -> 1
type backend struct {
	mu       sync.Mutex
	failPage int
	queries  []string
}

func newBackend(t *testing.T, failPage int) (*backend, *httptest.Server) {
	t.Helper()

	b := &backend{failPage: failPage}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /answers", b.answers)
	mux.HandleFunc("GET /answers/{id}/comments", b.comments)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return b, srv
}

func (b *backend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.queries = append(b.queries, r.URL.Path+"?"+r.URL.RawQuery)
}

func (b *backend) requests() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.queries...)
}

func (b *backend) answers(w http.ResponseWriter, r *http.Request) {
	b.record(r)

	page := r.URL.Query().Get("page")
	if page == strconv.Itoa(b.failPage) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error_id":502,"error_name":"throttle_violation","error_message":"slow down"}`))
		return
	}

	var body string
	switch page {
	case "1":
		body = `{"items":[` +
			`{"answer_id":111,"question_id":1,"score":5,"is_accepted":true},` +
			`{"answer_id":222,"question_id":1,"score":2,"is_accepted":true}` +
			`],"has_more":true}`
	case "2":
		body = `{"items":[{"answer_id":333,"question_id":2,"score":1,"is_accepted":false}],"has_more":false}`
	default:
		body = `{"items":[],"has_more":false}`
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}

func (b *backend) comments(w http.ResponseWriter, r *http.Request) {
	b.record(r)

	n := map[string]int{"111": 2, "222": 0, "333": 1}[r.PathValue("id")]
	items := make([]map[string]int, n)
	for i := range items {
		items[i] = map[string]int{"comment_id": i + 1}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"items": items, "has_more": false})
}

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// goldenCase is one entry of testdata/golden.yaml.
type goldenCase struct {
	Name     string   `yaml:"name"`
	Args     []string `yaml:"args"`
	FailPage int      `yaml:"fail_page"`
	Exit     int      `yaml:"exit"`
	Stdout   string   `yaml:"stdout"`
}

func loadGoldenCases(t *testing.T) []goldenCase {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "golden.yaml"))
	if err != nil {
		t.Fatalf("failed to read golden file: %v", err)
	}

	var cases []goldenCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("failed to parse golden file: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("golden file has no cases")
	}
	return cases
}

func TestRun_Golden(t *testing.T) {
	t.Parallel()

	for _, tc := range loadGoldenCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			_, srv := newBackend(t, tc.FailPage)

			args := append([]string{"--since", testSince, "--until", testUntil, "--api-url", srv.URL}, tc.Args...)
			code, stdout, stderr := runCLI(args...)
			if code != tc.Exit {
				t.Errorf("exit code = %d, want %d; stderr: %s", code, tc.Exit, stderr)
			}
			if diff := cmp.Diff(tc.Stdout, stdout); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
			if tc.Exit == exitOK && stderr != "" {
				t.Errorf("expected empty stderr, got %q", stderr)
			}
		})
	}
}

func TestRun_HTMLTable(t *testing.T) {
	t.Parallel()

	_, srv := newBackend(t, 0)

	code, stdout, stderr := runCLI("--since", testSince, "--until", testUntil, "--output-format", "html", "--api-url", srv.URL)
	if code != exitOK {
		t.Fatalf("exit code = %d; stderr: %s", code, stderr)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stdout))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}

	outer := doc.Find(`table[border="1"]`)
	if outer.Length() != 1 {
		t.Fatalf("expected one bordered table, got %d", outer.Length())
	}

	var keys []string
	outer.ChildrenFiltered("tbody").ChildrenFiltered("tr").Each(func(_ int, row *goquery.Selection) {
		keys = append(keys, row.ChildrenFiltered("th").Text())
	})
	wantKeys := []string{
		"total_accepted_answers",
		"accepted_answers_average_score",
		"average_answers_per_question",
		"top_ten_answers_comment_count",
	}
	if diff := cmp.Diff(wantKeys, keys); diff != "" {
		t.Errorf("row keys mismatch (-want +got):\n%s", diff)
	}

	var nested [][2]string
	outer.Find("td table tr").Each(func(_ int, row *goquery.Selection) {
		nested = append(nested, [2]string{row.Find("th").Text(), row.Find("td").Text()})
	})
	wantNested := [][2]string{{"111", "2"}, {"222", "0"}, {"333", "1"}}
	if diff := cmp.Diff(wantNested, nested); diff != "" {
		t.Errorf("nested rows mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_DefaultFormatIsJSON(t *testing.T) {
	t.Parallel()

	_, srv := newBackend(t, 0)

	code, stdout, _ := runCLI("--since", testSince, "--until", testUntil, "--api-url", srv.URL)
	if code != exitOK {
		t.Fatalf("exit code = %d, want %d", code, exitOK)
	}
	if !strings.HasPrefix(stdout, `{"total_accepted_answers": 2, `) {
		t.Errorf("expected JSON output, got %q", stdout)
	}
}

func TestRun_Requests(t *testing.T) {
	t.Parallel()

	b, srv := newBackend(t, 0)

	if code, _, stderr := runCLI("--since", testSince, "--until", testUntil, "--api-url", srv.URL); code != exitOK {
		t.Fatalf("exit code = %d; stderr: %s", code, stderr)
	}

	since := localUnix(t, testSince)
	until := localUnix(t, testUntil)
	dates := "fromdate=" + since + "&order=desc"
	expected := []string{
		"/answers?" + dates + "&page=1&site=stackoverflow&sort=votes&todate=" + until,
		"/answers?" + dates + "&page=2&site=stackoverflow&sort=votes&todate=" + until,
		"/answers/111/comments?order=desc&site=stackoverflow&sort=creation",
		"/answers/222/comments?order=desc&site=stackoverflow&sort=creation",
		"/answers/333/comments?order=desc&site=stackoverflow&sort=creation",
	}
	if diff := cmp.Diff(expected, b.requests()); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
}

func localUnix(t *testing.T, s string) string {
	t.Helper()

	tm, err := time.ParseInLocation("20060102 15:04:05", s, time.Local)
	if err != nil {
		t.Fatal(err)
	}
	return strconv.FormatInt(tm.Unix(), 10)
}

func TestRun_UsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing since",
			args:    []string{"--until", testUntil},
			wantErr: `required flag "since" not set`,
		},
		{
			name:    "missing until",
			args:    []string{"--since", testSince},
			wantErr: `required flag "until" not set`,
		},
		{
			name:    "unknown format",
			args:    []string{"--since", testSince, "--until", testUntil, "--output-format", "xml"},
			wantErr: `unknown output format "xml"`,
		},
		{
			name:    "format is case-sensitive",
			args:    []string{"--since", testSince, "--until", testUntil, "--output-format", "JSON"},
			wantErr: `unknown output format "JSON"`,
		},
		{
			name:    "malformed since",
			args:    []string{"--since", "2020-02-02 10:00:00", "--until", testUntil},
			wantErr: "--since: invalid date/time",
		},
		{
			name:    "impossible until",
			args:    []string{"--since", testSince, "--until", "20200230 10:00:00"},
			wantErr: "--until: invalid date/time",
		},
		{
			name:    "unknown flag",
			args:    []string{"--since", testSince, "--until", testUntil, "--format", "csv"},
			wantErr: "unknown flag: --format",
		},
		{
			name:    "positional argument",
			args:    []string{"--since", testSince, "--until", testUntil, "extra"},
			wantErr: `unknown command "extra"`,
		},
		{
			name:    "negative timeout",
			args:    []string{"--since", testSince, "--until", testUntil, "--timeout", "-1s"},
			wantErr: "invalid timeout",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			b, srv := newBackend(t, 0)

			code, stdout, stderr := runCLI(append(tc.args, "--api-url", srv.URL)...)
			if code != exitUsage {
				t.Errorf("exit code = %d, want %d; stderr: %s", code, exitUsage, stderr)
			}
			if !strings.Contains(stderr, tc.wantErr) {
				t.Errorf("expected %q in stderr, got %q", tc.wantErr, stderr)
			}
			if !strings.Contains(stderr, "Usage:") {
				t.Errorf("expected usage in stderr, got %q", stderr)
			}
			if stdout != "" {
				t.Errorf("expected empty stdout, got %q", stdout)
			}
			if reqs := b.requests(); len(reqs) != 0 {
				t.Errorf("expected no requests, got %v", reqs)
			}
		})
	}
}

func TestRun_PartialData(t *testing.T) {
	t.Parallel()

	t.Run("strict fails after printing", func(t *testing.T) {
		t.Parallel()

		_, srv := newBackend(t, 2)

		code, stdout, stderr := runCLI("--since", testSince, "--until", testUntil, "--strict", "--api-url", srv.URL)
		if code != exitFailure {
			t.Fatalf("exit code = %d, want %d", code, exitFailure)
		}
		if stdout == "" {
			t.Error("expected the report to be printed before failing")
		}
		if !strings.Contains(stderr, "partial data") || !strings.Contains(stderr, "HTTP 502") {
			t.Errorf("expected partial data error in stderr, got %q", stderr)
		}
		if strings.Contains(stderr, "Usage:") {
			t.Errorf("did not expect usage in stderr, got %q", stderr)
		}
	})

	t.Run("strict passes when complete", func(t *testing.T) {
		t.Parallel()

		_, srv := newBackend(t, 0)

		code, _, stderr := runCLI("--since", testSince, "--until", testUntil, "--strict", "--api-url", srv.URL)
		if code != exitOK {
			t.Errorf("exit code = %d, want %d; stderr: %s", code, exitOK, stderr)
		}
	})

	t.Run("verbose logs the failure", func(t *testing.T) {
		t.Parallel()

		_, srv := newBackend(t, 2)

		code, _, stderr := runCLI("-v", "--since", testSince, "--until", testUntil, "--api-url", srv.URL)
		if code != exitOK {
			t.Fatalf("exit code = %d, want %d", code, exitOK)
		}
		for _, want := range []string{"level=DEBUG", "stackexchange response", "partial data"} {
			if !strings.Contains(stderr, want) {
				t.Errorf("expected %q in stderr, got %q", want, stderr)
			}
		}
	})
}

func TestRun_OutputFile(t *testing.T) {
	t.Parallel()

	_, srv := newBackend(t, 0)
	path := filepath.Join(t.TempDir(), "reports", "stats.csv")

	code, stdout, stderr := runCLI(
		"--since", testSince, "--until", testUntil,
		"--output-format", "csv", "-o", path, "--api-url", srv.URL,
	)
	if code != exitOK {
		t.Fatalf("exit code = %d; stderr: %s", code, stderr)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout, got %q", stdout)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.HasPrefix(string(data), "total_accepted_answers,2\n") {
		t.Errorf("unexpected report %q", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("report mode = %o, want 600", perm)
	}
}

func TestRun_OutputFileError(t *testing.T) {
	t.Parallel()

	_, srv := newBackend(t, 0)

	// A regular file cannot be used as a directory.
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0600); err != nil {
		t.Fatal(err)
	}

	code, _, stderr := runCLI(
		"--since", testSince, "--until", testUntil,
		"-o", filepath.Join(blocker, "stats.json"), "--api-url", srv.URL,
	)
	if code != exitFailure {
		t.Errorf("exit code = %d, want %d", code, exitFailure)
	}
	if !strings.Contains(stderr, "failed to create output directory") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestRun_Site(t *testing.T) {
	t.Parallel()

	b, srv := newBackend(t, 0)

	code, _, stderr := runCLI("--since", testSince, "--until", testUntil, "--site", "serverfault", "--api-url", srv.URL)
	if code != exitOK {
		t.Fatalf("exit code = %d; stderr: %s", code, stderr)
	}
	for _, q := range b.requests() {
		if !strings.Contains(q, "site=serverfault") {
			t.Errorf("expected site=serverfault in %q", q)
		}
	}
}
