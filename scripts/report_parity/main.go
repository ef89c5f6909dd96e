package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/noah-isme/campus-reports-api/internal/service"
)

// volatileKeys differ between two runs of the same report and are dropped before comparing.
var volatileKeys = map[string]struct{}{
	"generated_at":       {},
	"processing_time_ms": {},
}

// legacyKeys maps field names of the legacy payloads onto the current ones.
var legacyKeys = map[string]string{
	"college_event_code": "short_code",
}

const metricKey = "metric_used"

type target struct {
	Report   string
	Query    string
	Critical bool
}

type comparison struct {
	Target         target
	LegacyStatus   int
	GoStatus       int
	StatusMatch    bool
	BodyMatch      bool
	Error          error
	DurationGo     time.Duration
	DurationLegacy time.Duration
}

type client struct {
	http  *http.Client
	token string
}

func main() {
	var (
		goBase       string
		legacyBase   string
		collegeID    string
		token        string
		prefix       string
		legacyPrefix string
		timeout      time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:3000", "Legacy API base URL")
	flag.StringVar(&collegeID, "college", "", "College identifier to compare reports for")
	flag.StringVar(&token, "token", os.Getenv("REPORT_PARITY_TOKEN"), "Bearer token of an admin or staff user")
	flag.StringVar(&prefix, "prefix", "/api/v1", "Go API route prefix")
	flag.StringVar(&legacyPrefix, "legacy-prefix", "", "Legacy API route prefix")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "HTTP client timeout")
	flag.Parse()

	if strings.TrimSpace(collegeID) == "" {
		log.Fatal("-college is required")
	}

	c := client{http: &http.Client{Timeout: timeout}, token: token}
	var (
		comparisons  []comparison
		breaking     int
		optionalDiff int
	)
	for _, t := range defaultTargets() {
		comp := c.compare(
			strings.TrimRight(goBase, "/")+reportPath(prefix, collegeID, t),
			strings.TrimRight(legacyBase, "/")+reportPath(legacyPrefix, collegeID, t),
			t,
		)
		switch {
		case comp.Error != nil:
			if t.Critical {
				breaking++
			}
		case !comp.StatusMatch || !comp.BodyMatch:
			if t.Critical {
				breaking++
			} else {
				optionalDiff++
			}
		}
		comparisons = append(comparisons, comp)
	}

	printReport(comparisons)

	fmt.Printf("Breaking diffs: %d, Optional diffs: %d\n", breaking, optionalDiff)
	if breaking > 0 {
		os.Exit(1)
	}
}

func defaultTargets() []target {
	return []target{
		{Report: "event-popularity", Critical: true},
		{Report: "event-popularity", Query: "limit=3&start_date=2024-01-01"},
		{Report: "student-participation", Critical: true},
		{Report: "student-participation", Query: "min_events=2"},
		{Report: "top-active-students", Critical: true},
		{Report: "top-active-students", Query: "metric=events_registered&limit=5"},
		{Report: "dashboard", Critical: true},
	}
}

// reportPath builds the route of a report under prefix. An empty prefix yields the bare legacy route.
func reportPath(prefix, collegeID string, t target) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix != "" {
		prefix = "/" + prefix
	}
	path := prefix + "/colleges/" + collegeID + "/reports/" + t.Report
	if t.Query != "" {
		path += "?" + t.Query
	}
	return path
}

// compare fetches one report from both services. URLs are absolute.
func (c client) compare(goURL, legacyURL string, tgt target) comparison {
	comp := comparison{Target: tgt}
	goStatus, goBody, goDur, goErr := c.fetch(goURL)
	legacyStatus, legacyBody, legacyDur, legacyErr := c.fetch(legacyURL)
	comp.DurationGo = goDur
	comp.DurationLegacy = legacyDur

	if goErr != nil {
		comp.Error = fmt.Errorf("go request failed: %w", goErr)
		return comp
	}
	if legacyErr != nil {
		comp.Error = fmt.Errorf("legacy request failed: %w", legacyErr)
		return comp
	}

	comp.GoStatus = goStatus
	comp.LegacyStatus = legacyStatus
	comp.StatusMatch = goStatus == legacyStatus
	comp.BodyMatch = payloadsEqual(goBody, legacyBody)
	return comp
}

func (c client) fetch(url string) (int, []byte, time.Duration, error) {
	if c.http == nil {
		return 0, nil, 0, errors.New("nil client")
	}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, time.Since(start), fmt.Errorf("read body: %w", err)
	}
	return resp.StatusCode, body, time.Since(start), nil
}

// payloadsEqual compares the report data of two responses, ignoring envelope metadata
// and the naming and formatting differences of the legacy payloads.
func payloadsEqual(a, b []byte) bool {
	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	aj = normalize(payload(aj))
	bj = normalize(payload(bj))
	return reflect.DeepEqual(aj, bj)
}

func payload(v interface{}) interface{} {
	if obj, ok := v.(map[string]interface{}); ok {
		if data, ok := obj["data"]; ok {
			return data
		}
	}
	return v
}

func normalize(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, v2 := range val {
			if _, skip := volatileKeys[k]; skip {
				continue
			}
			if renamed, ok := legacyKeys[k]; ok {
				k = renamed
			}
			if raw, ok := v2.(string); ok && k == metricKey {
				v2 = string(service.ParseRankMetric(raw))
			}
			out[k] = normalize(v2)
		}
		return out
	case string:
		if ts, err := time.Parse(time.RFC3339Nano, val); err == nil {
			return ts.UTC().Format(time.RFC3339Nano)
		}
	case []interface{}:
		for i, v2 := range val {
			val[i] = normalize(v2)
		}
		return val
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
	}
	return v
}

func printReport(results []comparison) {
	fmt.Println("Report Parity")
	fmt.Println("=============")
	for _, res := range results {
		status := "OK"
		if res.Error != nil {
			status = "ERROR"
		} else if !res.StatusMatch || !res.BodyMatch {
			status = "DIFF"
		}
		fmt.Printf("[%s] %s %s\n", status, res.Target.Report, res.Target.Query)
		fmt.Printf("  Go Status: %d (%s)\n", res.GoStatus, res.DurationGo)
		fmt.Printf("  Legacy Status: %d (%s)\n", res.LegacyStatus, res.DurationLegacy)
		if res.Error != nil {
			fmt.Printf("  Error: %v\n", res.Error)
		} else {
			fmt.Printf("  Status match: %t | Body match: %t | Critical: %t\n", res.StatusMatch, res.BodyMatch, res.Target.Critical)
		}
	}
}
