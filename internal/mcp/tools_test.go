package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/quillcv/quill/internal/cv"
)

func strPtr(s string) *string {
	return &s
}

// fakePipeline serves canned pipeline results.
type fakePipeline struct {
	status    Status
	groups    cv.Groups
	cats      cv.Categories
	result    Result
	fromCache bool
	err       error
}

func (f *fakePipeline) Status(_ context.Context) (Status, error) {
	return f.status, f.err
}

func (f *fakePipeline) Groups(_ context.Context, _ bool) (cv.Groups, cv.Categories, bool, error) {
	return f.groups, f.cats, f.fromCache, f.err
}

func (f *fakePipeline) Render(_ context.Context, _ bool) (Result, error) {
	return f.result, f.err
}

func TestHandleStatus(t *testing.T) {
	pipe := &fakePipeline{status: Status{
		Configured: true,
		Template:   "cv_template.tex",
		OutFile:    "cv.tex",
		CachePath:  "notion_cache.json",
		CacheTTL:   "1h0m0s",
		CacheFresh: true,
	}}

	_, out, err := handleStatus(pipe)(context.Background(), nil, StatusInput{})
	if err != nil {
		t.Fatalf("handleStatus() error = %v", err)
	}

	if !out.Configured {
		t.Error("Configured = false, want true")
	}
	if out.Template != "cv_template.tex" {
		t.Errorf("Template = %q, want %q", out.Template, "cv_template.tex")
	}
	if !out.CacheFresh {
		t.Error("CacheFresh = false, want true")
	}
}

func TestHandleStatus_Error(t *testing.T) {
	pipe := &fakePipeline{err: errors.New("config broken")}

	_, _, err := handleStatus(pipe)(context.Background(), nil, StatusInput{})
	if err == nil {
		t.Fatal("handleStatus() expected error")
	}
}

func TestHandlePreview(t *testing.T) {
	pipe := &fakePipeline{
		groups: cv.Groups{
			"Work Experience": {
				{
					Name:         "Engineer",
					Organization: "Acme",
					Location:     "Remote",
					StartDate:    strPtr("Jan 2020"),
					EndDate:      strPtr("Present"),
				},
			},
			"Education": {
				{Name: "BSc", DateDisplay: strPtr("2014 -- 2018")},
			},
		},
		cats:      cv.DefaultCategories(),
		fromCache: true,
	}

	_, out, err := handlePreview(pipe)(context.Background(), nil, PreviewInput{})
	if err != nil {
		t.Fatalf("handlePreview() error = %v", err)
	}

	if !out.FromCache {
		t.Error("FromCache = false, want true")
	}
	if len(out.Sections) != 2 {
		t.Fatalf("sections = %d, want 2", len(out.Sections))
	}

	work := out.Sections[0]
	if work.Name != "Work Experience" || !work.Long {
		t.Errorf("first section = %+v, want long Work Experience", work)
	}
	if len(work.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(work.Entries))
	}
	if got := work.Entries[0].Dates; got != "Jan 2020 -- Present" {
		t.Errorf("dates = %q, want %q", got, "Jan 2020 -- Present")
	}

	edu := out.Sections[1]
	if edu.Name != "Education" || edu.Long {
		t.Errorf("second section = %+v, want short Education", edu)
	}
	if got := edu.Entries[0].Dates; got != "2014 -- 2018" {
		t.Errorf("dates = %q, want the raw override", got)
	}
}

func TestHandleBuild(t *testing.T) {
	pipe := &fakePipeline{result: Result{
		OutFile:  "cv.tex",
		Sections: 3,
		Entries:  12,
	}}

	_, out, err := handleBuild(pipe)(context.Background(), nil, BuildInput{Refresh: true})
	if err != nil {
		t.Fatalf("handleBuild() error = %v", err)
	}

	if out.OutFile != "cv.tex" {
		t.Errorf("OutFile = %q, want %q", out.OutFile, "cv.tex")
	}
	if out.Sections != 3 || out.Entries != 12 {
		t.Errorf("counts = (%d, %d), want (3, 12)", out.Sections, out.Entries)
	}
	if out.FromCache {
		t.Error("FromCache = true, want false")
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name  string
		entry *cv.Entry
		want  string
	}{
		{
			"override verbatim",
			&cv.Entry{DateDisplay: strPtr("Summers 2019 & 2020"), StartDate: strPtr("Jun 2019")},
			"Summers 2019 & 2020",
		},
		{
			"start and end",
			&cv.Entry{StartDate: strPtr("Jan 2020"), EndDate: strPtr("Dec 2021")},
			"Jan 2020 -- Dec 2021",
		},
		{
			"start only",
			&cv.Entry{StartDate: strPtr("Jan 2020")},
			"Jan 2020",
		},
		{
			"end only",
			&cv.Entry{EndDate: strPtr("Dec 2021")},
			"Dec 2021",
		},
		{"no dates", &cv.Entry{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DateRange(tt.entry); got != tt.want {
				t.Errorf("DateRange() = %q, want %q", got, tt.want)
			}
		})
	}
}
