package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quillcv/quill/internal/cache"
	"github.com/quillcv/quill/internal/cv"
	"github.com/quillcv/quill/internal/output"
)

func strPtr(s string) *string {
	return &s
}

// isolateEnv points every configuration input at a temp directory and
// clears the Notion credentials, so tests never touch the network or the
// developer's real config.
func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("QUILL_CONFIG_HOME", filepath.Join(dir, "confighome"))
	for _, key := range []string{"NOTION_TOKEN", "NOTION_DATABASE_ID", "QUILL_TEMPLATE", "QUILL_OUT", "QUILL_CACHE", "QUILL_CACHE_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func seedCache(t *testing.T, dir string) {
	t.Helper()
	groups := cv.Groups{
		"Work Experience": {
			{
				Name:         "Engineer",
				Organization: "Acme",
				Category:     "Work Experience",
				StartDate:    strPtr("Jan 2020"),
				EndDate:      strPtr("Dec 2021"),
				Body:         `\item Did the work.`,
			},
			{
				Name:      "Founder",
				Category:  "Work Experience",
				StartDate: strPtr("Jun 2022"),
				EndDate:   strPtr("Present"),
				Body:      `\item Started the thing.`,
			},
		},
	}
	if err := cache.New(filepath.Join(dir, "notion_cache.json")).Save(groups); err != nil {
		t.Fatal(err)
	}
}

func seedTemplate(t *testing.T, dir string) {
	t.Helper()
	tmpl := `<<range .Sections>>\section{<<escape .Name>>}
<<range .Entries>><<.Body>>
<<end>><<end>>`
	if err := os.WriteFile(filepath.Join(dir, "cv_template.tex"), []byte(tmpl), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestPipeline_GroupsFromCache(t *testing.T) {
	dir := isolateEnv(t)
	seedCache(t, dir)

	pipe, err := newPipeline("")
	if err != nil {
		t.Fatalf("newPipeline() error = %v", err)
	}

	groups, cats, fromCache, err := pipe.Groups(context.Background(), false)
	if err != nil {
		t.Fatalf("Groups() error = %v", err)
	}
	if !fromCache {
		t.Error("fromCache = false, want true for a fresh snapshot")
	}
	if !cats.IsLong("Work Experience") {
		t.Error("categories lost in cache path")
	}

	work := groups["Work Experience"]
	if len(work) != 2 {
		t.Fatalf("entries = %d, want 2", len(work))
	}
	if work[0].Name != "Founder" {
		t.Errorf("first entry = %q, want Founder (newest first)", work[0].Name)
	}
}

func TestPipeline_RefreshWithoutCredentialsFails(t *testing.T) {
	dir := isolateEnv(t)
	seedCache(t, dir)

	pipe, err := newPipeline("")
	if err != nil {
		t.Fatalf("newPipeline() error = %v", err)
	}

	_, _, _, err = pipe.Groups(context.Background(), true)
	if err == nil {
		t.Fatal("Groups(refresh) expected error without credentials")
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want user error", output.GetExitCode(err))
	}
}

func TestPipeline_MissingCacheWithoutCredentialsFails(t *testing.T) {
	isolateEnv(t)

	pipe, err := newPipeline("")
	if err != nil {
		t.Fatalf("newPipeline() error = %v", err)
	}

	_, _, _, err = pipe.Groups(context.Background(), false)
	if err == nil {
		t.Fatal("Groups() expected error with no cache and no credentials")
	}
}

func TestPipeline_RenderWritesOutput(t *testing.T) {
	dir := isolateEnv(t)
	seedCache(t, dir)
	seedTemplate(t, dir)

	pipe, err := newPipeline("")
	if err != nil {
		t.Fatalf("newPipeline() error = %v", err)
	}

	result, err := pipe.Render(context.Background(), false)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if result.Sections != 1 || result.Entries != 2 {
		t.Errorf("counts = (%d, %d), want (1, 2)", result.Sections, result.Entries)
	}
	if !result.FromCache {
		t.Error("FromCache = false, want true")
	}

	data, err := os.ReadFile(filepath.Join(dir, "cv.tex"))
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	tex := string(data)
	if !strings.Contains(tex, `\section{Work Experience}`) {
		t.Errorf("output missing section:\n%s", tex)
	}
	if !strings.Contains(tex, `\item Started the thing.`) {
		t.Errorf("output missing entry body:\n%s", tex)
	}
}

func TestPipeline_Status(t *testing.T) {
	dir := isolateEnv(t)
	seedCache(t, dir)
	t.Setenv("NOTION_TOKEN", "tok")
	t.Setenv("NOTION_DATABASE_ID", "db")

	pipe, err := newPipeline("")
	if err != nil {
		t.Fatalf("newPipeline() error = %v", err)
	}

	st, err := pipe.Status(context.Background())
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if !st.Configured {
		t.Error("Configured = false, want true")
	}
	if !st.CacheFresh {
		t.Error("CacheFresh = false, want true")
	}
	if st.Template != "cv_template.tex" {
		t.Errorf("Template = %q, want the default", st.Template)
	}
}

func TestStatusCommand_JSON(t *testing.T) {
	isolateEnv(t)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"status", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if result["configured"] != false {
		t.Errorf("configured = %v, want false without credentials", result["configured"])
	}
	if result["template"] != "cv_template.tex" {
		t.Errorf("template = %v, want the default", result["template"])
	}
}

func TestBuildCommand_FromCache(t *testing.T) {
	dir := isolateEnv(t)
	seedCache(t, dir)
	seedTemplate(t, dir)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"build", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if result["from_cache"] != true {
		t.Errorf("from_cache = %v, want true", result["from_cache"])
	}
	if _, err := os.Stat(filepath.Join(dir, "cv.tex")); err != nil {
		t.Errorf("output file not written: %v", err)
	}
}

func TestPreviewCommand_Table(t *testing.T) {
	dir := isolateEnv(t)
	seedCache(t, dir)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"preview"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Work Experience") {
		t.Errorf("output missing section header:\n%s", out)
	}
	if !strings.Contains(out, "Founder") || !strings.Contains(out, "Engineer") {
		t.Errorf("output missing entries:\n%s", out)
	}
	if !strings.Contains(out, "Jun 2022 -- Present") {
		t.Errorf("output missing date range:\n%s", out)
	}
}

func TestBuildCommand_MissingTemplate(t *testing.T) {
	dir := isolateEnv(t)
	seedCache(t, dir)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"build"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("Execute() expected error for missing template")
	}
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("exit code = %d, want user error", output.GetExitCode(err))
	}
}
