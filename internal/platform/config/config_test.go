package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	kit "moviesearch/internal/platform/testkit"

	"golang.org/x/text/language"
)

func TestPrefixAndKey(t *testing.T) {
	api := New().Prefix("CORE_API_")
	if got := api.key("PORT"); got != "CORE_API_PORT" {
		t.Fatalf("key() = %q, want %q", got, "CORE_API_PORT")
	}
	cat := api.Prefix("CATALOG_")
	if got := cat.key("PATH"); got != "CORE_API_CATALOG_PATH" {
		t.Fatalf("nested key() = %q", got)
	}
}

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  moviesearch ")
	if got := c.MustString("NAME"); got != "moviesearch" {
		t.Fatalf("MustString = %q", got)
	}
	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_CONNS", " 8 ")
	if got := c.MustInt("CONNS"); got != 8 {
		t.Fatalf("MustInt = %d", got)
	}
	t.Setenv("SVC_BAD", "eight")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestMustFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "movies.json")
	if err := os.WriteFile(p, []byte("[]"), 0o600); err != nil {
		t.Fatal(err)
	}
	c := New().Prefix("CAT_")
	t.Setenv("CAT_PATH", p)
	if got := c.MustFile("PATH"); got != p {
		t.Fatalf("MustFile = %q", got)
	}
	t.Setenv("CAT_DIR", dir)
	kit.MustPanic(t, func() { _ = c.MustFile("DIR") })
	t.Setenv("CAT_GONE", filepath.Join(dir, "nope.json"))
	kit.MustPanic(t, func() { _ = c.MustFile("GONE") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("REQ_")
	t.Setenv("REQ_A", "x")
	t.Setenv("REQ_WS", "   ")
	c.Require("A")
	kit.MustPanic(t, func() { c.Require("A", "WS") })
}

func TestMay(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_S", " value ")
	t.Setenv("M_I", "7")
	t.Setenv("M_IBAD", "x")
	t.Setenv("M_B", "true")
	t.Setenv("M_BBAD", "nope")
	t.Setenv("M_D", "150ms")
	t.Setenv("M_DBAD", "soon")

	if got := c.MayString("S", "d"); got != "value" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("MISS", "d"); got != "d" {
		t.Fatalf("MayString default = %q", got)
	}
	if got := c.MayInt("I", 0); got != 7 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("IBAD", 3); got != 3 {
		t.Fatalf("MayInt bad = %d", got)
	}
	if !c.MayBool("B", false) || c.MayBool("BBAD", false) {
		t.Fatalf("MayBool mismatch")
	}
	if got := c.MayDuration("D", time.Second); got != 150*time.Millisecond {
		t.Fatalf("MayDuration = %v", got)
	}
	if got := c.MayDuration("DBAD", time.Minute); got != time.Minute {
		t.Fatalf("MayDuration bad = %v", got)
	}
}

func TestMayCSV(t *testing.T) {
	c := New().Prefix("CSV_")
	t.Setenv("CSV_VALS", " PG, R , ,G ,, ")
	if got := c.MayCSV("VALS", nil); !slices.Equal(got, []string{"PG", "R", "G"}) {
		t.Fatalf("MayCSV = %#v", got)
	}
	t.Setenv("CSV_EMPTY", " , , ")
	if got := c.MayCSV("EMPTY", []string{"fallback"}); !slices.Equal(got, []string{"fallback"}) {
		t.Fatalf("MayCSV empty = %#v", got)
	}
}

func TestMayEnum(t *testing.T) {
	c := New().Prefix("E_")
	if got := c.MayEnum("MISS", "file", "file", "pg"); got != "file" {
		t.Fatalf("MayEnum default = %q", got)
	}
	t.Setenv("E_SRC", "PG")
	if got := c.MayEnum("SRC", "file", "file", "pg"); got != "pg" {
		t.Fatalf("MayEnum = %q, want pg", got)
	}
	t.Setenv("E_BAD", "mongo")
	kit.MustPanic(t, func() { _ = c.MayEnum("BAD", "file", "file", "pg") })
}

func TestMayLocale(t *testing.T) {
	c := New().Prefix("L_")
	if got := c.MayLocale("MISS", language.English); got != language.English {
		t.Fatalf("MayLocale default = %v", got)
	}
	t.Setenv("L_TR", "tr")
	if got := c.MayLocale("TR", language.English); got != language.Turkish {
		t.Fatalf("MayLocale = %v", got)
	}
	t.Setenv("L_BAD", "not a tag!!")
	kit.MustPanic(t, func() { _ = c.MayLocale("BAD", language.English) })
}
