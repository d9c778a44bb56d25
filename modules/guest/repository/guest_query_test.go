package repository

import (
	"strings"
	"testing"

	"event-rsvp-api/modules/guest/entity"
)

func TestBuildListQueryDefaultsToNewestFirst(t *testing.T) {
	query, args := buildListQuery(entity.ListOptions{})

	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
	if strings.Contains(query, "WHERE") {
		t.Errorf("no filter should produce no WHERE clause: %q", query)
	}
	if !strings.Contains(query, "ORDER BY created_at DESC, id ASC") {
		t.Errorf("default order should be newest first: %q", query)
	}
}

func TestBuildListQueryAttendanceFilter(t *testing.T) {
	query, _ := buildListQuery(entity.ListOptions{Filter: entity.FilterGoing})
	if !strings.Contains(query, "going = true") {
		t.Errorf("going filter missing: %q", query)
	}

	query, _ = buildListQuery(entity.ListOptions{Filter: entity.FilterNotGoing})
	if !strings.Contains(query, "going = false") {
		t.Errorf("notgoing filter missing: %q", query)
	}
}

func TestBuildListQuerySearchSpansContactColumns(t *testing.T) {
	query, args := buildListQuery(entity.ListOptions{Search: "acme"})

	if len(args) != 1 || args[0] != "%acme%" {
		t.Fatalf("expected single pattern arg, got %v", args)
	}
	for _, col := range []string{"name", "phone", "email", "company", "position"} {
		if !strings.Contains(query, col+" ILIKE $1") {
			t.Errorf("search should cover %s: %q", col, query)
		}
	}
}

func TestBuildListQueryWhitelistsSortColumn(t *testing.T) {
	query, _ := buildListQuery(entity.ListOptions{SortBy: "name; DROP TABLE guests"})
	if !strings.Contains(query, "ORDER BY created_at") {
		t.Errorf("unknown sort key should fall back to created_at: %q", query)
	}
	if strings.Contains(query, "DROP TABLE") {
		t.Fatalf("sort key leaked into SQL: %q", query)
	}
}

func TestBuildListQueryStableTieBreak(t *testing.T) {
	query, _ := buildListQuery(entity.ListOptions{SortBy: "company", SortOrder: "asc"})
	if !strings.Contains(query, "ORDER BY company ASC, created_at ASC, id ASC") {
		t.Errorf("non-time sorts need a stable tie break: %q", query)
	}

	// The id tie break stays ASC regardless of direction; ids are random,
	// so following the sort direction would add nothing.
	query, _ = buildListQuery(entity.ListOptions{SortBy: "created_at", SortOrder: "desc"})
	if !strings.Contains(query, "ORDER BY created_at DESC, id ASC") {
		t.Errorf("time sorts need a stable tie break: %q", query)
	}
}
